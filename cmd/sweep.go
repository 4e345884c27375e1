package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/roomgrid/roomgrid/booking"
)

// SweepConfig parameterizes an occupancy sweep: many independent trials of
// the same request size against freshly randomized grids. Per-trial seeds
// are derived from the master seed, so a sweep is reproducible end to end.
type SweepConfig struct {
	Trials     int              // number of independent trials (must be > 0)
	Rooms      int              // request size per trial (must be within booking bounds)
	OccupancyP float64          // Bernoulli probability each room starts booked
	Seed       int64            // master seed for per-trial seed derivation
	Topology   booking.Topology // grid shape shared by all trials
}

// SweepReport aggregates the outcomes of one sweep. Cost statistics cover
// successful trials only.
type SweepReport struct {
	Trials       int
	Successes    int
	SameFloor    int
	CrossFloor   int
	Insufficient int
	NoFeasible   int

	CostMean   float64
	CostStdDev float64
	CostP50    float64
	CostP90    float64
}

// runSweep executes cfg.Trials independent sessions and aggregates their
// outcomes. Trial i gets its own session seeded from the sweep RNG stream;
// two sweeps with the same config produce identical reports.
func runSweep(cfg SweepConfig) (SweepReport, error) {
	report := SweepReport{Trials: cfg.Trials}

	if cfg.Trials <= 0 {
		return report, fmt.Errorf("sweep: trials must be > 0, got %d", cfg.Trials)
	}
	if cfg.Rooms < booking.MinRoomsPerRequest || cfg.Rooms > booking.MaxRoomsPerRequest {
		return report, fmt.Errorf("sweep: rooms must be in [%d,%d], got %d",
			booking.MinRoomsPerRequest, booking.MaxRoomsPerRequest, cfg.Rooms)
	}
	if cfg.OccupancyP < 0 || cfg.OccupancyP > 1 {
		return report, fmt.Errorf("sweep: occupancy must be in [0,1], got %v", cfg.OccupancyP)
	}

	seeder := booking.NewPartitionedRNG(booking.NewSessionKey(cfg.Seed)).
		ForSubsystem(booking.SubsystemSweep)

	var costs []float64
	for i := 0; i < cfg.Trials; i++ {
		s, err := booking.NewSession(booking.SessionConfig{
			Topology: cfg.Topology,
			Seed:     seeder.Int63(),
		})
		if err != nil {
			return report, fmt.Errorf("sweep trial %d: %w", i, err)
		}
		s.Randomize(cfg.OccupancyP)

		res := s.Book(cfg.Rooms)
		switch res.Outcome {
		case booking.OutcomeSuccess:
			report.Successes++
			costs = append(costs, float64(res.Cost))
			if res.Tier == booking.TierSameFloor {
				report.SameFloor++
			} else {
				report.CrossFloor++
			}
		case booking.OutcomeInsufficientRooms:
			report.Insufficient++
		case booking.OutcomeNoFeasibleSet:
			report.NoFeasible++
		}
	}

	if len(costs) > 0 {
		sort.Float64s(costs)
		report.CostMean = stat.Mean(costs, nil)
		report.CostStdDev = stat.StdDev(costs, nil)
		report.CostP50 = stat.Quantile(0.5, stat.Empirical, costs, nil)
		report.CostP90 = stat.Quantile(0.9, stat.Empirical, costs, nil)
	}
	return report, nil
}

// Print displays the aggregated sweep report.
func (r SweepReport) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Sweep Report ===")
	fmt.Fprintf(w, "Trials               : %d\n", r.Trials)
	fmt.Fprintf(w, "Successes            : %d\n", r.Successes)
	fmt.Fprintf(w, "  Same-Floor         : %d\n", r.SameFloor)
	fmt.Fprintf(w, "  Cross-Floor        : %d\n", r.CrossFloor)
	fmt.Fprintf(w, "Insufficient Rooms   : %d\n", r.Insufficient)
	fmt.Fprintf(w, "No Feasible Set      : %d\n", r.NoFeasible)
	if r.Successes > 0 {
		fmt.Fprintf(w, "Cost Mean            : %.2f minutes\n", r.CostMean)
		fmt.Fprintf(w, "Cost StdDev          : %.2f\n", r.CostStdDev)
		fmt.Fprintf(w, "Cost P50             : %.2f\n", r.CostP50)
		fmt.Fprintf(w, "Cost P90             : %.2f\n", r.CostP90)
	}
}

// sweepCmd measures allocation behavior across many randomized grids
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run many randomized trials and report cost statistics",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg := SweepConfig{
			Trials:     trials,
			Rooms:      roomCount,
			OccupancyP: occupancyP,
			Seed:       resolveSeed(seed),
			Topology:   resolveTopology(),
		}
		logrus.Infof("Sweeping %d trials: %d rooms at occupancy %.2f (seed=%d)",
			cfg.Trials, cfg.Rooms, cfg.OccupancyP, cfg.Seed)

		report, err := runSweep(cfg)
		if err != nil {
			logrus.Fatalf("Sweep failed: %v", err)
		}
		report.Print(os.Stdout)
	},
}
