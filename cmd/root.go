package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/roomgrid/roomgrid/booking"
	"github.com/roomgrid/roomgrid/booking/render"
)

var (
	// CLI flags for session setup
	seed         int64   // Master seed for all RNG subsystems (0 = derive from clock)
	logLevel     string  // Log verbosity level
	occupancyP   float64 // Probability each room starts booked
	topologyName string  // Preset name to select from the topology file
	topologyFile string  // Path to a YAML file of topology presets
	traceLevel   string  // Decision trace verbosity (none, decisions)

	// CLI flags for the book subcommand
	roomCount int // Number of rooms to book

	// CLI flags for the sweep subcommand
	trials int // Number of independent trials to run
)

// builtinTopology is the preset served when no topology file is given.
const builtinTopology = "grand"

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "roomgrid",
	Short: "Room allocation engine that books minimum-travel-cost room sets",
}

// setupLogging applies the --log flag process-wide.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// resolveSeed returns the effective master seed. Zero means "fresh run":
// derive one from the clock and log it so the run can be replayed later
// with --seed.
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	derived := time.Now().UnixNano()
	logrus.Infof("No seed provided; derived %d from clock (pass --seed %d to replay)", derived, derived)
	return derived
}

// resolveTopology picks the grid shape from the CLI flags. Without a
// topology file only the builtin preset is available.
func resolveTopology() booking.Topology {
	if topologyFile == "" {
		if topologyName != builtinTopology {
			logrus.Fatalf("Topology preset %q requires --topology-file", topologyName)
		}
		return booking.DefaultTopology()
	}
	cfg, err := LoadTopologyConfig(topologyFile)
	if err != nil {
		logrus.Fatalf("Failed to load topology presets: %v", err)
	}
	topo, ok := cfg.Get(topologyName)
	if !ok {
		logrus.Fatalf("Unknown topology preset %q in %s (have: %s)",
			topologyName, topologyFile, strings.Join(cfg.Names(), ", "))
	}
	return topo
}

// buildSession assembles a session from the CLI flags, exiting on any
// configuration error.
func buildSession() *booking.Session {
	s, err := booking.NewSession(booking.SessionConfig{
		Topology:   resolveTopology(),
		Seed:       resolveSeed(seed),
		TraceLevel: booking.TraceLevel(traceLevel),
	})
	if err != nil {
		logrus.Fatalf("Failed to create session: %v", err)
	}
	return s
}

// printResult writes the user-facing outcome line in the fixed console
// format golden-tested downstream.
func printResult(w io.Writer, res booking.AllocationResult) {
	switch res.Outcome {
	case booking.OutcomeSuccess:
		fmt.Fprint(w, "Success! Booked Rooms: ")
		for _, num := range res.RoomNumbers() {
			fmt.Fprintf(w, "%d ", num)
		}
		fmt.Fprintf(w, "(Travel Cost: %d)\n", res.Cost)
	case booking.OutcomeInvalidCount:
		fmt.Fprintf(w, "Error: You can only book %d to %d rooms.\n",
			booking.MinRoomsPerRequest, booking.MaxRoomsPerRequest)
	case booking.OutcomeInsufficientRooms:
		fmt.Fprintln(w, "Error: Not enough rooms available.")
	default:
		fmt.Fprintln(w, "Error: Could not find suitable rooms.")
	}
}

// printTrace dumps the evaluated candidate windows when decision tracing is
// enabled; the winning window is starred.
func printTrace(w io.Writer, tr *booking.AllocationTrace) {
	if tr == nil || tr.Level != booking.TraceLevelDecisions || len(tr.Candidates) == 0 {
		return
	}
	fmt.Fprintf(w, "Evaluated %d candidate windows:\n", len(tr.Candidates))
	for _, c := range tr.Candidates {
		marker := " "
		if c.Chosen {
			marker = "*"
		}
		fmt.Fprintf(w, " %s [%s] cost=%d rooms=%s\n", marker, c.Tier, c.Cost, strings.Join(c.RoomIDs, " "))
	}
}

// bookCmd books one set of rooms against a (possibly randomized) grid
var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Book a set of rooms with minimum travel cost",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		s := buildSession()
		if occupancyP > 0 {
			s.Randomize(occupancyP)
		}

		logrus.Infof("Booking %d rooms on %d-floor grid (seed=%d, %d free)",
			roomCount, s.Topology().Floors, s.Seed(), s.FreeCount())

		res := s.Book(roomCount)
		printResult(os.Stdout, res)
		_ = render.Write(os.Stdout, s.Snapshot(), s.Topology(), s.LastBooked())
		if res.Succeeded() {
			fmt.Printf("Booking Ref: %s\n", res.Ref)
		}
		printTrace(os.Stdout, s.Trace())
		s.Metrics().Print(os.Stdout)
	},
}

// menuCmd runs the interactive console loop
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Drive a booking session through the interactive console menu",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		runMenu(buildSession(), os.Stdin, os.Stdout)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	for _, c := range []*cobra.Command{bookCmd, menuCmd, sweepCmd} {
		c.Flags().Int64Var(&seed, "seed", 0, "Master seed for occupancy generation (0 = derive from clock)")
		c.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
		c.Flags().StringVar(&topologyName, "topology", builtinTopology, "Topology preset name")
		c.Flags().StringVar(&topologyFile, "topology-file", "", "YAML file of topology presets")
	}

	bookCmd.Flags().IntVar(&roomCount, "rooms", 0, "Number of rooms to book (1-5)")
	bookCmd.Flags().Float64Var(&occupancyP, "occupancy", 0.0, "Probability each room starts booked (0 = empty hotel)")
	bookCmd.Flags().StringVar(&traceLevel, "trace", "none", "Decision trace verbosity (none, decisions)")
	_ = bookCmd.MarkFlagRequired("rooms")

	sweepCmd.Flags().IntVar(&trials, "trials", 100, "Number of independent trials")
	sweepCmd.Flags().IntVar(&roomCount, "rooms", 2, "Number of rooms to book per trial (1-5)")
	sweepCmd.Flags().Float64Var(&occupancyP, "occupancy", booking.DefaultOccupancyP, "Probability each room starts booked")

	rootCmd.AddCommand(bookCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(sweepCmd)
}
