// Package booking provides the core room-allocation engine for roomgrid.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - room.go: Room identity (floor, lift-relative index, number, ID)
//   - grid.go: the occupancy vector over a fixed floor/room topology
//   - allocator.go: the two-tier minimum-travel-cost search
//
// # Architecture
//
// A Session wires the moving parts together for one run: it owns the Grid,
// an Allocator bound to it, a PartitionedRNG for reproducible occupancy,
// running Metrics, and an optional AllocationTrace. The render/ sub-package
// draws snapshots; cmd/ drives sessions from the CLI and the interactive
// menu.
//
// # Cost Model
//
// Travel cost is vertical-dominant: moving one floor costs
// FloorTravelMinutes (2) while moving one room horizontally costs
// RoomTravelMinutes (1). Same-floor sets cost their index span; cross-floor
// sets cost 2*floorSpan + indexSpan over the set's extremes. cost.go holds
// both formulas plus the proximity score the cross-floor tier sorts by.
//
// # Determinism
//
// Identical seed, topology, and request sequence must reproduce identical
// results byte for byte. Everything random flows through PartitionedRNG;
// every ordering the allocator iterates is explicitly sorted (floor keys
// ascending, indexes ascending, proximity-stable), never taken from Go map
// iteration order.
package booking
