// Package testutil provides shared test infrastructure for the allocation
// engine. It consolidates the golden scenario types and loader used by the
// booking package tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Scenarios []GoldenScenario `json:"scenarios"`
}

// GoldenScenario is one hand-checked allocation case. Occupancy is set up
// on a fresh default grid in one of two ways: Occupied lists room IDs to
// pre-book, or FreeOnly lists the IDs of the only rooms left free (every
// other room is pre-booked). The two are mutually exclusive.
type GoldenScenario struct {
	Name     string   `json:"name"`
	Occupied []string `json:"occupied,omitempty"`
	FreeOnly []string `json:"free_only,omitempty"`

	// Prior holds request counts committed before the asserted request,
	// in order. Lets a scenario assert mid-sequence state.
	Prior []int `json:"prior,omitempty"`

	Count int          `json:"count"`
	Want  GoldenExpect `json:"want"`
}

// GoldenExpect is the expected result of the asserted request.
type GoldenExpect struct {
	Outcome string   `json:"outcome"`
	Tier    string   `json:"tier,omitempty"`
	Cost    int      `json:"cost,omitempty"`
	Rooms   []string `json:"rooms,omitempty"`
	Numbers []int    `json:"numbers,omitempty"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file:
// booking/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}
