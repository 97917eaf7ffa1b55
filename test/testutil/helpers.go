// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/itinerary-insights/itinerary-analysis-service/internal/xmltree"
)

// LoadTestXML loads an XML file from the testdata directory.
// The filename should be relative to the testdata directory.
func LoadTestXML(t *testing.T, filename string) []byte {
	t.Helper()

	// Get the path to testdata relative to this file
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Navigate to project root (testutil is in test/testutil)
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	testDataPath := filepath.Join(projectRoot, "test", "testdata", filename)

	data, err := os.ReadFile(testDataPath)
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// TestDataDir returns the absolute path of the test/testdata directory.
// Useful for wiring a file source at the fixtures.
func TestDataDir(t *testing.T) string {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	return filepath.Join(projectRoot, "test", "testdata")
}

// MustParseXML parses an XML document into a tree.
// It fails the test if parsing fails.
func MustParseXML(t *testing.T, doc string) *xmltree.Node {
	t.Helper()
	root, err := xmltree.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Failed to parse XML document: %v", err)
	}
	return root
}

// MustLoadTree loads and parses an XML file from testdata.
func MustLoadTree(t *testing.T, filename string) *xmltree.Node {
	t.Helper()
	return MustParseXML(t, string(LoadTestXML(t, filename)))
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// IntPtr returns a pointer to an int.
// Convenience function for ranking key tests.
func IntPtr(i int) *int {
	return &i
}

// StringSlice returns a slice of strings.
// Convenience function for tag diff tests.
func StringSlice(s ...string) []string {
	return s
}
