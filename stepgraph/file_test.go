package stepgraph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/exprchart/engine/pad"
)

func TestSaveFileLoadFileRoundTrip(t *testing.T) {
	g, err := Build(pad.NewDanceSingle())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	path := filepath.Join(t.TempDir(), "dance-single.fsg")
	if err := SaveFile(g, path); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if got.ChartType != g.ChartType {
		t.Errorf("ChartType = %q, want %q", got.ChartType, g.ChartType)
	}
	if got.NodeCount() != g.NodeCount() {
		t.Errorf("NodeCount = %d, want %d", got.NodeCount(), g.NodeCount())
	}
	if len(got.Links) != len(g.Links) {
		t.Errorf("len(Links) = %d, want %d", len(got.Links), len(g.Links))
	}
	if got.EdgeCount() != g.EdgeCount() {
		t.Errorf("EdgeCount = %d, want %d", got.EdgeCount(), g.EdgeCount())
	}
	for i, n := range g.Nodes {
		if got.Nodes[i] != n {
			t.Errorf("Nodes[%d] = %+v, want %+v", i, got.Nodes[i], n)
		}
	}
}

func TestLoadFileRejectsBadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.fsg")
	if err := os.WriteFile(path, []byte("NOPE"), 0o644); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected an error for a bad magic header")
	}
}

func TestLoadFileRejectsMissingFile(t *testing.T) {
	if _, err := LoadFile("/nonexistent/path/missing.fsg"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
