package enginelog

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestSink(t *testing.T) *Sink {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "enginelog.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAssignsIDWhenEmpty(t *testing.T) {
	s := openTestSink(t)
	r := Record{ChartType: "dance-single", BracketMethod: "balanced", StepCount: 12, MineCount: 0, DurationMillis: 4}
	id, err := s.Record(r)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if id == "" {
		t.Fatal("expected Record to assign a non-empty ID")
	}

	recent, err := s.Recent(1)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recent))
	}
	if recent[0].ID != id {
		t.Errorf("ID = %q, want %q", recent[0].ID, id)
	}
	if recent[0].ChartType != "dance-single" {
		t.Errorf("ChartType = %q, want dance-single", recent[0].ChartType)
	}
}

func TestRecordRoundTripsExtra(t *testing.T) {
	s := openTestSink(t)
	r := Record{
		ChartType:     "pump-single",
		BracketMethod: "aggressive",
		StepCount:     5,
		Extra:         map[string]any{"retryReason": "infeasible-without-brackets"},
	}
	if _, err := s.Record(r); err != nil {
		t.Fatalf("Record: %v", err)
	}

	recent, err := s.Recent(1)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if recent[0].Extra["retryReason"] != "infeasible-without-brackets" {
		t.Errorf("Extra did not round-trip, got %+v", recent[0].Extra)
	}
}

func TestRecentOrdersNewestFirst(t *testing.T) {
	s := openTestSink(t)
	older := Record{ChartType: "dance-single", BracketMethod: "balanced", ExpressedAt: time.Now().UTC().Add(-time.Hour)}
	newer := Record{ChartType: "dance-single", BracketMethod: "balanced", ExpressedAt: time.Now().UTC()}
	if _, err := s.Record(older); err != nil {
		t.Fatalf("Record: %v", err)
	}
	newerID, err := s.Record(newer)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	recent, err := s.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recent))
	}
	if recent[0].ID != newerID {
		t.Errorf("expected the newer record first, got %+v", recent)
	}
}

func TestCountByChartType(t *testing.T) {
	s := openTestSink(t)
	for _, ct := range []string{"dance-single", "dance-single", "pump-double"} {
		if _, err := s.Record(Record{ChartType: ct, BracketMethod: "balanced"}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	counts, err := s.CountByChartType()
	if err != nil {
		t.Fatalf("CountByChartType: %v", err)
	}
	if counts["dance-single"] != 2 {
		t.Errorf("dance-single count = %d, want 2", counts["dance-single"])
	}
	if counts["pump-double"] != 1 {
		t.Errorf("pump-double count = %d, want 1", counts["pump-double"])
	}
}
