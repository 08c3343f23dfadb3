package analytics_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"huntboard/internal/analytics"
	"huntboard/internal/domain"
)

func frozen(s *analytics.Store) *analytics.Store {
	s.Now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func load(t *testing.T, dir string) *analytics.Store {
	t.Helper()
	s, err := analytics.Load("apollo", dir)
	if err != nil {
		t.Fatal(err)
	}
	return frozen(s)
}

func TestRecordValidation(t *testing.T) {
	s := load(t, t.TempDir())
	_, err := s.Record(domain.HuntMetricRecord{HuntID: "", PhaseDurations: map[string]float64{"spec": 1}})
	if err == nil {
		t.Fatal("expected error for missing hunt id")
	}
	_, err = s.Record(domain.HuntMetricRecord{HuntID: "h1", PhaseDurations: map[string]float64{"spec": -3}, Quality: analytics.QualityUnset})
	if err == nil {
		t.Fatal("expected error for negative duration")
	}
	_, err = s.Record(domain.HuntMetricRecord{HuntID: "h1", PhaseDurations: map[string]float64{"spec": 3}, Quality: 1.5})
	if err == nil {
		t.Fatal("expected error for quality outside [0,1]")
	}
	r, err := s.Record(domain.HuntMetricRecord{HuntID: "h1", FeatureName: "x", TeamSize: 2, PhaseDurations: map[string]float64{"spec": 3}, Quality: 0.8})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if r.ID == "" || r.RecordedAt.IsZero() {
		t.Fatalf("record not stamped: %+v", r)
	}
}

func TestEmptyReport(t *testing.T) {
	s := load(t, t.TempDir())
	report := s.TeamReport()
	if report.TotalHunts != 0 || report.AverageQuality != 0 {
		t.Fatalf("expected zeroed report, got %+v", report)
	}
	if len(report.PhaseAverages) != 0 || len(report.TeamSizeAverages) != 0 {
		t.Fatalf("expected empty aggregates, got %+v", report)
	}
	md := analytics.FormatReportMarkdown(report)
	if !strings.Contains(md, "No hunts recorded yet") {
		t.Fatalf("markdown missing empty notice:\n%s", md)
	}
}

func TestTeamReportAggregates(t *testing.T) {
	s := load(t, t.TempDir())
	must := func(r domain.HuntMetricRecord) {
		t.Helper()
		if _, err := s.Record(r); err != nil {
			t.Fatal(err)
		}
	}
	must(domain.HuntMetricRecord{HuntID: "h1", TeamSize: 2, PhaseDurations: map[string]float64{"spec": 10, "build": 30}, Quality: 0.9})
	must(domain.HuntMetricRecord{HuntID: "h2", TeamSize: 2, PhaseDurations: map[string]float64{"spec": 20, "build": 50}, Quality: 0.7})
	must(domain.HuntMetricRecord{HuntID: "h3", TeamSize: 4, PhaseDurations: map[string]float64{"spec": 40}, Quality: analytics.QualityUnset})

	report := s.TeamReport()
	if report.TotalHunts != 3 {
		t.Fatalf("total = %d", report.TotalHunts)
	}
	approx := func(got, want float64) bool { return math.Abs(got-want) < 1e-9 }
	if !approx(report.PhaseAverages["spec"], (10+20+40)/3.0) {
		t.Fatalf("spec average = %v", report.PhaseAverages["spec"])
	}
	if !approx(report.PhaseAverages["build"], 40) {
		t.Fatalf("build average = %v", report.PhaseAverages["build"])
	}
	if !approx(report.TeamSizeAverages[2], (40.0+70.0)/2) {
		t.Fatalf("size-2 average = %v", report.TeamSizeAverages[2])
	}
	if !approx(report.TeamSizeAverages[4], 40) {
		t.Fatalf("size-4 average = %v", report.TeamSizeAverages[4])
	}
	if report.QualitySamples != 2 || !approx(report.AverageQuality, 0.8) {
		t.Fatalf("quality = %v over %d", report.AverageQuality, report.QualitySamples)
	}

	md := analytics.FormatReportMarkdown(report)
	for _, want := range []string{"| spec |", "| build |", "| 2 |", "| 4 |", "Average quality: 0.80"} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestRecordFromHunt(t *testing.T) {
	s := load(t, t.TempDir())
	done := time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC)
	h := domain.Hunt{
		ID:          "h9",
		FeatureName: "search",
		Status:      domain.HuntCompleted,
		CompletedAt: &done,
		PhaseHistory: []domain.PhaseEntry{
			{Phase: "spec", DurationMinutes: 12, Closed: true},
			{Phase: "build", DurationMinutes: 48, Closed: true},
		},
	}
	r, err := s.RecordFromHunt(h, 2, 0.95)
	if err != nil {
		t.Fatalf("record from hunt: %v", err)
	}
	if r.PhaseDurations["spec"] != 12 || r.PhaseDurations["build"] != 48 || r.TeamSize != 2 {
		t.Fatalf("unexpected record: %+v", r)
	}
	h.Status = domain.HuntActive
	if _, err := s.RecordFromHunt(h, 2, analytics.QualityUnset); err == nil {
		t.Fatal("expected error for active hunt")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := load(t, dir)
	if _, err := s.Record(domain.HuntMetricRecord{HuntID: "h1", TeamSize: 1, PhaseDurations: map[string]float64{"spec": 5}, Quality: analytics.QualityUnset}); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	reloaded := load(t, dir)
	got := reloaded.Metrics()
	if len(got) != 1 || got[0].HuntID != "h1" || got[0].PhaseDurations["spec"] != 5 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}
