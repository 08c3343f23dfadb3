// Package analytics keeps the append-only list of hunt metric records and
// aggregates them into team reports.
package analytics

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"huntboard/internal/domain"
	"huntboard/internal/store"
)

const fileName = "metrics.json"

// QualityUnset marks a record submitted without a quality score.
const QualityUnset float64 = -1

// Store owns the metrics document for one project workspace.
type Store struct {
	projectName string
	workspace   string
	metrics     []domain.HuntMetricRecord

	Now func() time.Time
}

type document struct {
	Metrics []domain.HuntMetricRecord `json:"metrics"`
}

// Path returns the metrics document path for a workspace.
func Path(workspace string) string {
	return filepath.Join(store.Dir(workspace), fileName)
}

// Load reads the metrics document, starting empty when absent.
func Load(projectName, workspace string) (*Store, error) {
	s := &Store{projectName: projectName, workspace: workspace, Now: time.Now}
	var doc document
	if _, err := store.ReadJSON(Path(workspace), &doc); err != nil {
		return nil, err
	}
	s.metrics = doc.Metrics
	return s, nil
}

// Save atomically replaces the metrics document.
func (s *Store) Save() error {
	if _, err := store.EnsureWorkspace(s.workspace); err != nil {
		return err
	}
	return store.WriteJSON(Path(s.workspace), document{Metrics: s.metrics})
}

// Record validates and appends a metric record. Records are never updated
// or deleted afterwards.
func (s *Store) Record(r domain.HuntMetricRecord) (domain.HuntMetricRecord, error) {
	if r.HuntID == "" {
		return r, fmt.Errorf("hunt id is required")
	}
	if len(r.PhaseDurations) == 0 {
		return r, fmt.Errorf("phase durations are required")
	}
	for phase, minutes := range r.PhaseDurations {
		if minutes < 0 {
			return r, fmt.Errorf("phase %s has negative duration %v", phase, minutes)
		}
	}
	if r.Quality != QualityUnset && (r.Quality < 0 || r.Quality > 1) {
		return r, fmt.Errorf("quality %v outside [0,1]", r.Quality)
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.RecordedAt.IsZero() {
		r.RecordedAt = s.now()
	}
	s.metrics = append(s.metrics, r)
	return r, nil
}

// RecordFromHunt builds a record from a completed hunt's phase history.
func (s *Store) RecordFromHunt(h domain.Hunt, teamSize int, quality float64) (domain.HuntMetricRecord, error) {
	if h.Status != domain.HuntCompleted {
		return domain.HuntMetricRecord{}, fmt.Errorf("hunt %s is not completed", h.ID)
	}
	durations := make(map[string]float64, len(h.PhaseHistory))
	for _, e := range h.PhaseHistory {
		durations[e.Phase] += e.DurationMinutes
	}
	return s.Record(domain.HuntMetricRecord{
		HuntID:         h.ID,
		FeatureName:    h.FeatureName,
		TeamSize:       teamSize,
		PhaseDurations: durations,
		Quality:        quality,
	})
}

// Metrics returns the recorded metrics in insertion order.
func (s *Store) Metrics() []domain.HuntMetricRecord {
	out := make([]domain.HuntMetricRecord, len(s.metrics))
	copy(out, s.metrics)
	return out
}

// TeamReport aggregates every recorded metric. With no records it returns
// zeroed aggregates, never an error; callers render "no data yet".
func (s *Store) TeamReport() domain.TeamReport {
	report := domain.TeamReport{
		ProjectName:      s.projectName,
		TotalHunts:       len(s.metrics),
		PhaseAverages:    map[string]float64{},
		TeamSizeAverages: map[int]float64{},
		GeneratedAt:      s.now(),
	}
	phaseTotals := map[string]float64{}
	phaseCounts := map[string]int{}
	sizeTotals := map[int]float64{}
	sizeCounts := map[int]int{}
	qualityTotal := 0.0
	for _, m := range s.metrics {
		total := 0.0
		for phase, minutes := range m.PhaseDurations {
			phaseTotals[phase] += minutes
			phaseCounts[phase]++
			total += minutes
		}
		sizeTotals[m.TeamSize] += total
		sizeCounts[m.TeamSize]++
		if m.Quality != QualityUnset {
			qualityTotal += m.Quality
			report.QualitySamples++
		}
	}
	for phase, total := range phaseTotals {
		report.PhaseAverages[phase] = total / float64(phaseCounts[phase])
	}
	for size, total := range sizeTotals {
		report.TeamSizeAverages[size] = total / float64(sizeCounts[size])
	}
	if report.QualitySamples > 0 {
		report.AverageQuality = qualityTotal / float64(report.QualitySamples)
	}
	return report
}

// FormatReportMarkdown renders a report as markdown. Pure formatting.
func FormatReportMarkdown(r domain.TeamReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Team report: %s\n\n", r.ProjectName)
	if r.TotalHunts == 0 {
		b.WriteString("No hunts recorded yet.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "Hunts recorded: %d\n\n", r.TotalHunts)
	b.WriteString("## Average minutes per phase\n\n")
	b.WriteString("| Phase | Minutes |\n|---|---|\n")
	for _, phase := range sortedKeys(r.PhaseAverages) {
		fmt.Fprintf(&b, "| %s | %.1f |\n", phase, r.PhaseAverages[phase])
	}
	b.WriteString("\n## Average total minutes per team size\n\n")
	b.WriteString("| Team size | Minutes |\n|---|---|\n")
	sizes := make([]int, 0, len(r.TeamSizeAverages))
	for size := range r.TeamSizeAverages {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)
	for _, size := range sizes {
		fmt.Fprintf(&b, "| %d | %.1f |\n", size, r.TeamSizeAverages[size])
	}
	if r.QualitySamples > 0 {
		fmt.Fprintf(&b, "\nAverage quality: %.2f over %d scored hunts\n", r.AverageQuality, r.QualitySamples)
	} else {
		b.WriteString("\nNo quality scores recorded.\n")
	}
	return b.String()
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *Store) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
