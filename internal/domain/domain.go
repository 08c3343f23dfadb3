package domain

import "time"

// HuntStatus is the lifecycle state of a hunt.
type HuntStatus string

const (
	HuntActive    HuntStatus = "active"
	HuntCompleted HuntStatus = "completed"
)

// Role is a functional responsibility assignable to exactly one team member.
type Role struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Symbol   string   `json:"symbol"`
	Keywords []string `json:"keywords"`
}

// Member pairs a platform username with a single role.
type Member struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Column is one phase descriptor on the board.
type Column struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// WorkflowTopology is derived from team size and roster: the ordered
// columns, the matching phase sequence, and the phase -> assignee mapping.
// A phase absent from MemberMapping is rendered as unassigned.
type WorkflowTopology struct {
	Columns       []Column          `json:"columns"`
	Sequence      []string          `json:"sequence"`
	MemberMapping map[string]string `json:"memberMapping"`
}

// Assignee returns the username mapped to a phase, or "" when unassigned.
func (t WorkflowTopology) Assignee(phase string) string {
	return t.MemberMapping[phase]
}

// TeamConfig is the persisted team document: project identity, roster and
// the cached topology.
type TeamConfig struct {
	Name     string           `json:"name"`
	Org      string           `json:"org"`
	Repo     string           `json:"repo"`
	TeamSize int              `json:"teamSize"`
	Members  []Member         `json:"members"`
	Workflow WorkflowTopology `json:"workflow"`
}

// PhaseEntry records one stay in a phase. DurationMinutes stays zero until
// the phase is left; the tracker closes it on transition or completion.
type PhaseEntry struct {
	Phase           string    `json:"phase"`
	EnteredAt       time.Time `json:"enteredAt"`
	Assignee        string    `json:"assignee,omitempty"`
	DurationMinutes float64   `json:"durationMinutes"`
	Closed          bool      `json:"closed"`
}

// Hunt is a tracked unit of feature work progressing through phases.
// Sequence is the phase order captured at creation; transitions are only
// legal against it, never against a later topology.
type Hunt struct {
	ID           string       `json:"id"`
	FeatureName  string       `json:"featureName"`
	Description  string       `json:"description,omitempty"`
	Status       HuntStatus   `json:"status"`
	CurrentPhase string       `json:"currentPhase"`
	Sequence     []string     `json:"sequence"`
	PhaseHistory []PhaseEntry `json:"phaseHistory"`
	CreatedAt    time.Time    `json:"createdAt"`
	CompletedAt  *time.Time   `json:"completedAt,omitempty"`
}

// HuntMetricRecord is an immutable snapshot of a hunt's per-phase durations
// submitted for reporting. Quality is in [0,1]; negative means unset.
type HuntMetricRecord struct {
	ID             string             `json:"id"`
	HuntID         string             `json:"huntId"`
	FeatureName    string             `json:"featureName"`
	TeamSize       int                `json:"teamSize"`
	PhaseDurations map[string]float64 `json:"phaseDurations"`
	Quality        float64            `json:"quality"`
	RecordedAt     time.Time          `json:"recordedAt"`
}

// TeamReport aggregates all recorded metrics.
type TeamReport struct {
	ProjectName      string             `json:"projectName"`
	TotalHunts       int                `json:"totalHunts"`
	PhaseAverages    map[string]float64 `json:"phaseAverages"`
	TeamSizeAverages map[int]float64    `json:"teamSizeAverages"`
	AverageQuality   float64            `json:"averageQuality"`
	QualitySamples   int                `json:"qualitySamples"`
	GeneratedAt      time.Time          `json:"generatedAt"`
}
