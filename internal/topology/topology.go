// Package topology derives the board layout for a team: the ordered phase
// columns for a given team size and the phase -> assignee mapping.
package topology

import (
	"errors"
	"fmt"
	"strings"

	"huntboard/internal/domain"
	"huntboard/internal/roles"
)

var ErrInvalidTeamSize = errors.New("team size must be between 1 and 4")

// AssignmentPolicy selects how columns are mapped to members when the team
// is smaller than the column count.
type AssignmentPolicy string

const (
	// PolicyNearestRole assigns each column to the member whose role matches
	// the column, falling back to the member with the nearest role in
	// catalog order (preceding first), then to the previous column's
	// assignee.
	PolicyNearestRole AssignmentPolicy = "nearest-role"
	// PolicyRoundRobin cycles through the roster in order.
	PolicyRoundRobin AssignmentPolicy = "round-robin"
)

// Phase ids.
const (
	PhaseDiscover = "discover"
	PhaseSpec     = "spec"
	PhaseBuild    = "build"
	PhaseVerify   = "verify"
	PhaseShip     = "ship"
)

// columnLayout is one board column plus the catalog role it corresponds to.
type columnLayout struct {
	ID   string
	Name string
	Role string
}

var allColumns = map[string]columnLayout{
	PhaseDiscover: {ID: PhaseDiscover, Name: "🔍 Discovery", Role: roles.Scout},
	PhaseSpec:     {ID: PhaseSpec, Name: "📐 Spec", Role: roles.Architect},
	PhaseBuild:    {ID: PhaseBuild, Name: "🔨 In Progress", Role: roles.Builder},
	PhaseVerify:   {ID: PhaseVerify, Name: "🛡️ Review", Role: roles.Sentinel},
	PhaseShip:     {ID: PhaseShip, Name: "🚀 Ship", Role: roles.Sentinel},
}

// layouts maps team size to its column sequence. Adding a size is a data
// change, not a code change.
var layouts = map[int][]string{
	1: {PhaseSpec, PhaseBuild, PhaseVerify},
	2: {PhaseSpec, PhaseBuild, PhaseVerify},
	3: {PhaseDiscover, PhaseSpec, PhaseBuild, PhaseVerify},
	4: {PhaseDiscover, PhaseSpec, PhaseBuild, PhaseVerify, PhaseShip},
}

// Columns returns the board columns for a team size.
func Columns(teamSize int) ([]domain.Column, error) {
	ids, ok := layouts[teamSize]
	if !ok {
		return nil, fmt.Errorf("team size %d: %w", teamSize, ErrInvalidTeamSize)
	}
	cols := make([]domain.Column, len(ids))
	for i, id := range ids {
		c := allColumns[id]
		cols[i] = domain.Column{ID: c.ID, Name: c.Name}
	}
	return cols, nil
}

// Sequence returns the phase id order for a team size.
func Sequence(teamSize int) ([]string, error) {
	ids, ok := layouts[teamSize]
	if !ok {
		return nil, fmt.Errorf("team size %d: %w", teamSize, ErrInvalidTeamSize)
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out, nil
}

// MapMembersToColumns assigns every column to a roster member. With an
// empty roster the mapping is empty; the display layer renders those
// columns as unassigned.
func MapMembersToColumns(teamSize int, members []domain.Member, policy AssignmentPolicy) (map[string]string, error) {
	ids, ok := layouts[teamSize]
	if !ok {
		return nil, fmt.Errorf("team size %d: %w", teamSize, ErrInvalidTeamSize)
	}
	mapping := make(map[string]string, len(ids))
	if len(members) == 0 {
		return mapping, nil
	}
	if policy == PolicyRoundRobin {
		for i, id := range ids {
			mapping[id] = members[i%len(members)].Username
		}
		return mapping, nil
	}
	byRole := make(map[string]string, len(members))
	for _, m := range members {
		byRole[m.Role] = m.Username
	}
	prev := ""
	for _, id := range ids {
		col := allColumns[id]
		assignee := nearestByRole(col.Role, byRole)
		if assignee == "" {
			assignee = prev
		}
		if assignee != "" {
			mapping[id] = assignee
		}
		prev = assignee
	}
	return mapping, nil
}

// nearestByRole finds the member whose role is closest to want in catalog
// order, preferring exact match, then preceding roles, then following ones.
func nearestByRole(want string, byRole map[string]string) string {
	if u, ok := byRole[want]; ok {
		return u
	}
	seq := roles.Sequence()
	at := roles.Index(want)
	if at < 0 {
		return ""
	}
	for i := at - 1; i >= 0; i-- {
		if u, ok := byRole[seq[i]]; ok {
			return u
		}
	}
	for i := at + 1; i < len(seq); i++ {
		if u, ok := byRole[seq[i]]; ok {
			return u
		}
	}
	return ""
}

// ConfigByTeamSize composes columns, sequence and member mapping into the
// full topology.
func ConfigByTeamSize(teamSize int, members []domain.Member, policy AssignmentPolicy) (domain.WorkflowTopology, error) {
	cols, err := Columns(teamSize)
	if err != nil {
		return domain.WorkflowTopology{}, err
	}
	seq, err := Sequence(teamSize)
	if err != nil {
		return domain.WorkflowTopology{}, err
	}
	mapping, err := MapMembersToColumns(teamSize, members, policy)
	if err != nil {
		return domain.WorkflowTopology{}, err
	}
	return domain.WorkflowTopology{Columns: cols, Sequence: seq, MemberMapping: mapping}, nil
}

// GitHubSetupInstructions renders the manual gh steps for mirroring the
// board on a GitHub project. Pure formatting, no side effects.
func GitHubSetupInstructions(teamSize int, members []domain.Member) (string, error) {
	topo, err := ConfigByTeamSize(teamSize, members, PolicyNearestRole)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("GitHub board setup\n")
	b.WriteString("  1. gh project create --title \"Hunt Board\"\n")
	b.WriteString("  2. Replace the default columns with, in order:\n")
	for _, c := range topo.Columns {
		b.WriteString(fmt.Sprintf("       - %s\n", c.Name))
	}
	b.WriteString("  3. Invite collaborators and note the column owners:\n")
	for _, c := range topo.Columns {
		if owner := topo.MemberMapping[c.ID]; owner != "" {
			b.WriteString(fmt.Sprintf("       - %s -> @%s\n", c.Name, owner))
		} else {
			b.WriteString(fmt.Sprintf("       - %s -> unassigned\n", c.Name))
		}
	}
	b.WriteString("  4. gh label create hunt --color 5319E7 --description \"tracked hunt\"\n")
	b.WriteString("  5. Each hunt opens one issue labelled hunt; move its card as phases change.\n")
	return b.String(), nil
}
