// Package team persists the project identity, the roster and the derived
// workflow topology as a single JSON document. The topology is recomputed
// from the roster on every change; the stored copy is a display cache.
package team

import (
	"errors"
	"fmt"
	"path/filepath"

	"huntboard/internal/domain"
	"huntboard/internal/roles"
	"huntboard/internal/store"
	"huntboard/internal/topology"
)

const (
	fileName = "team.json"

	// MaxTeamSize bounds the roster; every member holds a distinct role.
	MaxTeamSize = 4
)

var (
	ErrAlreadyExists  = errors.New("team configuration already exists")
	ErrDuplicateRole  = errors.New("role already assigned")
	ErrTeamFull       = errors.New("team is full")
	ErrNotFound       = errors.New("not found")
	ErrNotInitialized = errors.New("team not initialized")
)

// Store owns the team configuration document for one workspace.
type Store struct {
	workspace string
	policy    topology.AssignmentPolicy

	cfg *domain.TeamConfig
}

func NewStore(workspace string, policy topology.AssignmentPolicy) *Store {
	return &Store{workspace: workspace, policy: policy}
}

// Path returns the team document path for the store's workspace.
func (s *Store) Path() string {
	return filepath.Join(store.Dir(s.workspace), fileName)
}

// InitOptions are the inputs for Initialize. Team size is the roster size.
type InitOptions struct {
	Name    string
	Org     string
	Repo    string
	Members []domain.Member
	Force   bool
}

// Initialize validates the roster, derives the topology and persists the
// document. Fails with ErrAlreadyExists when a document is present and
// Force is unset.
func (s *Store) Initialize(opts InitOptions) (*domain.TeamConfig, error) {
	if opts.Name == "" {
		return nil, fmt.Errorf("project name is required")
	}
	if !opts.Force {
		existing, err := s.Load()
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%s: %w", s.Path(), ErrAlreadyExists)
		}
	}
	if err := validateRoster(opts.Members); err != nil {
		return nil, err
	}
	size := len(opts.Members)
	workflow, err := topology.ConfigByTeamSize(size, opts.Members, s.policy)
	if err != nil {
		return nil, err
	}
	cfg := &domain.TeamConfig{
		Name:     opts.Name,
		Org:      opts.Org,
		Repo:     opts.Repo,
		TeamSize: size,
		Members:  opts.Members,
		Workflow: workflow,
	}
	if err := s.persist(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the team document, returning nil with no error when the
// workspace has no configuration yet.
func (s *Store) Load() (*domain.TeamConfig, error) {
	if s.cfg != nil {
		return s.cfg, nil
	}
	var cfg domain.TeamConfig
	found, err := store.ReadJSON(s.Path(), &cfg)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	s.cfg = &cfg
	return s.cfg, nil
}

func (s *Store) loaded() (*domain.TeamConfig, error) {
	cfg, err := s.Load()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, ErrNotInitialized
	}
	return cfg, nil
}

// AddMember appends a member, recomputes the topology and persists.
func (s *Store) AddMember(username, role string) (*domain.TeamConfig, error) {
	cfg, err := s.loaded()
	if err != nil {
		return nil, err
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if _, err := roles.Get(role); err != nil {
		return nil, err
	}
	if len(cfg.Members) >= MaxTeamSize {
		return nil, fmt.Errorf("roster has %d members: %w", len(cfg.Members), ErrTeamFull)
	}
	for _, m := range cfg.Members {
		if m.Role == role {
			return nil, fmt.Errorf("role %s held by %s: %w", role, m.Username, ErrDuplicateRole)
		}
		if m.Username == username {
			return nil, fmt.Errorf("member %s already on the roster", username)
		}
	}
	cfg.Members = append(cfg.Members, domain.Member{Username: username, Role: role})
	return s.recompute(cfg)
}

// RemoveMember drops a member from the roster, recomputes and persists.
func (s *Store) RemoveMember(username string) (*domain.TeamConfig, error) {
	cfg, err := s.loaded()
	if err != nil {
		return nil, err
	}
	kept := cfg.Members[:0]
	removed := false
	for _, m := range cfg.Members {
		if m.Username == username {
			removed = true
			continue
		}
		kept = append(kept, m)
	}
	if !removed {
		return nil, fmt.Errorf("member %s: %w", username, ErrNotFound)
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("cannot remove the last member")
	}
	cfg.Members = kept
	return s.recompute(cfg)
}

func (s *Store) recompute(cfg *domain.TeamConfig) (*domain.TeamConfig, error) {
	cfg.TeamSize = len(cfg.Members)
	workflow, err := topology.ConfigByTeamSize(cfg.TeamSize, cfg.Members, s.policy)
	if err != nil {
		return nil, err
	}
	cfg.Workflow = workflow
	if err := s.persist(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *Store) persist(cfg *domain.TeamConfig) error {
	if _, err := store.EnsureWorkspace(s.workspace); err != nil {
		return err
	}
	if err := store.WriteJSON(s.Path(), cfg); err != nil {
		return err
	}
	s.cfg = cfg
	return nil
}

// Members returns the roster in insertion order.
func (s *Store) Members() ([]domain.Member, error) {
	cfg, err := s.loaded()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Member, len(cfg.Members))
	copy(out, cfg.Members)
	return out, nil
}

// MemberByRole returns the member holding a role.
func (s *Store) MemberByRole(role string) (domain.Member, error) {
	cfg, err := s.loaded()
	if err != nil {
		return domain.Member{}, err
	}
	for _, m := range cfg.Members {
		if m.Role == role {
			return m, nil
		}
	}
	return domain.Member{}, fmt.Errorf("no member with role %s: %w", role, ErrNotFound)
}

// Recommendations inspects the roster and topology for gaps. Advisory only.
func (s *Store) Recommendations() ([]string, error) {
	cfg, err := s.loaded()
	if err != nil {
		return nil, err
	}
	var recs []string
	held := make(map[string]bool, len(cfg.Members))
	for _, m := range cfg.Members {
		held[m.Role] = true
	}
	for _, c := range cfg.Workflow.Columns {
		if cfg.Workflow.MemberMapping[c.ID] == "" {
			recs = append(recs, fmt.Sprintf("Column %s has no assignee; add a member or rerun init", c.Name))
		}
	}
	if !held[roles.Sentinel] {
		recs = append(recs, "No dedicated verification owner; consider adding a member with the sentinel role")
	}
	if len(cfg.Members) == 1 {
		recs = append(recs, "Single-operator team: every phase shares one owner, reviews are self-reviews")
	}
	if len(cfg.Members) < MaxTeamSize {
		for _, id := range roles.Sequence() {
			if !held[id] && id != roles.Sentinel {
				r, _ := roles.Get(id)
				recs = append(recs, fmt.Sprintf("Role %s (%s) is open", r.Name, r.ID))
			}
		}
	}
	return recs, nil
}

func validateRoster(members []domain.Member) error {
	if len(members) == 0 || len(members) > MaxTeamSize {
		return fmt.Errorf("roster size %d: %w", len(members), topology.ErrInvalidTeamSize)
	}
	seenRole := make(map[string]string, len(members))
	seenUser := make(map[string]bool, len(members))
	for _, m := range members {
		if m.Username == "" {
			return fmt.Errorf("member username is required")
		}
		if seenUser[m.Username] {
			return fmt.Errorf("member %s listed twice", m.Username)
		}
		seenUser[m.Username] = true
		if _, err := roles.Get(m.Role); err != nil {
			return err
		}
		if holder, ok := seenRole[m.Role]; ok {
			return fmt.Errorf("role %s held by %s: %w", m.Role, holder, ErrDuplicateRole)
		}
		seenRole[m.Role] = m.Username
	}
	return nil
}
