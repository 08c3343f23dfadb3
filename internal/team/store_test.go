package team_test

import (
	"errors"
	"testing"

	"huntboard/internal/domain"
	"huntboard/internal/team"
	"huntboard/internal/topology"
)

func newStore(t *testing.T) *team.Store {
	t.Helper()
	return team.NewStore(t.TempDir(), topology.PolicyNearestRole)
}

func pair() []domain.Member {
	return []domain.Member{
		{Username: "alice", Role: "scout"},
		{Username: "bob", Role: "builder"},
	}
}

func TestInitializeAndLoad(t *testing.T) {
	dir := t.TempDir()
	s := team.NewStore(dir, topology.PolicyNearestRole)
	cfg, err := s.Initialize(team.InitOptions{Name: "apollo", Org: "acme", Repo: "apollo", Members: pair()})
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if cfg.TeamSize != 2 || len(cfg.Workflow.Columns) != 3 {
		t.Fatalf("unexpected config: size=%d columns=%d", cfg.TeamSize, len(cfg.Workflow.Columns))
	}
	// A fresh store against the same workspace reads the same document.
	reread, err := team.NewStore(dir, topology.PolicyNearestRole).Load()
	if err != nil {
		t.Fatal(err)
	}
	if reread == nil || reread.Name != "apollo" || len(reread.Members) != 2 {
		t.Fatalf("reload mismatch: %+v", reread)
	}
}

func TestLoadAbsentIsNil(t *testing.T) {
	cfg, err := newStore(t).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != nil {
		t.Fatalf("expected nil config, got %+v", cfg)
	}
}

func TestInitializeRejectsExisting(t *testing.T) {
	dir := t.TempDir()
	s := team.NewStore(dir, topology.PolicyNearestRole)
	if _, err := s.Initialize(team.InitOptions{Name: "apollo", Members: pair()}); err != nil {
		t.Fatal(err)
	}
	_, err := team.NewStore(dir, topology.PolicyNearestRole).Initialize(team.InitOptions{Name: "apollo", Members: pair()})
	if !errors.Is(err, team.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	// Force overwrites.
	if _, err := team.NewStore(dir, topology.PolicyNearestRole).Initialize(team.InitOptions{Name: "artemis", Members: pair(), Force: true}); err != nil {
		t.Fatalf("force init: %v", err)
	}
}

func TestInitializeValidatesRoster(t *testing.T) {
	s := newStore(t)
	_, err := s.Initialize(team.InitOptions{Name: "x", Members: []domain.Member{
		{Username: "a", Role: "scout"},
		{Username: "b", Role: "scout"},
	}})
	if !errors.Is(err, team.ErrDuplicateRole) {
		t.Fatalf("expected ErrDuplicateRole, got %v", err)
	}
	_, err = s.Initialize(team.InitOptions{Name: "x", Members: nil})
	if !errors.Is(err, topology.ErrInvalidTeamSize) {
		t.Fatalf("expected ErrInvalidTeamSize, got %v", err)
	}
	_, err = s.Initialize(team.InitOptions{Name: "x", Members: []domain.Member{{Username: "a", Role: "wizard"}}})
	if err == nil {
		t.Fatal("expected unknown role error")
	}
}

func TestAddMember(t *testing.T) {
	s := newStore(t)
	if _, err := s.Initialize(team.InitOptions{Name: "apollo", Members: pair()}); err != nil {
		t.Fatal(err)
	}
	cfg, err := s.AddMember("carol", "sentinel")
	if err != nil {
		t.Fatalf("add member: %v", err)
	}
	if cfg.TeamSize != 3 || len(cfg.Workflow.Columns) != 4 {
		t.Fatalf("topology not recomputed: size=%d columns=%d", cfg.TeamSize, len(cfg.Workflow.Columns))
	}
	if _, err := s.AddMember("dave", "builder"); !errors.Is(err, team.ErrDuplicateRole) {
		t.Fatalf("expected ErrDuplicateRole, got %v", err)
	}
	if _, err := s.AddMember("dave", "architect"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddMember("erin", "architect"); !errors.Is(err, team.ErrTeamFull) {
		t.Fatalf("expected ErrTeamFull at size 4, got %v", err)
	}
}

func TestRemoveMember(t *testing.T) {
	s := newStore(t)
	if _, err := s.Initialize(team.InitOptions{Name: "apollo", Members: pair()}); err != nil {
		t.Fatal(err)
	}
	cfg, err := s.RemoveMember("bob")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if cfg.TeamSize != 1 || len(cfg.Workflow.Columns) != 3 {
		t.Fatalf("topology not recomputed: %+v", cfg.Workflow)
	}
	if _, err := s.RemoveMember("ghost"); !errors.Is(err, team.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.RemoveMember("alice"); err == nil {
		t.Fatal("expected last-member error")
	}
}

func TestMemberByRole(t *testing.T) {
	s := newStore(t)
	if _, err := s.Initialize(team.InitOptions{Name: "apollo", Members: pair()}); err != nil {
		t.Fatal(err)
	}
	m, err := s.MemberByRole("builder")
	if err != nil || m.Username != "bob" {
		t.Fatalf("member by role = %+v, %v", m, err)
	}
	if _, err := s.MemberByRole("sentinel"); !errors.Is(err, team.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRecommendations(t *testing.T) {
	s := newStore(t)
	if _, err := s.Initialize(team.InitOptions{Name: "apollo", Members: []domain.Member{{Username: "solo", Role: "builder"}}}); err != nil {
		t.Fatal(err)
	}
	recs, err := s.Recommendations()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) == 0 {
		t.Fatal("expected advisories for a solo roster")
	}
}

func TestOperationsRequireInit(t *testing.T) {
	s := newStore(t)
	if _, err := s.AddMember("a", "scout"); !errors.Is(err, team.ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
	if _, err := s.Recommendations(); !errors.Is(err, team.ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}
