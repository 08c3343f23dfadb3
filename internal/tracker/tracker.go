// Package tracker owns the hunt collection and its lifecycle state
// machine: create, transition forward one phase at a time, complete. The
// collection is an insertion-ordered arena with an id index; callers only
// ever see copies.
package tracker

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"huntboard/internal/domain"
	"huntboard/internal/events"
)

var (
	ErrNotFound          = errors.New("hunt not found")
	ErrInvalidTransition = errors.New("invalid phase transition")
	ErrAlreadyCompleted  = errors.New("hunt already completed")
)

// Tracker is safe for use from multiple goroutines; one instance per
// workspace, since load-mutate-save is only atomic behind its lock.
type Tracker struct {
	mu        sync.Mutex
	hunts     []*domain.Hunt
	index     map[string]int
	observers []events.Observer

	// Now is the clock; tests freeze it.
	Now func() time.Time
}

func New() *Tracker {
	return &Tracker{
		index: make(map[string]int),
		Now:   time.Now,
	}
}

func (t *Tracker) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

// Subscribe registers an observer called after each successful state
// change, outside the tracker lock. Observer errors are the observer's
// problem; they never undo the change.
func (t *Tracker) Subscribe(fn events.Observer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.observers = append(t.observers, fn)
}

func (t *Tracker) notify(e events.Event) {
	t.mu.Lock()
	obs := make([]events.Observer, len(t.observers))
	copy(obs, t.observers)
	t.mu.Unlock()
	for _, fn := range obs {
		fn(e)
	}
}

// StartHunt creates a hunt at the first phase of the given sequence.
// assignees maps phase id to username and may be nil.
func (t *Tracker) StartHunt(featureName, description string, sequence []string, assignees map[string]string) (domain.Hunt, error) {
	if featureName == "" {
		return domain.Hunt{}, fmt.Errorf("feature name is required")
	}
	if len(sequence) == 0 {
		return domain.Hunt{}, fmt.Errorf("phase sequence is required")
	}
	now := t.now()
	h := &domain.Hunt{
		ID:           uuid.NewString(),
		FeatureName:  featureName,
		Description:  description,
		Status:       domain.HuntActive,
		CurrentPhase: sequence[0],
		Sequence:     append([]string(nil), sequence...),
		PhaseHistory: []domain.PhaseEntry{{
			Phase:     sequence[0],
			EnteredAt: now,
			Assignee:  assignees[sequence[0]],
		}},
		CreatedAt: now,
	}
	t.mu.Lock()
	t.index[h.ID] = len(t.hunts)
	t.hunts = append(t.hunts, h)
	snapshot := copyHunt(h)
	t.mu.Unlock()

	t.notify(events.Event{
		Type:       events.HuntCreated,
		EntityKind: "hunt",
		EntityID:   snapshot.ID,
		Payload:    events.Payload{"feature": snapshot.FeatureName, "phase": snapshot.CurrentPhase},
	})
	return snapshot, nil
}

// TransitionHunt advances a hunt to the immediate successor of its current
// phase. Any other target fails with ErrInvalidTransition; the error names
// the current phase, the attempted phase and, when one exists, the legal
// next phase.
func (t *Tracker) TransitionHunt(id, nextPhase, assignee string) (domain.Hunt, error) {
	t.mu.Lock()
	h, err := t.get(id)
	if err != nil {
		t.mu.Unlock()
		return domain.Hunt{}, err
	}
	if h.Status == domain.HuntCompleted {
		t.mu.Unlock()
		return domain.Hunt{}, fmt.Errorf("hunt %s: %w", id, ErrAlreadyCompleted)
	}
	at := phaseIndex(h.Sequence, h.CurrentPhase)
	if at < 0 || at+1 >= len(h.Sequence) {
		t.mu.Unlock()
		return domain.Hunt{}, fmt.Errorf("hunt %s at final phase %s, cannot move to %s: %w",
			id, h.CurrentPhase, nextPhase, ErrInvalidTransition)
	}
	if h.Sequence[at+1] != nextPhase {
		t.mu.Unlock()
		return domain.Hunt{}, fmt.Errorf("hunt %s at phase %s: next phase is %s, not %s: %w",
			id, h.CurrentPhase, h.Sequence[at+1], nextPhase, ErrInvalidTransition)
	}
	now := t.now()
	from := h.CurrentPhase
	t.closeCurrentPhase(h, now)
	h.CurrentPhase = nextPhase
	h.PhaseHistory = append(h.PhaseHistory, domain.PhaseEntry{
		Phase:     nextPhase,
		EnteredAt: now,
		Assignee:  assignee,
	})
	snapshot := copyHunt(h)
	t.mu.Unlock()

	t.notify(events.Event{
		Type:       events.HuntPhaseChanged,
		EntityKind: "hunt",
		EntityID:   snapshot.ID,
		Payload:    events.Payload{"from": from, "to": nextPhase, "assignee": assignee},
	})
	return snapshot, nil
}

// CompleteHunt closes the final phase and marks the hunt completed.
// Completion is one-way; repeating it fails with ErrAlreadyCompleted.
func (t *Tracker) CompleteHunt(id string) (domain.Hunt, error) {
	t.mu.Lock()
	h, err := t.get(id)
	if err != nil {
		t.mu.Unlock()
		return domain.Hunt{}, err
	}
	if h.Status == domain.HuntCompleted {
		t.mu.Unlock()
		return domain.Hunt{}, fmt.Errorf("hunt %s: %w", id, ErrAlreadyCompleted)
	}
	now := t.now()
	t.closeCurrentPhase(h, now)
	h.Status = domain.HuntCompleted
	h.CompletedAt = &now
	snapshot := copyHunt(h)
	t.mu.Unlock()

	t.notify(events.Event{
		Type:       events.HuntCompleted,
		EntityKind: "hunt",
		EntityID:   snapshot.ID,
		Payload:    events.Payload{"feature": snapshot.FeatureName, "phase": snapshot.CurrentPhase},
	})
	return snapshot, nil
}

// closeCurrentPhase stamps the duration of the open history entry.
// Caller holds the lock.
func (t *Tracker) closeCurrentPhase(h *domain.Hunt, now time.Time) {
	for i := len(h.PhaseHistory) - 1; i >= 0; i-- {
		e := &h.PhaseHistory[i]
		if e.Phase == h.CurrentPhase && !e.Closed {
			e.DurationMinutes = now.Sub(e.EnteredAt).Minutes()
			e.Closed = true
			return
		}
	}
}

// Hunt returns a copy of the hunt with the given id.
func (t *Tracker) Hunt(id string) (domain.Hunt, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	h, err := t.get(id)
	if err != nil {
		return domain.Hunt{}, err
	}
	return copyHunt(h), nil
}

// ActiveHunts returns active hunts in insertion order.
func (t *Tracker) ActiveHunts() []domain.Hunt {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []domain.Hunt
	for _, h := range t.hunts {
		if h.Status == domain.HuntActive {
			out = append(out, copyHunt(h))
		}
	}
	return out
}

// AllHunts returns every hunt in insertion order, completed ones included.
func (t *Tracker) AllHunts() []domain.Hunt {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]domain.Hunt, 0, len(t.hunts))
	for _, h := range t.hunts {
		out = append(out, copyHunt(h))
	}
	return out
}

// TotalDurationMinutes sums all closed phase durations; for an active hunt
// the open phase contributes its elapsed time at call time. Derived, never
// stored, and frozen once the hunt completes.
func (t *Tracker) TotalDurationMinutes(id string) (float64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	h, err := t.get(id)
	if err != nil {
		return 0, err
	}
	total := 0.0
	now := t.now()
	for _, e := range h.PhaseHistory {
		if e.Closed {
			total += e.DurationMinutes
		} else if h.Status == domain.HuntActive {
			total += now.Sub(e.EnteredAt).Minutes()
		}
	}
	return total, nil
}

func (t *Tracker) get(id string) (*domain.Hunt, error) {
	i, ok := t.index[id]
	if !ok {
		return nil, fmt.Errorf("hunt %s: %w", id, ErrNotFound)
	}
	return t.hunts[i], nil
}

func phaseIndex(sequence []string, phase string) int {
	for i, p := range sequence {
		if p == phase {
			return i
		}
	}
	return -1
}

func copyHunt(h *domain.Hunt) domain.Hunt {
	out := *h
	out.Sequence = append([]string(nil), h.Sequence...)
	out.PhaseHistory = append([]domain.PhaseEntry(nil), h.PhaseHistory...)
	if h.CompletedAt != nil {
		at := *h.CompletedAt
		out.CompletedAt = &at
	}
	return out
}
