package tracker

import (
	"path/filepath"

	"huntboard/internal/domain"
	"huntboard/internal/store"
)

const fileName = "hunts.json"

// document is the on-disk shape of the hunt collection.
type document struct {
	Hunts []domain.Hunt `json:"hunts"`
}

// Path returns the hunts document path for a workspace.
func Path(workspace string) string {
	return filepath.Join(store.Dir(workspace), fileName)
}

// Load reads the hunts document for a workspace. A missing file yields an
// empty tracker; no hunts yet is a valid starting state.
func Load(workspace string) (*Tracker, error) {
	t := New()
	var doc document
	found, err := store.ReadJSON(Path(workspace), &doc)
	if err != nil {
		return nil, err
	}
	if !found {
		return t, nil
	}
	for i := range doc.Hunts {
		h := doc.Hunts[i]
		t.index[h.ID] = len(t.hunts)
		t.hunts = append(t.hunts, &h)
	}
	return t, nil
}

// Save atomically replaces the hunts document.
func (t *Tracker) Save(workspace string) error {
	if _, err := store.EnsureWorkspace(workspace); err != nil {
		return err
	}
	t.mu.Lock()
	doc := document{Hunts: make([]domain.Hunt, 0, len(t.hunts))}
	for _, h := range t.hunts {
		doc.Hunts = append(doc.Hunts, copyHunt(h))
	}
	t.mu.Unlock()
	return store.WriteJSON(Path(workspace), doc)
}
