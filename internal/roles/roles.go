// Package roles holds the fixed role catalog. The catalog is defined at
// compile time and read-only for the life of the process, so lookups are
// safe for concurrent callers.
package roles

import (
	"errors"
	"fmt"
	"strings"

	"huntboard/internal/domain"
)

var ErrNotFound = errors.New("role not found")

// Canonical role ids, in pipeline order.
const (
	Scout     = "scout"
	Architect = "architect"
	Builder   = "builder"
	Sentinel  = "sentinel"
)

var catalog = []domain.Role{
	{
		ID:       Scout,
		Name:     "Scout",
		Symbol:   "🔍",
		Keywords: []string{"requirements", "discovery", "research", "product", "scope"},
	},
	{
		ID:       Architect,
		Name:     "Architect",
		Symbol:   "📐",
		Keywords: []string{"specification", "spec", "design", "architecture", "planning"},
	},
	{
		ID:       Builder,
		Name:     "Builder",
		Symbol:   "🔨",
		Keywords: []string{"implementation", "code", "develop", "build", "engineering"},
	},
	{
		ID:       Sentinel,
		Name:     "Sentinel",
		Symbol:   "🛡️",
		Keywords: []string{"verification", "testing", "qa", "review", "quality"},
	},
}

var byID = func() map[string]domain.Role {
	m := make(map[string]domain.Role, len(catalog))
	for _, r := range catalog {
		m[r.ID] = r
	}
	return m
}()

// Sequence returns the canonical ordered list of role ids.
func Sequence() []string {
	ids := make([]string, len(catalog))
	for i, r := range catalog {
		ids[i] = r.ID
	}
	return ids
}

// All returns the catalog in canonical order.
func All() []domain.Role {
	out := make([]domain.Role, len(catalog))
	copy(out, catalog)
	return out
}

// Get returns the role for an id.
func Get(id string) (domain.Role, error) {
	r, ok := byID[id]
	if !ok {
		return domain.Role{}, fmt.Errorf("role %q: %w", id, ErrNotFound)
	}
	return r, nil
}

// Index returns the position of a role id in the canonical sequence, or -1.
func Index(id string) int {
	for i, r := range catalog {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// FindByKeyword returns the first role whose keyword list contains text as a
// case-insensitive substring. The role id and display name count as keywords.
func FindByKeyword(text string) (domain.Role, error) {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return domain.Role{}, fmt.Errorf("empty keyword: %w", ErrNotFound)
	}
	for _, r := range catalog {
		if strings.Contains(strings.ToLower(r.ID), needle) || strings.Contains(strings.ToLower(r.Name), needle) {
			return r, nil
		}
		for _, kw := range r.Keywords {
			if strings.Contains(strings.ToLower(kw), needle) {
				return r, nil
			}
		}
	}
	return domain.Role{}, fmt.Errorf("keyword %q: %w", text, ErrNotFound)
}
