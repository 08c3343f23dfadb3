package roles_test

import (
	"errors"
	"testing"

	"huntboard/internal/roles"
)

func TestSequenceOrder(t *testing.T) {
	seq := roles.Sequence()
	want := []string{"scout", "architect", "builder", "sentinel"}
	if len(seq) != len(want) {
		t.Fatalf("sequence length %d, want %d", len(seq), len(want))
	}
	for i, id := range want {
		if seq[i] != id {
			t.Fatalf("sequence[%d] = %s, want %s", i, seq[i], id)
		}
	}
}

func TestGet(t *testing.T) {
	r, err := roles.Get(roles.Builder)
	if err != nil {
		t.Fatalf("get builder: %v", err)
	}
	if r.Name != "Builder" || r.Symbol == "" {
		t.Fatalf("unexpected role metadata: %+v", r)
	}
	_, err = roles.Get("manager")
	if !errors.Is(err, roles.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindByKeyword(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"requirements", "scout"},
		{"QA", "sentinel"},
		{"Spec", "architect"},
		{"code", "builder"},
		{"archi", "architect"},
	}
	for _, tc := range cases {
		r, err := roles.FindByKeyword(tc.text)
		if err != nil {
			t.Fatalf("find %q: %v", tc.text, err)
		}
		if r.ID != tc.want {
			t.Fatalf("find %q = %s, want %s", tc.text, r.ID, tc.want)
		}
	}
	if _, err := roles.FindByKeyword("astrology"); !errors.Is(err, roles.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown keyword, got %v", err)
	}
	if _, err := roles.FindByKeyword("  "); !errors.Is(err, roles.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for blank keyword, got %v", err)
	}
}

func TestIndex(t *testing.T) {
	if got := roles.Index(roles.Scout); got != 0 {
		t.Fatalf("index scout = %d", got)
	}
	if got := roles.Index("nope"); got != -1 {
		t.Fatalf("index unknown = %d", got)
	}
}
