package solver

import (
	"context"
	"errors"
	"testing"

	"svw.info/steps/internal/domain"
)

type memCorpus struct{ solutions []string }

func (m memCorpus) Solutions(context.Context) ([]string, error) { return m.solutions, nil }
func (m memCorpus) Starting(context.Context) ([]string, error)  { return nil, nil }

var corpus = memCorpus{solutions: []string{
	"AALCGOEBQDESBEgHBiGAnFHk",
	"AALEENFGPHDRDFhGCnBAfCAk",
	"BGSAHQEFBGCgCDNHFlDAiFHn",
}}

func TestLookupSolutions(t *testing.T) {
	l := NewLookup(corpus, nil)
	cases := []struct {
		prefix string
		want   int
	}{
		{"", 3},
		{"AAL", 2},
		{"AALEEN", 1},
		{"BGS", 1},
		{"HAA", 0},
	}
	for _, c := range cases {
		got, err := l.Solutions(context.Background(), c.prefix)
		if err != nil {
			t.Fatalf("%q: %v", c.prefix, err)
		}
		if got == nil || len(got) != c.want {
			t.Fatalf("%q: got %v want %d entries", c.prefix, got, c.want)
		}
	}
	if _, err := l.Solutions(context.Background(), "AA"); !errors.Is(err, domain.ErrMalformed) {
		t.Fatalf("expected malformed, got %v", err)
	}
}

func TestLookupSolve(t *testing.T) {
	l := NewLookup(corpus, nil)
	out, _, err := l.Solve(context.Background(), mustTokens(t, "AALEEN"))
	if err != nil || out.String() != "AALEENFGPHDRDFhGCnBAfCAk" {
		t.Fatalf("got %s err=%v", out, err)
	}
	if _, _, err := l.Solve(context.Background(), mustTokens(t, "BGSGCg")); !errors.Is(err, ErrNoSolution) {
		t.Fatalf("expected ErrNoSolution, got %v", err)
	}

	l.Fallback = NewBacktrackingSolver()
	out, _, err = l.Solve(context.Background(), mustTokens(t, "BGSGCg"))
	if err != nil || out.String() != "BGSGCgECKABNCBQDDnHFiFEl" {
		t.Fatalf("fallback: got %s err=%v", out, err)
	}
}
