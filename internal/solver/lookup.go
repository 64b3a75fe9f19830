package solver

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"svw.info/steps/internal/domain"
	"svw.info/steps/internal/ports"
)

// Lookup answers from the solution corpus and falls back to a search when no
// known solution starts with the requested prefix.
type Lookup struct {
	Corpus   ports.Corpus
	Fallback ports.Solver
}

func NewLookup(c ports.Corpus, fallback ports.Solver) *Lookup {
	return &Lookup{Corpus: c, Fallback: fallback}
}

// Solutions returns every corpus solution that starts with prefix, in corpus
// order. The empty prefix matches all of them.
func (l *Lookup) Solutions(ctx context.Context, prefix string) ([]string, error) {
	if _, err := domain.ParseTokens(prefix); err != nil {
		return nil, err
	}
	if l.Corpus == nil {
		return []string{}, nil
	}
	all, err := l.Corpus.Solutions(ctx)
	if err != nil {
		return nil, err
	}
	out := []string{}
	for _, s := range all {
		if strings.HasPrefix(s, prefix) {
			out = append(out, s)
		}
	}
	return out, nil
}

// Solve returns the first corpus solution extending prefix, or asks the
// fallback solver.
func (l *Lookup) Solve(ctx context.Context, prefix domain.Placement) (domain.Placement, ports.Stats, error) {
	start := time.Now()
	if l.Corpus != nil {
		all, err := l.Corpus.Solutions(ctx)
		if err != nil {
			return nil, ports.Stats{}, err
		}
		want := prefix.String()
		for i, s := range all {
			if !strings.HasPrefix(s, want) {
				continue
			}
			p, err := domain.ParseTokens(s)
			if err != nil {
				continue
			}
			return p, ports.Stats{Nodes: i + 1, Duration: time.Since(start)}, nil
		}
	}
	if l.Fallback == nil {
		return nil, ports.Stats{Duration: time.Since(start)}, ErrNoSolution
	}
	log.Debug().Str("module", "solver").Str("prefix", prefix.String()).Msg("no corpus match, searching")
	return l.Fallback.Solve(ctx, prefix)
}
