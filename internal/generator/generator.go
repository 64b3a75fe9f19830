package generator

import "svw.info/steps/internal/ports"

// CorpusGenerator deals starting positions from a corpus of known-good
// openings. When Solver is set, each candidate is also checked to have a
// completion before it is dealt.
type CorpusGenerator struct {
	Corpus ports.Corpus
	Solver ports.Solver
}

// NewCorpusGenerator wires a generator over the given corpus. s may be nil.
func NewCorpusGenerator(c ports.Corpus, s ports.Solver) *CorpusGenerator {
	return &CorpusGenerator{Corpus: c, Solver: s}
}

// Note: Generate and the tier bands live in deal.go.
