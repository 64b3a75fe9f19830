package hint

import "strings"

// permute calls visit with every ordering of a[0:n], using in-place swaps.
// visit must not retain a.
func permute[T any](a []T, start int, visit func([]T)) {
	if start >= len(a)-1 {
		visit(a)
		return
	}
	for i := start; i < len(a); i++ {
		a[start], a[i] = a[i], a[start]
		permute(a, start+1, visit)
		a[start], a[i] = a[i], a[start]
	}
}

// Permutations returns every ordering of tokens, each joined into one string.
// No tokens give no orderings.
func Permutations(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	work := append([]string(nil), tokens...)
	var out []string
	permute(work, 0, func(p []string) {
		out = append(out, strings.Join(p, ""))
	})
	return out
}
