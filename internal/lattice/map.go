package lattice

// Map is the per-key abstract-state container the cell-bounds detector uses
// to track local variables (spec §4.B: "Map instances (used by the
// cell-bounds detector) require caller-supplied equality for values and
// merge by key-union"). Join/Leq require the caller to supply how to
// combine/compare values, since Map itself is generic over any value type.
type Map[K comparable, V any] map[K]V

// Clone returns an independent copy with each value passed through
// cloneVal, so nested reference-typed values aren't aliased across solver
// iterations.
func (m Map[K, V]) Clone(cloneVal func(V) V) Map[K, V] {
	out := make(Map[K, V], len(m))
	for k, v := range m {
		out[k] = cloneVal(v)
	}
	return out
}

// JoinMaps merges a and b by key-union: a key present in only one map keeps
// its value; a key present in both is combined with joinVal.
func JoinMaps[K comparable, V any](a, b Map[K, V], joinVal func(x, y V) V) Map[K, V] {
	out := make(Map[K, V], len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		if existing, ok := out[k]; ok {
			out[k] = joinVal(existing, v)
		} else {
			out[k] = v
		}
	}
	return out
}

// LeqMaps reports whether a <= b: every key of a is present in b with a
// value that is <= the corresponding value in b (key-and-value subset,
// spec §4.H).
func LeqMaps[K comparable, V any](a, b Map[K, V], leqVal func(x, y V) bool) bool {
	for k, v := range a {
		bv, ok := b[k]
		if !ok || !leqVal(v, bv) {
			return false
		}
	}
	return true
}
