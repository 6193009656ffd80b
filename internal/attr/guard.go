package attr

// Target is anything that can answer IsSpecified and accept explicit writes.
// Stores implement it directly; column-bearing nodes implement it with column delegation.
type Target interface {
	IsSpecified(k Key) bool
	Set(k Key, v any)
}

// SetIfAbsent writes v as an explicit value unless k is already specified on t.
// It reports whether the write happened.
func SetIfAbsent(t Target, k Key, v any) bool {
	if t.IsSpecified(k) {
		return false
	}

	t.Set(k, v)

	return true
}

// SetAllIfAbsent applies v to every target when the first one has k unspecified.
// The first target is the representative: a partial state across targets is never half-overwritten.
func SetAllIfAbsent[T Target](targets []T, k Key, v any) bool {
	if len(targets) == 0 || targets[0].IsSpecified(k) {
		return false
	}

	for _, t := range targets {
		t.Set(k, v)
	}

	return true
}
