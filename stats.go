package dynvec

// Stats tracks storage churn for a single vector.
//
// Counters are plain fields: a vector has a single owner and no
// concurrent mutators by contract, so no atomics are involved.
type Stats struct {
	// Grows counts reallocations triggered by the growth policy
	// (PushBack, Insert and Resize past capacity).
	Grows uint64
	// Reallocs counts all reallocations, including exact-size ones
	// from Reserve.
	Reallocs uint64
	// ElementsMoved counts live elements transferred between
	// allocations across all reallocations.
	ElementsMoved uint64
}

// Stats returns a snapshot of the storage counters. Clear does not
// reset them; transfer via Take moves them with the storage.
func (v *Vector[T]) Stats() Stats {
	return v.stats
}
