package worker

// Reorderer releases results in index order, holding back any that arrive
// before their predecessors. It is used from the single goroutine that
// consumes Pool.Results.
type Reorderer struct {
	next    int
	pending map[int]ProcessResult
	emit    func(ProcessResult)
}

// NewReorderer creates a Reorderer that calls emit for index 0, 1, 2, ...
func NewReorderer(emit func(ProcessResult)) *Reorderer {
	return &Reorderer{
		pending: make(map[int]ProcessResult),
		emit:    emit,
	}
}

// Add records a result and emits every result that is now in sequence.
func (r *Reorderer) Add(result ProcessResult) {
	r.pending[result.Index] = result
	for {
		next, ok := r.pending[r.next]
		if !ok {
			return
		}
		delete(r.pending, r.next)
		r.next++
		r.emit(next)
	}
}

// Pending returns the number of results held back.
func (r *Reorderer) Pending() int {
	return len(r.pending)
}

// Drain emits the held-back results in index order, ignoring gaps. Used
// after the pool was stopped early.
func (r *Reorderer) Drain() {
	for len(r.pending) > 0 {
		if next, ok := r.pending[r.next]; ok {
			delete(r.pending, r.next)
			r.emit(next)
		}
		r.next++
	}
}
