package operation

import (
	"errors"
	"time"
)

// Queue collects the operations produced during one turn. Draining runs
// them last-pushed first.
type Queue struct {
	ops []*Operation
}

// Push adds op. Nil and empty operations are ignored.
func (q *Queue) Push(op *Operation) {
	if op.Empty() {
		return
	}
	q.ops = append(q.ops, op)
}

// Len returns the number of pending operations.
func (q *Queue) Len() int {
	return len(q.ops)
}

// Drain executes and removes every pending operation, most recent first.
// A failing operation does not stop the rest; all errors are returned
// joined.
func (q *Queue) Drain(t Target, now time.Time) error {
	var errs []error
	for len(q.ops) > 0 {
		last := len(q.ops) - 1
		op := q.ops[last]
		q.ops[last] = nil
		q.ops = q.ops[:last]

		if err := op.Execute(t, now); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
