package ordmap

// Error kinds surfaced by the container. All are local, recoverable
// conditions: the map stays consistent and usable after any failed call.
// Absent-key Get/Delete are expected outcomes and report via an ok flag
// instead of an error.
var (
	// ErrKeyNotFound is returned by MoveToFront/MoveToBack when the key
	// is not present.
	ErrKeyNotFound = errorsNew("ordmap: key not found")

	// ErrEmpty is returned by PopFront/PopBack on an empty map.
	ErrEmpty = errorsNew("ordmap: empty map")

	// ErrConcurrentModification is reported by an iterator advanced after
	// a structural mutation invalidated it.
	ErrConcurrentModification = errorsNew("ordmap: map modified during iteration")
)

// lightweight local errors.New to avoid importing std 'errors' everywhere
func errorsNew(s string) error { return &strErr{s} }

type strErr struct{ s string }

func (e *strErr) Error() string { return e.s }
