package interfaces

import "errors"

// ErrSequenceConflict reports that the per-company work-order sequence moved
// between the engine's read and the store transaction. Nothing was persisted,
// so the whole Create call is safe to retry from the top.
var ErrSequenceConflict = errors.New("work order sequence conflict")
