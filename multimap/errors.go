package multimap

import (
	"errors"
	"fmt"
)

var (
	ErrConcurrentStructuralChange = errors.New("multimap structurally changed outside of iterator")
	ErrNoSuchElement              = errors.New("no such element")
	ErrIllegalIteratorState       = errors.New("remove without preceding next")
)

// invariantViolation is raised as a panic when a key is found mapped to an empty bucket.
type invariantViolation struct {
	key any
}

func (e invariantViolation) Error() string {
	return fmt.Sprintf("key %v mapped to an empty bucket", e.key)
}
