package engine

import "fmt"

// UnsafeTokenError is returned when transpiled output contains a
// denylisted identifier as a whole word. It is raised before the engine
// is ever invoked and is always recoverable by the caller.
type UnsafeTokenError struct {
	// Token is the denylisted identifier that was found
	Token string
}

func (e *UnsafeTokenError) Error() string {
	return fmt.Sprintf("refusing to execute: generated code contains unsafe token %q", e.Token)
}
