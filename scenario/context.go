package scenario

import (
	"errors"
	"fmt"
	"io"
	"sync"
)

// Context accumulates parse/validation errors encountered while loading a
// scenario: a mutex-guarded slice of errors with Errorf/NewError/
// PrintErrors/NumErrors/GetError, rather than failing on the first
// problem. The solver engine itself has no error type of its own; this
// belongs only to the ambient config-loading layer.
type Context struct {
	mu     sync.Mutex
	errors []error
}

// NewContext returns an empty error-accumulating context.
func NewContext() *Context {
	return &Context{}
}

// LogError records err and returns it unchanged, so call sites can write
// `return ctx.LogError(err)`.
func (c *Context) LogError(err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors = append(c.errors, err)
	return err
}

// NewError builds, records, and returns a new error from a message.
func (c *Context) NewError(msg string) error {
	return c.LogError(errors.New(msg))
}

// Errorf builds, records, and returns a new formatted error.
func (c *Context) Errorf(format string, a ...any) error {
	return c.LogError(fmt.Errorf(format, a...))
}

// NumErrors returns how many errors have been logged so far.
func (c *Context) NumErrors() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.errors)
}

// GetError returns the error logged at index.
func (c *Context) GetError(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errors[index]
}

// PrintErrors writes every logged error to w, one per line.
func (c *Context) PrintErrors(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, err := range c.errors {
		fmt.Fprintln(w, err)
	}
}
