package skema

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationResult is the outcome of Schema.Validate. An empty Error is the
// only success signal.
type ValidationResult struct {
	Error string `json:"error,omitempty"`
}

// Valid returns the success result.
func Valid() ValidationResult { return ValidationResult{} }

// Invalid returns a failed result carrying msg.
func Invalid(msg string) ValidationResult { return ValidationResult{Error: msg} }

// OK reports whether validation succeeded.
func (r ValidationResult) OK() bool { return r.Error == "" }

// Err converts the result into an error, nil on success.
func (r ValidationResult) Err() error {
	if r.OK() {
		return nil
	}
	return &ValidationError{Message: r.Error}
}

// ValidationError is the error form of a failed ValidationResult.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// SubsetResult is the outcome of Schema.CheckSubsetOf. Reason is empty iff
// IsSubset is true.
type SubsetResult struct {
	IsSubset bool   `json:"isSubset"`
	Reason   string `json:"reason,omitempty"`
}

// Subset returns the positive result.
func Subset() SubsetResult { return SubsetResult{IsSubset: true} }

// NotSubset returns a negative result explained by reason.
func NotSubset(reason string) SubsetResult { return SubsetResult{Reason: reason} }

// SchemaErrors lists declaration defects reported by Schema.Errors. It
// implements error so callers can propagate an ill-formed schema.
type SchemaErrors []string

// Error summarizes the first few messages.
func (se SchemaErrors) Error() string {
	if len(se) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(se)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(se[i])
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsSchemaErrors extracts SchemaErrors from an error using errors.As.
func AsSchemaErrors(err error) (SchemaErrors, bool) {
	if err == nil {
		return nil, false
	}
	var se SchemaErrors
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
