package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// ErrUpstreamFetch marks a failed network call or non-success response
	// from either source. Never retried.
	ErrUpstreamFetch = errors.New("upstream fetch failed")
	// ErrUpstreamDecode marks a response body that did not have the expected shape.
	ErrUpstreamDecode = errors.New("upstream decode failed")
)

// UpstreamSource identifies which dependency failed.
type UpstreamSource string

const (
	SourceLineupsDocument UpstreamSource = "lineups_document"
	SourceRoster          UpstreamSource = "roster"
)

// UpstreamError wraps a source failure. errors.Is matches both Kind and the
// underlying cause.
type UpstreamError struct {
	Source UpstreamSource
	Kind   error
	Err    error
}

func NewUpstreamFetchError(source UpstreamSource, err error) *UpstreamError {
	return &UpstreamError{Source: source, Kind: ErrUpstreamFetch, Err: err}
}

func NewUpstreamDecodeError(source UpstreamSource, err error) *UpstreamError {
	return &UpstreamError{Source: source, Kind: ErrUpstreamDecode, Err: err}
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Source, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Source, e.Kind, e.Err)
}

func (e *UpstreamError) Unwrap() []error {
	out := make([]error, 0, 2)
	if e.Kind != nil {
		out = append(out, e.Kind)
	}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}

// UpstreamSourceOf returns the failing source when err wraps an UpstreamError.
func UpstreamSourceOf(err error) (UpstreamSource, bool) {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.Source, true
	}
	return "", false
}
