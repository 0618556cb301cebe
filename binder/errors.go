package binder

import "errors"

// Common binding errors
var (
	// ErrBinderNotApplicable signals that a binder does not handle this
	// request shape; the handler wrapper skips it and continues the chain.
	ErrBinderNotApplicable = errors.New("binder not applicable to this request")

	ErrInvalidForm    = errors.New("invalid form data")
	ErrInvalidQuery   = errors.New("invalid query parameter")
	ErrInvalidPath    = errors.New("invalid path parameter")
	ErrInvalidSignals = errors.New("invalid signals payload")
)
