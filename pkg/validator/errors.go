package validator

import "errors"

// ErrValidationFailed is the errors.Is target for any ValidationErrors value.
var ErrValidationFailed = errors.New("validation failed")
