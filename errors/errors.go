package errors

import "fmt"

var (
	ErrMissingField    = fmt.Errorf("missing required field")
	ErrCorruptStore    = fmt.Errorf("log store is corrupt")
	ErrMessageNotFound = fmt.Errorf("message not found")
)
