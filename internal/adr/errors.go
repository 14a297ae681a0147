package adr

import "errors"

// Error variables for record operations.
var (
	ErrConfigConflict   = errors.New("conflicting records directory configuration")
	ErrTemplateNotFound = errors.New("template file not found")
	ErrStoreMissing     = errors.New("records directory does not exist")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrRecordNotFound   = errors.New("record not found")
)
