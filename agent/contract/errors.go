package contract

import "errors"

var (
	ErrNoSubjectFound  = errors.New("no known subject found in query")
	ErrAmbiguousDomain = errors.New("query matches more than one domain")
	ErrSynthesis       = errors.New("llm synthesis failed")
	ErrValidation      = errors.New("validation failed")
	ErrNoAnalyst       = errors.New("no analyst registered for domain")
)
