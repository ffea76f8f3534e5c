package questions

import "errors"

// ErrNoSkills indicates the parsed record yielded no usable skill tokens.
// It is raised before any inference call is made.
var ErrNoSkills = errors.New("no skills found in parsed data")

// RetrievalError wraps any failure to fetch or decode the parsed résumé
// record. Handlers map it to 404.
type RetrievalError struct {
	Err error
}

func (e *RetrievalError) Error() string {
	return e.Err.Error()
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}
