package jisho

import "errors"

var (
	// ErrNoQuery is returned for a search string that holds no term.
	ErrNoQuery = errors.New("no query")
	// ErrNoMatches is returned when a well formed query matched nothing.
	ErrNoMatches = errors.New("no matches")

	ErrBlankInput   = errors.New("blank input")
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidEntry = errors.New("invalid lexicon entry")
)
