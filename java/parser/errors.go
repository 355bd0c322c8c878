package parser

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax          = errors.New("syntax error")
	ErrFeatureDisabled = errors.New("language feature not enabled")
)

// SyntaxError reports malformed input at Pos. Expected and Found are set
// when the parser was looking for a particular token.
type SyntaxError struct {
	Pos      Position
	Msg      string
	Expected string
	Found    Token
}

func (e *SyntaxError) Error() string {
	msg := e.Msg
	if e.Expected != "" {
		msg = fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
	}
	return fmt.Sprintf("%s: %s", e.Pos, msg)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// FeatureError reports superset syntax used while its feature is disabled.
type FeatureError struct {
	Pos     Position
	Feature Feature
}

func (e *FeatureError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, ErrFeatureDisabled, e.Feature)
}

func (e *FeatureError) Unwrap() error {
	return ErrFeatureDisabled
}
