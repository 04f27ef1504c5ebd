package parser

import "github.com/tinycc/frontend/internal/lexer"

// Stable error codes for machine-readable diagnostics downstream of
// this frontend.
const (
	ErrUnexpectedToken  = "E_UNEXPECTED_TOKEN"
	ErrDuplicateDefault = "E_DUPLICATE_DEFAULT"
	ErrNestedFunction   = "E_NESTED_FUNCTION"
	ErrInvalidVoidDecl  = "E_INVALID_VOID_DECLARATION"
)

// ParserError is a fatal syntax failure carrying a stable code, a
// message, and the offending token's source location. Parsing stops
// immediately when one is raised: no recovery, no synchronization.
type ParserError struct {
	Code    string
	Message string
	Pos     lexer.Position
}

func (e *ParserError) Error() string {
	return e.Message + " at " + e.Pos.String()
}
