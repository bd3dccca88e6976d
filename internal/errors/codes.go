package errors

// Error codes for the teeny compiler. They appear in diagnostics and give
// each failure a stable identifier across the CLI, REPL and language server.
//
// Error code ranges:
// E0001-E0099: Lexer errors
// E0100-E0199: Parser errors
// E0200-E0299: Emitter errors
// E0800-E0899: Warning codes

const (
	// E0001: A character outside the teeny alphabet
	ErrorUnexpectedCharacter = "E0001"

	// E0002: '!' not followed by '='
	ErrorBareBang = "E0002"

	// E0003: Integer literal does not fit in a signed 32-bit int
	ErrorNumberOverflow = "E0003"

	// E0100: Token does not fit the production being parsed
	ErrorUnexpectedToken = "E0100"

	// E0101: Input ended inside a statement or block
	ErrorUnexpectedEOF = "E0101"

	// E0102: if/while nested past the configured limit
	ErrorNestingTooDeep = "E0102"

	// E0200: goto names a label that is never declared
	ErrorDanglingLabel = "E0200"

	// E0201: Label declared more than once
	ErrorDuplicateLabel = "E0201"

	// E0202: Name is a C keyword or a <stdio.h> name
	ErrorReservedName = "E0202"

	// E0800: Variable is read but never assigned by let or input
	WarningUnassignedVariable = "E0800"
)

// GetErrorDescription returns a short human-readable description for a code.
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnexpectedCharacter:
		return "Unexpected character"
	case ErrorBareBang:
		return "'!' must be followed by '='"
	case ErrorNumberOverflow:
		return "Integer literal out of range"
	case ErrorUnexpectedToken:
		return "Unexpected token"
	case ErrorUnexpectedEOF:
		return "Unexpected end of input"
	case ErrorNestingTooDeep:
		return "Blocks nested too deeply"
	case ErrorDanglingLabel:
		return "Goto to undeclared label"
	case ErrorDuplicateLabel:
		return "Label declared more than once"
	case ErrorReservedName:
		return "Name reserved in C"
	case WarningUnassignedVariable:
		return "Variable never assigned"
	default:
		return "Unknown error"
	}
}
