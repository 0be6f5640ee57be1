package parser

import "fmt"

// state identifies how the parser reacts to the next character. Exactly one
// state is active at a time and every state defines a reaction for every
// character class, so no input can fall through unhandled.
type state int

const (
	// stateInitial is the start of a field; nothing consumed yet.
	stateInitial state = iota
	// stateTextData is inside an unquoted field.
	stateTextData
	// stateQuote is inside a quoted field.
	stateQuote
	// stateEscapeQuote follows a quote seen inside a quoted field. The quote
	// is ambiguous: it either closes the field or starts a doubled-quote
	// escape, and the next character decides which.
	stateEscapeQuote
	// stateInnerQuote follows a confirmed doubled-quote escape. The literal
	// quote has been appended and quoted content resumes.
	stateInnerQuote
)

// String returns the state name for diagnostics.
func (s state) String() string {
	switch s {
	case stateInitial:
		return "initial"
	case stateTextData:
		return "text-data"
	case stateQuote:
		return "quote"
	case stateEscapeQuote:
		return "escape-quote"
	case stateInnerQuote:
		return "inner-quote"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}
