package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                  Code = "OK"
	CodeInvalidArgument     Code = "INVALID_ARGUMENT"
	CodeNotFound            Code = "NOT_FOUND"
	CodeFailedPrecondition  Code = "FAILED_PRECONDITION"
	CodeInternal            Code = "INTERNAL"
	CodeUnavailable         Code = "UNAVAILABLE"
	CodeInvalidAction       Code = "INVALID_ACTION"
	CodeMissingCollaborator Code = "MISSING_COLLABORATOR"
	CodeInconsistentState   Code = "INCONSISTENT_STATE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Recoverable reports whether an error with this code leaves combat state
// untouched so the caller may simply try another action.
func (c Code) Recoverable() bool {
	switch c {
	case CodeInvalidAction, CodeMissingCollaborator, CodeInconsistentState,
		CodeInvalidArgument, CodeNotFound, CodeFailedPrecondition:
		return true
	default:
		return false
	}
}
