// Package apperr enumerates the failure kinds the API can return. Handlers
// translate these into the JSON envelope; internal error text never reaches
// clients.
package apperr

import "net/http"

type Error struct {
	Code    string
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func validation(msg string) *Error {
	return &Error{Code: "validation_error", Status: http.StatusBadRequest, Message: msg}
}

func unauthorized(msg string) *Error {
	return &Error{Code: "unauthorized", Status: http.StatusUnauthorized, Message: msg}
}

func notFound(msg string) *Error {
	return &Error{Code: "not_found", Status: http.StatusNotFound, Message: msg}
}

func conflict(code, msg string) *Error {
	return &Error{Code: code, Status: http.StatusConflict, Message: msg}
}

var (
	ErrEmailExists        = conflict("email_exists", "Email already registered")
	ErrInvalidCredentials = &Error{Code: "invalid_credentials", Status: http.StatusUnauthorized, Message: "Wrong credentials have been entered"}
	ErrNotManager         = unauthorized("Unauthorized: manager not found")
	ErrAlreadyManaging    = conflict("already_managing", "Conflict: you already manage a project")
	ErrProjectNotFound    = notFound("Project not found")
	ErrProjectTaken       = conflict("project_taken", "Conflict: this project already has a manager")
	ErrNoManagedProject   = notFound("You are not managing any project")
	ErrInvalidDuration    = validation("Shift duration does not match the project's hours per shift")
	ErrQuotaExceeded      = conflict("quota_exceeded", "The project already has its required number of shifts")
	ErrDuplicateShift     = conflict("duplicate_shift", "An identical shift already exists for this project")
	ErrGroupExists        = conflict("group_exists", "A group with this name already exists under this project")
	ErrGroupNotFound      = notFound("Group not found")
	ErrEmployeeNotFound   = notFound("Employee not found")
	ErrShiftNotFound      = notFound("Shift not found")
	ErrAlreadyMember      = conflict("already_member", "Employee is already a member of this group")
	ErrAlreadyCheckedIn   = conflict("already_checked_in", "Already checked in for this shift")
	ErrNotCheckedIn       = conflict("not_checked_in", "You must check in before checking out")
)

// Validation wraps a request-shape problem with its own message.
func Validation(msg string) *Error { return validation(msg) }
