package apperrors

import "errors"

// Validation errors: surfaced before any mutation, never partially applied.
var (
	ErrValidation          = errors.New("validation failed")
	ErrPanelSizeTooSmall   = errors.New("panel size must be at least 2")
	ErrEmptyFacultyPool    = errors.New("eligible faculty pool is empty")
	ErrInsufficientFaculty = errors.New("no department has enough eligible faculty for a panel")
	ErrNoCandidatePanels   = errors.New("no candidate panels available for assignment")
)

// Conflict errors: a specific placement is rejected; the surrounding batch
// continues and reports the skip.
var (
	ErrGuideConflict         = errors.New("team guide is a member of the panel")
	ErrPanelFull             = errors.New("panel has reached its team capacity")
	ErrTeamAlreadyAssigned   = errors.New("team is already assigned to a panel")
	ErrFacultyAlreadyInPanel = errors.New("faculty member already belongs to a panel")
)

// Lookup errors
var (
	ErrPanelNotFound   = errors.New("panel not found")
	ErrTeamNotFound    = errors.New("team not found")
	ErrFacultyNotFound = errors.New("faculty not found")
	ErrDuplicateID     = errors.New("identifier already exists")
)

// Schema errors: downgrade status computation rather than failing it.
var (
	ErrSchemaMissing = errors.New("no marking schema for scope")
)

// CustomError carries an underlying sentinel plus human-readable context.
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails attaches context details to the error.
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewValidationError creates a validation error with a message.
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidation, Message: message}
}

// NewConflictError creates a guide-conflict error with a message.
func NewConflictError(message string) error {
	return &CustomError{Err: ErrGuideConflict, Message: message}
}

// Is returns whether err matches target or any error in errList.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
