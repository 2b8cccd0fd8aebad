package workflow

import "errors"

var (
	// ErrInvalidTransition - the requested edge does not exist in the
	// entity's transition graph. Recoverable locally; no retry.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrForbidden - the actor role is not permitted to transition this
	// entity type. Deny by default.
	ErrForbidden = errors.New("role not permitted for this transition")

	// ErrAuditNoteRequired - attendance corrections must carry a non-empty
	// audit note.
	ErrAuditNoteRequired = errors.New("audit note is required for attendance corrections")

	// ErrUnknownStatus - the target status is not a legal status for the
	// entity type at all.
	ErrUnknownStatus = errors.New("unknown status for entity type")
)
