package store

import "errors"

var (
	// ErrAuthentication is the only error that reaches the login caller.
	ErrAuthentication = errors.New("invalid credentials")
	ErrInvalidToken   = errors.New("invalid session token")
	ErrStoreClosed    = errors.New("store closed")
	ErrSuperseded     = errors.New("operation superseded by logout")

	ErrDocumentNotFound        = errors.New("document not found")
	ErrFolderNotFound          = errors.New("folder not found")
	ErrApprovalNotFound        = errors.New("approval not found")
	ErrApprovalDecided         = errors.New("approval already decided")
	ErrInvalidApprovalDecision = errors.New("invalid approval decision")
	ErrUnknownUsageKind        = errors.New("unknown usage kind")
	ErrInvalidUsageDelta       = errors.New("usage delta must not be negative")
	ErrInvalidStatusTransition = errors.New("invalid ai status transition")
)

// IsNotFound groups the lookup failures callers usually render the same way.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrDocumentNotFound) ||
		errors.Is(err, ErrFolderNotFound) ||
		errors.Is(err, ErrApprovalNotFound)
}
