package journal

// JournalError is a custom error type for journal-related errors
type JournalError string

// Error implements the error interface
func (e JournalError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound     JournalError = "session not found"
	ErrMissingDate         JournalError = "session date is required"
	ErrDurationOutOfRange  JournalError = "duration must be between 15 and 180 minutes"
	ErrHeadcountOutOfRange JournalError = "headcount must be between 1 and 60"
	ErrRPEOutOfRange       JournalError = "RPE must be between 1 and 10"
	ErrNilConfig           JournalError = "config cannot be nil"
	ErrNilSessionRepo      JournalError = "session repository cannot be nil"
	ErrNilClock            JournalError = "clock cannot be nil"
)
