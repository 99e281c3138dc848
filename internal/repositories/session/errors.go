package session

// RepositoryError is a custom error type for session repository errors
type RepositoryError string

// Error implements the error interface
func (e RepositoryError) Error() string {
	return string(e)
}

const (
	// ErrSessionNotFound is returned when a session is not found
	ErrSessionNotFound RepositoryError = "session not found"

	ErrNilConfig      RepositoryError = "config cannot be nil"
	ErrNilRedisClient RepositoryError = "redis client cannot be nil"
	ErrNilSession     RepositoryError = "input and session cannot be nil"
	ErrEmptySessionID RepositoryError = "session ID cannot be empty"
)
