package errs

import "errors"

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindPreconditionMissing
	KindToolUnavailable
	KindToolFailed
	KindFilesystemConflict
	KindFilesystem
	KindNotImplemented
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "ValidationError"
	case KindPreconditionMissing:
		return "PreconditionMissing"
	case KindToolUnavailable:
		return "ExternalToolUnavailable"
	case KindToolFailed:
		return "ExternalToolFailed"
	case KindFilesystemConflict:
		return "FilesystemConflict"
	case KindFilesystem:
		return "FilesystemError"
	case KindNotImplemented:
		return "NotImplemented"
	case KindTimeout:
		return "Timeout"
	default:
		return "InternalError"
	}
}

type kindSentinel Kind

func (k kindSentinel) Error() string { return Kind(k).String() }

var (
	ErrValidation          error = kindSentinel(KindValidation)
	ErrPreconditionMissing error = kindSentinel(KindPreconditionMissing)
	ErrToolUnavailable     error = kindSentinel(KindToolUnavailable)
	ErrToolFailed          error = kindSentinel(KindToolFailed)
	ErrFilesystemConflict  error = kindSentinel(KindFilesystemConflict)
	ErrNotImplemented      error = kindSentinel(KindNotImplemented)
	ErrTimeout             error = kindSentinel(KindTimeout)
)

// ErrLogged marks an error whose diagnostic was already printed.
var ErrLogged = errors.New("already logged")

// ExitCode maps an error chain to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch KindOf(err) {
	case KindValidation, KindPreconditionMissing:
		return 2
	case KindToolUnavailable:
		return 3
	case KindToolFailed:
		return 4
	case KindFilesystemConflict, KindFilesystem:
		return 5
	case KindNotImplemented:
		return 6
	case KindTimeout:
		return 7
	default:
		return 1
	}
}
