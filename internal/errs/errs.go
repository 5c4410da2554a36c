package errs

import (
	"errors"
	"fmt"
	"strings"
)

type Code string

const (
	ConfigMissing       Code = "CONFIG_MISSING"
	InvalidConfig       Code = "INVALID_CONFIG"
	InvalidInput        Code = "INVALID_INPUT"
	ProviderUnsupported Code = "PROVIDER_UNSUPPORTED"
	TemplateMissing     Code = "TEMPLATE_MISSING"
	DestinationExists   Code = "DESTINATION_EXISTS"
	CopyFailed          Code = "COPY_FAILED"
	EngineUnavailable   Code = "ENGINE_UNAVAILABLE"
	InfraUnavailable    Code = "INFRA_UNAVAILABLE"
	BuildFailed         Code = "BUILD_FAILED"
	RunFailed           Code = "RUN_FAILED"
	BootstrapFailed     Code = "BOOTSTRAP_FAILED"
	DeployFailed        Code = "DEPLOY_FAILED"
	NotImplemented      Code = "NOT_IMPLEMENTED"
	Timeout             Code = "TIMEOUT"
)

var messages = map[Code]string{
	ConfigMissing:       "Project configuration not found. Please run 'tango init' first",
	InvalidConfig:       "Project configuration is invalid",
	InvalidInput:        "Invalid input",
	ProviderUnsupported: "Unsupported cloud provider %q",
	TemplateMissing:     "Template directory %s does not exist",
	DestinationExists:   "Destination %s already exists, refusing to overwrite it",
	CopyFailed:          "Failed to copy template into %s, the directory may be incomplete",
	EngineUnavailable:   "Docker is not installed or the Docker daemon is not running",
	InfraUnavailable:    "%s is not installed or not on PATH",
	BuildFailed:         "Failed to build Docker image",
	RunFailed:           "Failed to run Docker container",
	BootstrapFailed:     "Failed to bootstrap environment %s",
	DeployFailed:        "Failed to deploy stack",
	NotImplemented:      "%s is not implemented yet",
	Timeout:             "%s timed out after %s",
}

var kinds = map[Code]Kind{
	ConfigMissing:       KindPreconditionMissing,
	InvalidConfig:       KindValidation,
	InvalidInput:        KindValidation,
	ProviderUnsupported: KindValidation,
	TemplateMissing:     KindPreconditionMissing,
	DestinationExists:   KindFilesystemConflict,
	CopyFailed:          KindFilesystem,
	EngineUnavailable:   KindToolUnavailable,
	InfraUnavailable:    KindToolUnavailable,
	BuildFailed:         KindToolFailed,
	RunFailed:           KindToolFailed,
	BootstrapFailed:     KindToolFailed,
	DeployFailed:        KindToolFailed,
	NotImplemented:      KindNotImplemented,
	Timeout:             KindTimeout,
}

func Msg(code Code, a ...any) string {
	msg := messages[code]
	if msg == "" {
		msg = string(code)
	}
	if len(a) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, a...)
}

// Error is the diagnostic carried out of every workflow step. Code selects the
// catalogue message, Detail narrows it down (which probe, which path) and Err
// keeps the underlying cause for errors.Is/As.
type Error struct {
	Code   Code
	Detail string
	Err    error
	args   []any
}

func New(code Code, a ...any) *Error {
	return &Error{Code: code, args: a}
}

func Wrap(code Code, err error, a ...any) *Error {
	return &Error{Code: code, Err: err, args: a}
}

func (e *Error) WithDetail(format string, a ...any) *Error {
	e.Detail = fmt.Sprintf(format, a...)
	return e
}

func (e *Error) Kind() Kind {
	if k, ok := kinds[e.Code]; ok {
		return k
	}
	return KindInternal
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(Msg(e.Code, e.args...))
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Err != nil {
		b.WriteString(" (")
		b.WriteString(e.Err.Error())
		b.WriteString(")")
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches kind sentinels (errs.ErrToolFailed) and other *Error values by code.
func (e *Error) Is(target error) bool {
	if ks, ok := target.(kindSentinel); ok {
		return e.Kind() == Kind(ks)
	}
	var other *Error
	if errors.As(target, &other) {
		return other.Code == e.Code
	}
	return false
}

func HasCode(err error, code Code) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Code == code
}

func KindOf(err error) Kind {
	var e *Error
	if !errors.As(err, &e) {
		return KindInternal
	}
	return e.Kind()
}
