package middleware

import (
	"fmt"

	"github.com/MrSnakeDoc/tango/internal/errs"
	"github.com/MrSnakeDoc/tango/internal/logger"
)

// FlagComboError reports an invalid flag combination once and returns an
// error that keeps the validation exit code without being printed again.
func FlagComboError(detail string, a ...any) error {
	e := errs.New(errs.InvalidInput).WithDetail(detail, a...)
	logger.LogError("%s", e.Error())
	return fmt.Errorf("%w: %w", errs.ErrLogged, e)
}
