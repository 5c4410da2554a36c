package printer

import (
	"github.com/fatih/color"
)

type paintFunc = func(format string, a ...any) string

// ColorPrinter holds one Sprintf-style painter per message class.
// fatih/color drops the escape codes itself when NO_COLOR is set or
// stdout is not a terminal.
type ColorPrinter struct {
	Success paintFunc
	Error   paintFunc
	Warning paintFunc
	Info    paintFunc
	Debug   paintFunc
	Hint    paintFunc
}

func NewColorPrinter() *ColorPrinter {
	return &ColorPrinter{
		Success: color.New(color.FgGreen).SprintfFunc(),
		Error:   color.New(color.FgRed, color.Bold).SprintfFunc(),
		Warning: color.New(color.FgYellow).SprintfFunc(),
		Info:    color.New(color.FgBlue).SprintfFunc(),
		Debug:   color.New(color.FgCyan).SprintfFunc(),
		Hint:    color.New(color.Faint, color.Italic).SprintfFunc(),
	}
}
