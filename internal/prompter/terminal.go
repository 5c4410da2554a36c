package prompter

import (
	"fmt"
	"strings"

	"github.com/MrSnakeDoc/tango/internal/printer"

	"github.com/manifoldco/promptui"
)

// TerminalPrompter renders arrow-key menus and inline validation with promptui.
type TerminalPrompter struct{}

func NewTerminal() *TerminalPrompter {
	return &TerminalPrompter{}
}

func (*TerminalPrompter) Input(label, def string, validate func(string) error) (string, error) {
	prompt := promptui.Prompt{
		Label:   label,
		Default: def,
	}
	if validate != nil {
		prompt.Validate = func(s string) error {
			return validate(strings.TrimSpace(s))
		}
	}

	resp, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt %q: %w", label, err)
	}
	return strings.TrimSpace(resp), nil
}

func (*TerminalPrompter) Select(label string, items []string, def string) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("no choices for %q", label)
	}

	sel := promptui.Select{
		Label: label,
		Items: items,
		Size:  len(items),
		Templates: &promptui.SelectTemplates{
			Label:    "{{ . }}",
			Active:   "▸ {{ . | cyan }}",
			Inactive: "  {{ . | faint }}",
			Selected: "✓ {{ . | green }}",
			Help:     printer.NewColorPrinter().Hint("Use arrow keys to navigate, Enter to select"),
		},
	}
	if i := indexOf(items, def); i >= 0 {
		sel.CursorPos = i
	}

	idx, _, err := sel.Run()
	if err != nil {
		return "", fmt.Errorf("selection %q cancelled: %w", label, err)
	}
	return items[idx], nil
}
