package prompter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
)

// ErrNoInput is returned when the input stream ends before a valid answer.
var ErrNoInput = errors.New("no input available")

type Prompter interface {
	// Input asks for free text until validate accepts it. An empty answer
	// falls back to def when def is non-empty.
	Input(label, def string, validate func(string) error) (string, error)
	// Select asks for one of items. def, when part of items, is preselected.
	Select(label string, items []string, def string) (string, error)
}

// Default picks the arrow-key prompter on a terminal and the line-based one otherwise.
func Default() Prompter {
	if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		return NewTerminal()
	}
	return New(os.Stdin, os.Stdout)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type TextPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *TextPrompter {
	return &TextPrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (p *TextPrompter) Input(label, def string, validate func(string) error) (string, error) {
	q := label
	if def != "" {
		q = fmt.Sprintf("%s [%s]", label, def)
	}
	for {
		resp, err := p.ask(q + ": ")
		if err != nil {
			return "", err
		}
		if resp == "" {
			resp = def
		}
		if validate != nil {
			if verr := validate(resp); verr != nil {
				if _, err := fmt.Fprintf(p.out, "Error: %v\n", verr); err != nil {
					return "", err
				}
				continue
			}
		}
		return resp, nil
	}
}

func (p *TextPrompter) Select(label string, items []string, def string) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("no choices for %q", label)
	}
	if _, err := fmt.Fprintln(p.out, label); err != nil {
		return "", err
	}
	for i, item := range items {
		if _, err := fmt.Fprintf(p.out, "  %d) %s\n", i+1, item); err != nil {
			return "", err
		}
	}

	q := fmt.Sprintf("Choose [1-%d]", len(items))
	if indexOf(items, def) >= 0 {
		q = fmt.Sprintf("%s (%s)", q, def)
	}
	for {
		resp, err := p.ask(q + ": ")
		if err != nil {
			return "", err
		}
		if choice, ok := pick(items, resp, def); ok {
			return choice, nil
		}
		if _, err := fmt.Fprintf(p.out, "Error: %q is not one of %s\n", resp, strings.Join(items, ", ")); err != nil {
			return "", err
		}
	}
}

func (p *TextPrompter) ask(q string) (string, error) {
	if _, err := fmt.Fprint(p.out, q); err != nil {
		return "", err
	}
	resp, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && resp != "" {
			return strings.TrimSpace(resp), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", err
	}
	return strings.TrimSpace(resp), nil
}

// pick accepts a 1-based index or the item text (case-insensitive).
func pick(items []string, resp, def string) (string, bool) {
	if resp == "" {
		if i := indexOf(items, def); i >= 0 {
			return items[i], true
		}
		return "", false
	}
	if n, err := strconv.Atoi(resp); err == nil {
		if n >= 1 && n <= len(items) {
			return items[n-1], true
		}
		return "", false
	}
	for _, item := range items {
		if strings.EqualFold(item, resp) {
			return item, true
		}
	}
	return "", false
}

func indexOf(items []string, s string) int {
	if s == "" {
		return -1
	}
	for i, item := range items {
		if item == s {
			return i
		}
	}
	return -1
}
