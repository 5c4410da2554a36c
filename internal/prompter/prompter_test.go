package prompter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("value cannot be empty")
	}
	return nil
}

func TestInput_RepromptsOnWhitespace(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("   \n\t\n  My Project  \n"), &out)

	got, err := p.Input("Enter Project Name", "", notBlank)
	require.NoError(t, err)
	assert.Equal(t, "My Project", got)
	assert.Equal(t, 2, strings.Count(out.String(), "value cannot be empty"))
	assert.Equal(t, 3, strings.Count(out.String(), "Enter Project Name: "))
}

func TestInput_Default(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("\n"), &out)

	got, err := p.Input("Enter AWS Account ID", "123456789012", notBlank)
	require.NoError(t, err)
	assert.Equal(t, "123456789012", got)
	assert.Contains(t, out.String(), "[123456789012]")
}

func TestInput_EOF(t *testing.T) {
	p := New(strings.NewReader("  \n"), &bytes.Buffer{})
	_, err := p.Input("Name", "", notBlank)
	require.ErrorIs(t, err, ErrNoInput)
}

func TestInput_LastLineWithoutNewline(t *testing.T) {
	p := New(strings.NewReader("demo"), &bytes.Buffer{})
	got, err := p.Input("Name", "", notBlank)
	require.NoError(t, err)
	assert.Equal(t, "demo", got)
}

func TestSelect(t *testing.T) {
	items := []string{"Selenium", "Playwright", "Puppeteer"}
	cases := []struct {
		name  string
		input string
		def   string
		want  string
	}{
		{"by index", "2\n", "", "Playwright"},
		{"by name", "puppeteer\n", "", "Puppeteer"},
		{"default", "\n", "Selenium", "Selenium"},
		{"retry after out of range", "9\n0\n1\n", "", "Selenium"},
		{"retry after unknown", "Cypress\n3\n", "", "Puppeteer"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := New(strings.NewReader(tc.input), &out).Select("Select Automation Framework:", items, tc.def)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Contains(t, out.String(), "1) Selenium")
		})
	}
}

func TestSelect_EmptyWithoutDefault(t *testing.T) {
	_, err := New(strings.NewReader("\n"), &bytes.Buffer{}).Select("Pick", []string{"a", "b"}, "")
	require.ErrorIs(t, err, ErrNoInput)
}

func TestSelect_NoItems(t *testing.T) {
	_, err := New(strings.NewReader("1\n"), &bytes.Buffer{}).Select("Pick", nil, "")
	require.Error(t, err)
}
