package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	Configure(Options{Level: "info", Out: &buf})
	t.Cleanup(UseTestMode)

	Debug("hidden %d", 1)
	Info("visible %s", "info")
	Success("%d%% done", 100)

	s := buf.String()
	assert.NotContains(t, s, "hidden")
	assert.Contains(t, s, "visible info")
	assert.Contains(t, s, "100% done")

	buf.Reset()
	Configure(Options{Level: "debug", Out: &buf})
	Debug("now shown")
	assert.Contains(t, buf.String(), "now shown")
}

func TestErrorLevelDropsWarnings(t *testing.T) {
	var buf bytes.Buffer
	Configure(Options{Level: "error", Out: &buf})
	t.Cleanup(UseTestMode)

	Warn("quiet")
	LogError("loud")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Configure(Options{Level: "info", JSON: true, Out: &buf})
	t.Cleanup(UseTestMode)

	LogError("deploy failed")
	assert.Contains(t, buf.String(), `"msg":"❌ deploy failed"`)
}

func TestCreateTable(t *testing.T) {
	var buf bytes.Buffer
	Configure(Options{Level: "info", Out: &buf})
	t.Cleanup(UseTestMode)

	table := CreateTable([]string{"Key", "Value"})
	require.NoError(t, table.Append([]string{"Project", "demo"}))
	require.NoError(t, table.Render())
	assert.Contains(t, buf.String(), "demo")
}
