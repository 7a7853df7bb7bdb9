package errlog

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Errorf("read failed at offset %d", 42)
	out := buf.String()
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, "read failed at offset 42")
}

func TestLevelGate(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	prev := SetLevel(LevelWarn)
	defer SetLevel(prev)

	Infof("below the gate")
	Warnf("above the gate")
	out := buf.String()
	assert.NotContains(t, out, "below the gate")
	assert.Contains(t, out, "above the gate")
}

func TestCallbackSink(t *testing.T) {
	var msgs []string
	var lvls []Level
	SetCallback(func(l Level, msg string) {
		lvls = append(lvls, l)
		msgs = append(msgs, msg)
	})
	defer SetCallback(nil)

	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Errorf("boom %s", "now")
	Fatalf("fatal but alive")

	require.Len(t, msgs, 2)
	assert.Equal(t, "boom now", msgs[0])
	assert.Equal(t, LevelError, lvls[0])
	assert.Equal(t, LevelFatal, lvls[1])
	assert.Zero(t, buf.Len(), "callback should bypass the writer")
}

func TestNilOutputDisablesLogging(t *testing.T) {
	SetOutput(nil)
	defer SetOutput(os.Stderr)

	// Must not panic or write anywhere.
	Errorf("into the void")
}

func TestSetLevelString(t *testing.T) {
	prev := SetLevel(LevelInfo)
	defer SetLevel(prev)

	name, err := SetLevelString("debug")
	require.NoError(t, err)
	assert.Equal(t, "INFO", name)

	name, err = SetLevelString("ERROR")
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", name)

	_, err = SetLevelString("verbose")
	assert.Error(t, err)
}

func TestSetLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s3.log")
	require.NoError(t, SetLogFile(path))
	defer SetOutput(os.Stderr)

	Errorf("to file")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
