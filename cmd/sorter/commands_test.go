package main

import (
	"bytes"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muliwe/go-dispatch-sorter/internal/classifier"
	"github.com/muliwe/go-dispatch-sorter/internal/render"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("SORTER_CONFIG", "")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDemo_JSON(t *testing.T) {
	out, _, err := execute(t, "demo", "--output", "json", "--log-level", "error")
	require.NoError(t, err)

	var records []render.Record
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 11)

	assert.Equal(t, "STANDARD", records[0].Classification)
	assert.Equal(t, "SPECIAL", records[7].Classification)
	assert.Equal(t, render.KindInvalidValue, records[9].ErrorKind)
	assert.Equal(t, render.KindInvalidType, records[10].ErrorKind)
}

func TestRoot_RunsDemo(t *testing.T) {
	out, _, err := execute(t, "--no-color", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Edge case - exactly at mass limit")
	assert.Contains(t, out, "REJECTED")
}

func TestDemo_LogsToStderr(t *testing.T) {
	out, errOut, err := execute(t, "demo", "-o", "yaml", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "classification: STANDARD")
	assert.Contains(t, errOut, `"msg":"package classified"`)
	assert.Contains(t, errOut, `"run_id"`)
}

func TestClassify(t *testing.T) {
	out, _, err := execute(t, "classify", "--output", "json", "--log-level", "error", "160", "50", "50", "21")
	require.NoError(t, err)

	var records []render.Record
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "REJECTED", records[0].Classification)
}

func TestClassify_InvalidInput(t *testing.T) {
	_, _, err := execute(t, "classify", "-o", "json", "-l", "error", "50", "50", "abc", "10")
	assert.ErrorIs(t, err, classifier.ErrInvalidType)

	_, _, err = execute(t, "classify", "-o", "json", "-l", "error", "--", "50", "-1", "50", "10")
	assert.ErrorIs(t, err, classifier.ErrInvalidValue)
}

func TestClassify_ArgCount(t *testing.T) {
	_, _, err := execute(t, "classify", "1", "2", "3")
	assert.Error(t, err)
}

func TestInvalidOutputFormat(t *testing.T) {
	_, _, err := execute(t, "demo", "--output", "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "csv")
}

func TestParseArg(t *testing.T) {
	assert.Equal(t, int64(42), parseArg("42"))
	assert.Equal(t, 19.9, parseArg(" 19.9 "))
	assert.Equal(t, "abc", parseArg("abc"))

	huge, ok := parseArg("1e400").(*big.Rat)
	require.True(t, ok)
	assert.Equal(t, 1, huge.Sign())
}
