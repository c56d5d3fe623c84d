package cli

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText_TrimsLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("  hello \n"))
	got, err := GetSimpleText(r, "Prompt", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestGetSimpleText_PartialLineBeforeEOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("tail"))
	got, err := GetSimpleText(r, "Prompt", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "tail", got)
}

func TestGetSimpleText_EOFWithoutInput(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(""))
	_, err := GetSimpleText(r, "Prompt", io.Discard)
	require.Error(t, err)
}

func TestGetPassword_UsesTerminalReader(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("secret"), nil }
	t.Cleanup(func() { readPassword = orig })

	pw, err := GetPassword(io.Discard)
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), pw)
}

func TestGetNumber_ParsesFloat(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("2.5\n"))
	v, err := getNumber(r, "Input 1", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)
}

func TestGetNumber_RejectsNonNumeric(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("abc\n"))
	_, err := getNumber(r, "Input 1", io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"abc" is not a number`)
}
