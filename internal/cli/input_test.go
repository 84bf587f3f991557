package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleTextTrims(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("  hello world  \n"))
	var out bytes.Buffer
	s, err := GetSimpleText(reader, "Say something", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", s)
	assert.Contains(t, out.String(), "Say something")
}

func TestGetSimpleTextPartialLineAtEOF(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("no newline"))
	var out bytes.Buffer
	s, err := GetSimpleText(reader, "Prompt", &out)
	require.NoError(t, err)
	assert.Equal(t, "no newline", s)
}

func TestGetSimpleTextEOF(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader(""))
	var out bytes.Buffer
	_, err := GetSimpleText(reader, "Prompt", &out)
	require.Error(t, err)
}

func TestGetOptionalTextMentionsSkip(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("\n"))
	var out bytes.Buffer
	s, err := GetOptionalText(reader, "Phone", &out)
	require.NoError(t, err)
	assert.Empty(t, s)
	assert.Contains(t, out.String(), "Enter to skip")
}

func TestGetPasswordUsesStub(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("hunter2"), nil }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, []byte("hunter2"), pw)
	assert.Contains(t, out.String(), "Enter password")
}
