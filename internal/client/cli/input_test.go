package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	require.NoError(t, err)
	require.Equal(t, "hello world", got)
	require.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	require.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func TestReadLine(t *testing.T) {
	r := rdr("one\r\ntwo\n\nthree")

	for _, want := range []string{"one", "two", "", "three"} {
		got, err := readLine(r)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := readLine(r)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetSimpleText_TrimsSurroundingSpace(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  alice \r\n"), "Enter username", &out)
	require.NoError(t, err)
	require.Equal(t, "alice", got)
}

func TestGetMultiline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "double enter", input: "a\nb\n\n\n", want: "a\nb"},
		{name: "CRLF", input: "a\r\nb\r\n\r\n", want: "a\nb"},
		{name: "EOF without blank line", input: "a\nb", want: "a\nb"},
		{name: "immediate blank line", input: "\n", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetMultiline(rdr(tt.input), "Enter text", &out)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestGetPassword(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })

	readPassword = func() ([]byte, error) { return []byte("secret"), nil }
	var out bytes.Buffer
	pw, err := GetPassword("Password", &out)
	require.NoError(t, err)
	require.Equal(t, []byte("secret"), pw)
	require.Equal(t, "Password: \n", out.String())

	boom := errors.New("boom")
	readPassword = func() ([]byte, error) { return nil, boom }
	_, err = GetPassword("Password", &out)
	require.ErrorIs(t, err, boom)
}
