package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Phippsaurus/ppsh/internal/process"
)

func TestNormalizeTTYNewlines(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"hi", "hi"},
		{"hi\n", "hi\r\n"},
		{"a\nb\n", "a\r\nb\r\n"},
		{"already\r\nfine\r\n", "already\r\nfine\r\n"},
		{"\n\n", "\r\n\r\n"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, normalizeTTYNewlines(tt.in), "input %q", tt.in)
	}
}

func TestFormatOutput(t *testing.T) {
	tests := []struct {
		name string
		out  process.Output
		want string
	}{
		{name: "nothing", want: ""},
		{name: "stdout only", out: process.Output{Stdout: []byte("hi\n")}, want: "hi\r\n"},
		{name: "stdout without final newline", out: process.Output{Stdout: []byte("hi")}, want: "hi\r\n"},
		{name: "stderr only", out: process.Output{Stderr: []byte("oops\n")}, want: "oops\r\n"},
		{
			name: "both",
			out:  process.Output{Stdout: []byte("a\nb\n"), Stderr: []byte("warn")},
			want: "a\r\nb\r\nwarn\r\n",
		},
		{
			name: "tabs survive in both streams",
			out:  process.Output{Stdout: []byte("a\tb\n"), Stderr: []byte("c\td\n")},
			want: "a\tb\r\nc\td\r\n",
		},
		{name: "invalid utf-8 replaced", out: process.Output{Stdout: []byte{'a', 0xff, 'b'}}, want: "a\uFFFDb\r\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatOutput(tt.out, false)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFormatOutputStrict(t *testing.T) {
	_, err := formatOutput(process.Output{Stdout: []byte{0xff}}, true)
	require.ErrorIs(t, err, ErrNonUTF8Output)

	_, err = formatOutput(process.Output{Stdout: []byte("ok"), Stderr: []byte{0xfe}}, true)
	require.ErrorIs(t, err, ErrNonUTF8Output)

	got, err := formatOutput(process.Output{Stdout: []byte("ok\n")}, true)
	require.NoError(t, err)
	require.Equal(t, "ok\r\n", got)
}
