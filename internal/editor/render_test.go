package editor

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Phippsaurus/ppsh/internal/suggest"
)

func render(t *testing.T, r *Readline) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf))
	return buf.String()
}

func TestRender(t *testing.T) {
	idx := suggest.NewIndex([]string{"main.rs", "makefile"})

	tests := []struct {
		name string
		keys []Key
		want string
	}{
		{
			name: "empty",
			want: "> ",
		},
		{
			name: "no suggestion, cursor at end emits no move",
			keys: Keys("ls -l"),
			want: "> ls -l",
		},
		{
			name: "suggestion tail then step back over it",
			keys: Keys("ma"),
			want: "> main.rs\x1b[5D",
		},
		{
			name: "exact match draws no tail",
			keys: Keys("makefile"),
			want: "> makefile",
		},
		{
			name: "cursor mid line",
			keys: append(Keys("abc"), Key{Kind: KeyLeft}, Key{Kind: KeyLeft}),
			want: "> abc\x1b[2D",
		},
		{
			name: "cursor mid line with suggestion",
			keys: append(Keys("mai"), Key{Kind: KeyLeft}),
			want: "> main.rs\x1b[5D",
		},
		{
			name: "wide characters count two columns",
			keys: append(Keys("日本"), Key{Kind: KeyLeft}),
			want: "> 日本\x1b[2D",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReadline(idx)
			apply(t, r, tt.keys...)
			require.Equal(t, tt.want, render(t, r))
		})
	}
}

func TestRenderCustomPrompt(t *testing.T) {
	r := NewReadline(nil, WithPrompt("ppsh$ "))
	typeString(t, r, "pwd")

	require.Equal(t, "ppsh$ pwd", render(t, r))
}

func TestRenderLineOmitsSuggestion(t *testing.T) {
	r := NewReadline(suggest.NewIndex([]string{"main.rs"}), WithPrompt("$ "))
	for _, k := range Keys("ma") {
		r.Apply(k)
	}
	line, ok := r.Apply(Key{Kind: KeySubmit})
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, r.RenderLine(&buf, line))
	require.Equal(t, "$ ma", buf.String())
}
