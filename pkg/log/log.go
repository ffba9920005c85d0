package log

import (
	"io"
	"log"
	"os"
)

var std = log.New(os.Stderr, "", log.LstdFlags)

// SetOutput redirects all tagged log lines. Pass io.Discard to silence them.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

func Fatal(v ...any) {
	std.Println(tagged("[FATAL]", v)...)
}

func Warn(v ...any) {
	std.Println(tagged("[WARN]", v)...)
}

func Info(v ...any) {
	std.Println(tagged("[INFO]", v)...)
}

func tagged(tag string, v []any) []any {
	args := make([]any, 0, len(v)+1)
	args = append(args, tag)
	args = append(args, v...)
	return args
}
