package main

import (
	"context"
	"os"

	"github.com/Phippsaurus/ppsh/pkg/log"
)

func main() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		// Fatal errors are reported even when logging is silenced.
		log.SetOutput(os.Stderr)
		log.Fatal(err)
		os.Exit(1)
	}
}
