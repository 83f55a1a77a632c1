// Package main implements the flashgen command, which serves the flashcard
// generation API and offers one-shot generation and token tooling.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
