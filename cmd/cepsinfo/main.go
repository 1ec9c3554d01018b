// Command cepsinfo extracts cepstral features from WAV files and inspects
// the analyzer configuration.
//
// Usage:
//
//	cepsinfo [flags] <command>
//
// Examples:
//
//	cepsinfo analyze speech.wav
//	cepsinfo analyze --format yaml --n-ceps 13 --energy --delta speech.wav
//	cepsinfo --config ceps.yaml shape 16000
//	cepsinfo filters --linear
//	cepsinfo window
//	cepsinfo config
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
