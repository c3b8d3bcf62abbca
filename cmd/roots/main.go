// Package main provides the roots CLI: data-import utilities that
// populate a word-by-word Quran translation database with Arabic root
// (etymology) information.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
