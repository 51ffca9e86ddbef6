package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/pathological/cmd/pathological"
)

func main() {
	rootCmd := pathological.NewRootCmd()

	if err := doc.GenMan(rootCmd, pathological.ManHeader(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
