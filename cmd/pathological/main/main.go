package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/arthur-debert/pathological/cmd/pathological"
	"github.com/arthur-debert/pathological/pkg/ui/styles"
)

func main() {
	rootCmd := pathological.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, pathological.ErrSilent) {
			errorStyle := styles.Default().Get("Error")
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
		os.Exit(1)
	}
}
