// Command swatch resolves OKLCH colors and the semantic palette.
package main

import (
	"fmt"
	"os"

	"github.com/opencode-ai/swatch/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
