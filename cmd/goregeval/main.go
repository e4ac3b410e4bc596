// Command goregeval cross-validates regression model families on CSV data.
package main

import (
	"fmt"
	"os"

	"github.com/croftproj/goregeval/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
