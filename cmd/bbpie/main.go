// Command bbpie renders tweets as Blackbird Pie embed HTML.
package main

import (
	"fmt"
	"os"

	"github.com/ppiankov/bbpie/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "bbpie: %v\n", err)
		os.Exit(1)
	}
}
