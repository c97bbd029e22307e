package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/bbpie/internal/selftest"
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run the built-in self-test suite",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return selftest.Run(os.Stdout, selftest.Checks())
	},
}
