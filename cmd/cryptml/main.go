// main.go sets up the command-line interface for the cryptML toolkit
// using the Cobra library. It defines the root command, the attack and
// key-generation subcommands, and the main entry point.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/patrickSeegmiller/cryptML/internal/logging"
)

var version = "dev" // this will be set by the linker

var debug bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		// The error is already printed by Cobra on failure.
		os.Exit(1)
	}
}

var rootCmd *cobra.Command

func init() {
	rootCmd = newRootCmd()
}

// newRootCmd creates and configures a new root cobra command. Fresh
// instances are also used for isolated testing.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cryptml",
		Short: "cryptml generates RSA keys and attacks weak ones.",
		Long: `cryptml is a workbench for classical RSA cryptanalysis.

It generates sound and deliberately weak RSA key pairs, and runs
factorization attacks (Fermat, Pollard p-1, Pollard rho, Wiener)
against a public key supplied on the command line or in a JSON file.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetDebug(debug)
		},
	}

	cmd.AddCommand(attackCmd)
	cmd.AddCommand(genkeyCmd)
	cmd.AddCommand(weakkeyCmd)
	cmd.AddCommand(hexCmd)

	cmd.Version = version

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	return cmd
}
