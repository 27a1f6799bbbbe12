package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/patrickSeegmiller/cryptML/pkg/rsakeys"
)

var hexCmd = &cobra.Command{
	Use:   "hex <digits>...",
	Short: "Convert hexadecimal integers to decimal",
	Long: `Hex converts hexadecimal digit strings, such as a modulus copied
out of a certificate dump, to decimal. Whitespace inside an argument
is ignored, so line-wrapped values can be pasted quoted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			z, err := rsakeys.ParseHexInteger(arg)
			if err != nil {
				return fmt.Errorf("%q: %w", arg, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), z)
		}
		return nil
	},
}
