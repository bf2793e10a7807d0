// Set command changes the value of one key and saves the file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/simpleconfig/console"
)

var setCmd = &cobra.Command{
	Use:   "set <file> <key> <value>",
	Short: "Set the value of a key",
	Long: `Set parses the value with the selected syntax, stores it and rewrites
the file. Arguments after the key are joined with spaces.

Example:
  simpleconfig set app.conf port 9090
  simpleconfig set app.conf hosts '["a","b"]'
  simpleconfig --syntax yaml set app.conf hosts '[a, b]'`,
	Args: cobra.MinimumNArgs(3),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	doc, err := openDocument(args[0])
	if err != nil {
		return err
	}
	out, err := console.New(doc.cfg).Run(args[1:])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
