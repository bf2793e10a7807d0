// Get command prints the value of one key.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/simpleconfig/console"
)

var getCmd = &cobra.Command{
	Use:   "get <file> <key>",
	Short: "Print the value of a key",
	Long: `Get prints key=value for one key of the file.

Example:
  simpleconfig get app.conf port`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	doc, err := openDocument(args[0])
	if err != nil {
		return err
	}
	out, err := console.New(doc.cfg).Run(args[1:2])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
