// Keys command lists the keys of a config file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys <file>",
	Short: "List the keys of a config file",
	Long: `Keys prints every key found in the file, in file order.

Example:
  simpleconfig keys app.conf`,
	Args: cobra.ExactArgs(1),
	RunE: runKeys,
}

func runKeys(cmd *cobra.Command, args []string) error {
	doc, err := openDocument(args[0])
	if err != nil {
		return err
	}
	for _, key := range doc.cfg.Keys() {
		fmt.Fprintln(cmd.OutOrStdout(), key)
	}
	return nil
}
