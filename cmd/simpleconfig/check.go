// Check command reports lines that cannot be parsed.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Report lines that cannot be parsed",
	Long: `Check reads the file and reports every line whose value cannot be
parsed with the selected syntax. It fails when any line is broken.

Example:
  simpleconfig check app.conf
  SIMPLECONFIG_SYNTAX=hcl simpleconfig check app.conf`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	doc, err := openDocument(args[0])
	if err != nil {
		return err
	}
	if doc.logger.problems > 0 {
		return fmt.Errorf("%s: %d warning(s)", args[0], doc.logger.problems)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d keys ok\n", args[0], len(doc.cfg.Keys()))
	return nil
}
