// Fmt command rewrites a config file in canonical form.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fmtForce bool

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Rewrite a file in canonical form",
	Long: `Fmt rewrites the file with one line per key, canonical literals, and
the comments and banners found above each key. Duplicate keys keep their last
value. Files with lines that cannot be parsed are left alone unless --force is
given, in which case those values are written as null.

Example:
  simpleconfig fmt app.conf`,
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().BoolVar(&fmtForce, "force", false, "rewrite even if some lines cannot be parsed")
}

func runFmt(cmd *cobra.Command, args []string) error {
	doc, err := openDocument(args[0])
	if err != nil {
		return err
	}
	if doc.logger.problems > 0 && !fmtForce {
		return fmt.Errorf("%s has %d warning(s); fix them or use --force", args[0], doc.logger.problems)
	}
	return doc.cfg.Write()
}
