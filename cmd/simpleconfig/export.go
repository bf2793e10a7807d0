// Export command converts a config file into a JSON, TOML or YAML document.
package main

import (
	"github.com/spf13/cobra"

	"github.com/lixenwraith/simpleconfig"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Print the file as a JSON, TOML or YAML document",
	Long: `Export prints every value of the file as one document.

Example:
  simpleconfig export app.conf --format toml`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String(cfgKeyFormat, "json", "output format: json, toml or yaml")
	_ = settings.BindPFlag(cfgKeyFormat, exportCmd.Flags().Lookup(cfgKeyFormat))
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := simpleconfig.ParseFormat(settings.GetString(cfgKeyFormat))
	if err != nil {
		return err
	}
	doc, err := openDocument(args[0])
	if err != nil {
		return err
	}
	return doc.cfg.Export(cmd.OutOrStdout(), format)
}
