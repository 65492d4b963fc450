package main

import (
	"fmt"

	"tourdeck/internal/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// dataCmd groups catalog maintenance commands
var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Inspect and check catalog data",
}

var dataDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the active catalog as YAML",
	Long: `Prints the catalog that the UI would show: the --data file if given,
otherwise the built-in catalog. Useful as a starting point for a custom file:

  tourdeck data dump > tours.yaml`,
	Args: cobra.NoArgs,
	RunE: dumpCatalog,
}

var dataValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check a catalog file for duplicate ids and bad prices",
	Args:  cobra.MaximumNArgs(1),
	RunE:  validateCatalog,
}

func dumpCatalog(cmd *cobra.Command, args []string) error {
	c, err := catalog.Load(cfg.DataPath)
	if err != nil {
		return err
	}
	data, err := catalog.Marshal(c)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func validateCatalog(cmd *cobra.Command, args []string) error {
	path := cfg.DataPath
	if len(args) == 1 {
		path = args[0]
	}
	c, err := catalog.Load(path)
	if err != nil {
		logger.Warn("catalog rejected", zap.String("path", path), zap.Error(err))
		return err
	}
	name := path
	if name == "" {
		name = "built-in catalog"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d tours, %d reviews)\n", name, len(c.Tours), len(c.Reviews))
	return nil
}
