package cmd

import (
	"github.com/spf13/cobra"

	"github.com/voxelforge/tsmodelgen/pkg/generator"
)

func init() {
	rootCmd.AddCommand(NewGenerateCommand())
}

func NewGenerateCommand() *cobra.Command {
	options := generator.NewOptions()

	var genCmd = &cobra.Command{
		Use:   "generate",
		Short: "generate model classes",
		Long:  "Scan TypeScript declaration roots and emit the configured class model",
		RunE: func(c *cobra.Command, args []string) error {
			options.Normalize()
			return generator.Run(c.Context(),
				generator.WithRoots(options.Roots...),
				generator.WithOutDir(options.OutDir),
				generator.WithConfigFile(options.ConfigFile),
				generator.WithModelDump(options.ModelDumpPath),
			)
		},
	}
	genCmd.PersistentFlags().StringSliceVarP(&options.Roots, "input-directory", "i", []string{}, "source root directory to scan, repeatable")
	genCmd.PersistentFlags().StringVarP(&options.OutDir, "output-directory", "o", "generated", "directory to write generated classes")
	genCmd.PersistentFlags().StringVarP(&options.ConfigFile, "config", "c", "", "rule-table config file (yaml or json)")
	genCmd.PersistentFlags().StringVar(&options.ModelDumpPath, "dump-model", "", "write the intermediate source model to this path")

	return genCmd
}
