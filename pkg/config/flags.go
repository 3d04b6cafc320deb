package config

import (
	"github.com/spf13/cobra"
)

// AddInputFlags adds input selection flags to a command.
func (c *Config) AddInputFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&c.Root, "root", c.Root, "Project root that relative paths resolve against")
	flags.StringVarP(&c.LogPath, "input", "i", c.LogPath, "Trace log, or a previously exported data file")
}

// AddOutputFlags adds chart output flags to a command.
func (c *Config) AddOutputFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&c.OutputDir, "output-dir", "o", c.OutputDir, "Output directory for charts")
	flags.StringVarP(&c.Profile, "profile", "p", c.Profile, "Style profile (annotated, compact)")
	flags.StringVar(&c.Export, "export", c.Export, "Also write parsed records to this data file (jsonl, csv, tsv, parquet)")
}

// AddLogFlags adds logging flags to a command.
func (c *Config) AddLogFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&c.LogLevel, "log.level", c.LogLevel, "Log level (debug, info, warn, error)")
}
