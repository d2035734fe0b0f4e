// trajprep converts raw problem dumps (JSONL) into trajectory-ready
// Parquet splits for tool-enabled rollouts.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/agentfoundry/trajexec/dataset"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cmd := &cobra.Command{
		Use:   "trajprep",
		Short: "prepare trajectory datasets for tool-enabled rollouts",
		Long: `trajprep reads newline-delimited JSON problem records per split
(<input-dir>/<split>.jsonl), builds the rollout prompt and per-trajectory
tool configuration for each record, and writes Parquet splits to
<output-dir>/<split>.parquet.

A split that fails to load is logged and skipped; the command fails only
when no split could be processed.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputDir := viper.GetString("input-dir")
			outputDir := viper.GetString("output-dir")
			splits := viper.GetStringSlice("splits")

			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			log.WithFields(logrus.Fields{
				"input":  inputDir,
				"output": outputDir,
				"splits": strings.Join(splits, ","),
			}).Info("processing splits")

			written, err := dataset.ProcessSplits(inputDir, outputDir, splits, logfAdapter{log})
			if err != nil {
				return err
			}
			log.WithField("files", len(written)).Info("done")
			return nil
		},
	}

	flags := cmd.Flags()
	flags.SetNormalizeFunc(wordSepNormalizeFunc)
	flags.String("input-dir", ".", "directory holding <split>.jsonl dumps")
	flags.String("output-dir", ".", "directory to write <split>.parquet files")
	flags.StringSlice("splits", []string{"dev", "test"}, "splits to process")

	viper.SetEnvPrefix("TRAJPREP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlags(flags)

	return cmd
}

// wordSepNormalizeFunc accepts "_"-separated flag spellings.
func wordSepNormalizeFunc(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

// logfAdapter exposes a logrus logger through the dataset.Logger interface.
type logfAdapter struct {
	log *logrus.Logger
}

func (a logfAdapter) Logf(format string, args ...any) {
	a.log.Infof(format, args...)
}
