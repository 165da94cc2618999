package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/greenai-platform/scheduler/simulator"
)

var samplesCfg simulator.BatchConfig

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "Generate a random workload batch for testing",
	RunE:  runSamples,
}

func init() {
	samplesCmd.Flags().IntVarP(&samplesCfg.Count, "count", "n", 10, "number of workloads")
	samplesCmd.Flags().IntVar(&samplesCfg.MaxDeadline, "max-deadline", 23, "latest deadline slot")
	samplesCmd.Flags().Int64Var(&samplesCfg.Seed, "seed", 0, "random seed")
	rootCmd.AddCommand(samplesCmd)
}

func runSamples(cmd *cobra.Command, args []string) error {
	batch := simulator.GenerateBatch(samplesCfg)
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(batch)
}
