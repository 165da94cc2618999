package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greenai-platform/scheduler/config"
	"github.com/greenai-platform/scheduler/core/model"
	"github.com/greenai-platform/scheduler/core/region"
)

var (
	regionsProfilePath string
	regionsBaseline    string
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "Evaluate a job profile against the configured region table",
	RunE:  runRegions,
}

func init() {
	regionsCmd.Flags().StringVarP(&regionsProfilePath, "profile", "p", "", "JSON file with the resource profile")
	regionsCmd.Flags().StringVarP(&regionsBaseline, "baseline", "b", "", "baseline region (default from config)")
	if err := regionsCmd.MarkFlagRequired("profile"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(regionsCmd)
}

func runRegions(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	var profile model.ResourceProfile
	if err := readJSONFile(regionsProfilePath, &profile); err != nil {
		return fmt.Errorf("read profile: %w", err)
	}
	baseline := regionsBaseline
	if baseline == "" {
		baseline = cfg.Regions.Baseline
	}

	sel := region.NewSelector(cfg.Regions.Weights)
	eval, err := sel.Evaluate(profile, model.RegionTable(cfg.Regions.Table), baseline)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(eval)
}
