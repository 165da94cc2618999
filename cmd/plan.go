package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/greenai-platform/scheduler/config"
	"github.com/greenai-platform/scheduler/core/model"
	"github.com/greenai-platform/scheduler/core/planner"
	"github.com/greenai-platform/scheduler/core/savings"
	"github.com/greenai-platform/scheduler/core/scheduler"
	infraforecast "github.com/greenai-platform/scheduler/infra/forecast"
	"github.com/greenai-platform/scheduler/infra/logger"
)

var (
	planWorkloadsPath string
	planForecastPath  string
	planPolicy        string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan a workload batch from files and print the schedule",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planWorkloadsPath, "workloads", "w", "", "JSON file with the workload batch")
	planCmd.Flags().StringVarP(&planForecastPath, "forecast", "f", "", "JSON file with the carbon series (generated when omitted)")
	planCmd.Flags().StringVarP(&planPolicy, "policy", "p", "", "scheduling policy (default from config)")
	if err := planCmd.MarkFlagRequired("workloads"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var workloads []model.Workload
	if err := readJSONFile(planWorkloadsPath, &workloads); err != nil {
		return fmt.Errorf("read workloads: %w", err)
	}
	var series model.CarbonSeries
	if planForecastPath != "" {
		if err := readJSONFile(planForecastPath, &series); err != nil {
			return fmt.Errorf("read forecast: %w", err)
		}
	}

	pl := planner.New(infraforecast.New(cfg.Forecast), nil, nil, logger.New("plan"),
		scheduler.Policy(cfg.Scheduler.DefaultPolicy), cfg.Scheduler.HorizonSlots)
	res, err := pl.PlanBatch(context.Background(), planner.Request{
		BatchID:   "cli",
		Policy:    planPolicy,
		Forecast:  series,
		Workloads: workloads,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		model.Schedule
		Savings savings.Report `json:"savings"`
	}{res.Schedule, res.Savings})
}

func readJSONFile(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
