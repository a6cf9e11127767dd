package cmd

import (
	"fmt"
	"strconv"

	"github.com/abhisek/coursefit/internal/config"
	"github.com/abhisek/coursefit/internal/profile"
	"github.com/abhisek/coursefit/internal/recommend"
	"github.com/abhisek/coursefit/internal/report"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Rank courses for a list of student profiles",
	Long: "batch reads a JSON array of student profiles and ranks the catalog for each,\n" +
		"writing one combined CSV sheet or a JSON array of reports.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		format, _ := cmd.Flags().GetString("format")
		if format != "csv" && format != "json" {
			return fmt.Errorf("unknown format %q (want csv or json)", format)
		}

		r, err := openInput(cmd, "profiles")
		if err != nil {
			return err
		}
		defer r.Close()
		students, err := profile.DecodeList(r)
		if err != nil {
			return err
		}

		skip, _ := cmd.Flags().GetBool("skip-validation")
		if !skip {
			for i, s := range students {
				if err := s.Validate(); err != nil {
					return fmt.Errorf("profile %d: %w", i+1, err)
				}
			}
		}

		cat, err := resolveCatalog(ctx, cmd)
		if err != nil {
			return err
		}

		workers, _ := cmd.Flags().GetInt("workers")
		if workers == 0 {
			workers = config.FromEnv().Workers
		}
		top, _ := cmd.Flags().GetInt("top")
		eligible, _ := cmd.Flags().GetBool("eligible-only")
		opts := report.Options{Top: top, EligibleOnly: eligible}
		ranked, err := recommend.RankAll(ctx, students, cat.Courses(), workers)
		if err != nil {
			return err
		}

		labels := make([]string, len(students))
		reports := make([]report.Report, len(students))
		for i, results := range ranked {
			labels[i] = "student-" + strconv.Itoa(i+1)
			reports[i] = report.Build(cat.Version(), students[i], results, opts)
		}

		if format == "json" {
			return report.WriteJSON(cmd.OutOrStdout(), reports)
		}
		return report.WriteBatchCSV(cmd.OutOrStdout(), labels, reports)
	},
}

func init() {
	batchCmd.Flags().String("profiles", "", "JSON array of student profiles (- for stdin)")
	batchCmd.Flags().String("format", "csv", "Output format: csv or json")
	batchCmd.Flags().Int("workers", 0, "Concurrent rankings (0 uses COURSEFIT_WORKERS or one per CPU)")
	batchCmd.Flags().Bool("skip-validation", false, "Rank profiles that fail the six-subject and English checks")
	batchCmd.Flags().Int("top", 0, "Keep at most this many courses per student (0 keeps all)")
	batchCmd.Flags().Bool("eligible-only", false, "Drop courses whose requirements are not met")
}
