package cmd

import (
	"fmt"

	"github.com/abhisek/coursefit/internal/aps"
	"github.com/abhisek/coursefit/internal/subjects"
	"github.com/spf13/cobra"
)

var apsCmd = &cobra.Command{
	Use:   "aps",
	Short: "Compute the Admission Point Score for a profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		skip, _ := cmd.Flags().GetBool("skip-validation")
		student, err := readProfile(cmd, skip)
		if err != nil {
			return err
		}

		b := aps.Explain(student.Subjects)
		explain, _ := cmd.Flags().GetBool("explain")
		if !explain {
			fmt.Fprintln(cmd.OutOrStdout(), b.Total)
			return nil
		}

		p := palette(cmd)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n", p.Title.Render(fmt.Sprintf("APS %d / %d", b.Total, aps.Max)))
		fmt.Fprintf(out, "%-32s %5s %5s %7s\n", "Subject", "Mark", "Band", "Points")
		if lo := b.LifeOrientation; lo != nil {
			fmt.Fprintf(out, "%-32s %4d%% %5d %7.1f\n", subjects.DisplayName(lo.Code), lo.Mark, lo.Band, lo.Points)
		}
		for _, c := range b.Subjects {
			line := fmt.Sprintf("%-32s %4d%% %5d %7.1f", subjects.DisplayName(c.Code), c.Mark, c.Band, c.Points)
			if !c.Counted {
				line = p.Dim.Render(line + "  (not counted)")
			}
			fmt.Fprintln(out, line)
		}
		fmt.Fprintf(out, "%-32s %19.1f\n", "Raw total", b.Raw)
		return nil
	},
}

func init() {
	apsCmd.Flags().String("profile", "", "Student profile JSON (- for stdin)")
	apsCmd.Flags().Bool("explain", false, "Show each subject's contribution")
	apsCmd.Flags().Bool("no-color", false, "Disable colored output")
	apsCmd.Flags().Bool("skip-validation", true, "Accept profiles with fewer than six subjects or no English")
}
