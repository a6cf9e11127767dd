package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/coursefit/internal/requirements"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <course-id>",
	Short: "Check a profile against one course's subject requirements",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cat, err := resolveCatalog(ctx, cmd)
		if err != nil {
			return err
		}
		course, err := cat.Course(args[0])
		if err != nil {
			return err
		}
		student, err := readProfile(cmd, true)
		if err != nil {
			return err
		}

		res := requirements.Check(student.Subjects, course)
		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}

		p := palette(cmd)
		fmt.Fprintf(out, "%s\n", p.Heading.Render(course.Name+" ("+course.University+")"))
		if res.Meets {
			fmt.Fprintln(out, p.Eligible.Render("All subject requirements met"))
		}
		for _, m := range res.Missing {
			fmt.Fprintln(out, p.Missing.Render("✗ "+m))
		}
		for _, a := range course.Requirements.Additional {
			fmt.Fprintln(out, p.Dim.Render("• "+a))
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().String("profile", "", "Student profile JSON (- for stdin)")
	checkCmd.Flags().Bool("json", false, "Print the result as JSON")
	checkCmd.Flags().Bool("no-color", false, "Disable colored output")
}
