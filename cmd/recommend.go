package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/abhisek/coursefit/internal/advice"
	"github.com/abhisek/coursefit/internal/llm"
	"github.com/abhisek/coursefit/internal/report"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank catalog courses for a student profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "text", "json", "csv":
		default:
			return fmt.Errorf("unknown format %q (want text, json or csv)", format)
		}
		advise, _ := cmd.Flags().GetBool("advise")
		if advise && format != "text" {
			return errors.New("--advise only works with --format text")
		}

		skip, _ := cmd.Flags().GetBool("skip-validation")
		student, err := readProfile(cmd, skip)
		if err != nil {
			return err
		}
		cat, err := resolveCatalog(ctx, cmd)
		if err != nil {
			return err
		}

		opts := reportOptions(cmd)
		rep := report.New(student, cat, opts)

		out := cmd.OutOrStdout()
		switch format {
		case "json":
			err = report.WriteJSON(out, rep)
		case "csv":
			err = report.WriteCSV(out, rep)
		default:
			err = report.WriteText(out, rep, palette(cmd))
		}
		if err != nil {
			return err
		}

		if !advise {
			return nil
		}
		provider, err := llm.NewProviderFromEnv(ctx, log.New(os.Stderr, "", log.LstdFlags))
		if errors.Is(err, llm.ErrNotConfigured) {
			return errors.New("--advise needs an LLM provider: set COURSEFIT_LLM_PROVIDER or a vendor API key")
		}
		if err != nil {
			return err
		}
		adv, err := advice.NewService(provider, advice.DefaultConfig()).
			Advise(ctx, advice.Input{Student: student, APS: rep.APS, Results: rep.Results})
		if err != nil {
			return err
		}
		return writeAdvice(cmd, adv)
	},
}

func writeAdvice(cmd *cobra.Command, adv *advice.Advice) error {
	p := palette(cmd)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n%s\n%s\n", p.Title.Render("Counselor Notes"), adv.Summary)
	for i, pick := range adv.Picks {
		fmt.Fprintf(out, "\n%d. %s (%s)\n   %s\n", i+1, p.Heading.Render(pick.CourseName), pick.University, pick.Rationale)
	}
	if len(adv.NextSteps) > 0 {
		fmt.Fprintf(out, "\n%s\n", p.Heading.Render("Next steps"))
		for _, s := range adv.NextSteps {
			fmt.Fprintf(out, "  %s %s\n", p.ReasonMark, s)
		}
	}
	fmt.Fprintln(out, p.Dim.Render("generated by "+adv.Model))
	return nil
}

func reportOptions(cmd *cobra.Command) report.Options {
	top, _ := cmd.Flags().GetInt("top")
	eligible, _ := cmd.Flags().GetBool("eligible-only")
	lang, _ := cmd.Flags().GetBool("match-language")
	return report.Options{Top: top, EligibleOnly: eligible, MatchLanguage: lang}
}

func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().Int("top", 0, "Show at most this many courses (0 shows all)")
	cmd.Flags().Bool("eligible-only", false, "Hide courses whose requirements are not met")
	cmd.Flags().Bool("match-language", false, "Only rank courses taught in the preferred language")
}

func init() {
	recommendCmd.Flags().String("profile", "", "Student profile JSON (- for stdin)")
	recommendCmd.Flags().String("format", "text", "Output format: text, json or csv")
	recommendCmd.Flags().Bool("no-color", false, "Disable colored output")
	recommendCmd.Flags().Bool("advise", false, "Append counselor notes from the configured LLM")
	recommendCmd.Flags().Bool("skip-validation", false, "Rank profiles that fail the six-subject and English checks")
	addReportFlags(recommendCmd)
}
