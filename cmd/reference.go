package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/coursefit/internal/catalog"
	"github.com/abhisek/coursefit/internal/subjects"
	"github.com/spf13/cobra"
)

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List the subject codes accepted in profiles",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, s := range subjects.All() {
			levels := ""
			if s.HasLevels {
				levels = "HL/FAL"
			}
			fmt.Fprintf(out, "%-28s  %-6s  %s\n", s.Code, levels, s.Name)
		}
	},
}

var interestsCmd = &cobra.Command{
	Use:   "interests",
	Short: "List the interest categories offered to students",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, g := range catalog.InterestGroups() {
			fmt.Fprintf(out, "%s\n  %s\n", g.Name, strings.Join(g.Interests, ", "))
		}
	},
}
