package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/coursefit/internal/catalog"
	"github.com/abhisek/coursefit/internal/store"
	"github.com/abhisek/coursefit/internal/subjects"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect, validate and publish course catalogs",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the courses in the active catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := resolveCatalog(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		courses := cat.Courses()
		if lang, _ := cmd.Flags().GetString("language"); lang != "" {
			courses = cat.ForLanguage(lang)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "catalog %s, %d courses\n\n", cat.Version(), len(courses))
		fmt.Fprintf(out, "%-26s  %-4s  %-34s  %s\n", "ID", "APS", "University", "Course")
		fmt.Fprintln(out, strings.Repeat("─", 100))
		for _, c := range courses {
			fmt.Fprintf(out, "%-26s  %-4d  %-34s  %s\n", c.ID, c.MinimumAPS, c.University, c.Name)
		}
		return nil
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <course-id>",
	Short: "Show one course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := resolveCatalog(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		c, err := cat.Course(args[0])
		if err != nil {
			return err
		}

		p := palette(cmd)
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, p.Title.Render(c.Name))
		fmt.Fprintln(out, p.Dim.Render(fmt.Sprintf("%s • %s • %s • %s", c.University, c.Faculty, c.Qualification, c.Duration)))
		fmt.Fprintf(out, "\n%s\n\n", c.Description)
		fmt.Fprintf(out, "Minimum APS: %d\n", c.MinimumAPS)
		fmt.Fprintf(out, "Language:    %s\n", strings.Join(c.LanguageOfInstruction, ", "))

		req := c.Requirements
		fmt.Fprintln(out, p.Heading.Render("\nSubject requirements"))
		for _, line := range []struct {
			name  string
			mark  int
			level subjects.Level
		}{
			{"Mathematics", req.Mathematics, ""},
			{"Physical Sciences", req.PhysicalSciences, ""},
			{"Life Sciences", req.LifeSciences, ""},
			{"English", req.English, req.EnglishLevel},
			{"Afrikaans", req.Afrikaans, req.AfrikaansLevel},
		} {
			if line.mark == 0 {
				continue
			}
			level := ""
			if line.level != "" {
				level = " (" + line.level.DisplayName() + ")"
			}
			fmt.Fprintf(out, "  %s %d%%%s\n", line.name, line.mark, level)
		}
		for _, a := range req.Additional {
			fmt.Fprintf(out, "  • %s\n", a)
		}

		fmt.Fprintf(out, "%s\n  %s\n", p.Heading.Render("\nCareers"), strings.Join(c.CareerOpportunities, ", "))
		fmt.Fprintf(out, "%s\n  %s\n", p.Heading.Render("Related interests"), strings.Join(c.RelatedInterests, ", "))
		if len(c.PhysicalRequirements) > 0 {
			fmt.Fprintf(out, "%s\n  %s\n", p.Heading.Render("Physical requirements"), strings.Join(c.PhysicalRequirements, ", "))
		}
		return nil
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a catalog document without publishing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalogFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok: catalog %s, %d courses, %d universities\n",
			cat.Version(), cat.Len(), len(cat.Universities()))
		return nil
	},
}

var catalogPublishCmd = &cobra.Command{
	Use:   "publish <file>",
	Short: "Validate a catalog document and publish it to the database",
	Long: "publish replaces the stored catalog. The document's version must be newer\n" +
		"than the published one unless --force is given.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cat, err := loadCatalogFile(args[0])
		if err != nil {
			return err
		}

		s, err := openStore(ctx, cmd, true)
		if err != nil {
			return err
		}
		defer s.Close()

		force, _ := cmd.Flags().GetBool("force")
		pub, err := s.Publication(ctx)
		switch {
		case errors.Is(err, store.ErrCatalogNotPublished):
		case err != nil:
			return err
		case !force && !catalog.Newer(cat.Version(), pub.Version):
			return fmt.Errorf("catalog %s is not newer than published %s (use --force to replace it)", cat.Version(), pub.Version)
		}

		if err := s.PublishCatalog(ctx, cat); err != nil {
			return fmt.Errorf("publish: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "published catalog %s (%d courses)\n", cat.Version(), cat.Len())
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the active catalog as a JSON document",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := resolveCatalog(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		return catalog.Encode(cmd.OutOrStdout(), cat)
	},
}

var catalogStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the catalog published to the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openStore(ctx, cmd, false)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if s == nil {
			fmt.Fprintf(out, "no database; using built-in catalog %s\n", catalog.DefaultVersion)
			return nil
		}
		defer s.Close()

		pub, err := s.Publication(ctx)
		if errors.Is(err, store.ErrCatalogNotPublished) {
			fmt.Fprintf(out, "nothing published; using built-in catalog %s\n", catalog.DefaultVersion)
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "catalog %s, %d courses, published %s\n",
			pub.Version, pub.CourseCount, pub.PublishedAt.Local().Format("2006-01-02 15:04:05"))
		return nil
	},
}

func init() {
	catalogListCmd.Flags().String("language", "", "Only courses taught in this language (English, Afrikaans or Both)")
	catalogShowCmd.Flags().Bool("no-color", false, "Disable colored output")
	catalogPublishCmd.Flags().Bool("force", false, "Publish even if the version is not newer")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogPublishCmd)
	catalogCmd.AddCommand(catalogExportCmd)
	catalogCmd.AddCommand(catalogStatusCmd)
}
