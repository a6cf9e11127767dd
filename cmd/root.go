package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/abhisek/coursefit/internal/catalog"
	"github.com/abhisek/coursefit/internal/config"
	"github.com/abhisek/coursefit/internal/profile"
	"github.com/abhisek/coursefit/internal/store"
	"github.com/abhisek/coursefit/internal/ui/theme"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coursefit",
	Short: "University course recommendations for South African matriculants",
	Long: "coursefit computes a student's Admission Point Score, checks subject requirements\n" +
		"and ranks university courses by academic fit, interests and talents.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("catalog", "", "Catalog JSON document (overrides COURSEFIT_CATALOG)")
	pf.String("db", "", "SQLite path or Postgres DSN holding the published catalog (overrides COURSEFIT_DB_DSN)")
	pf.String("db-driver", "", "Database driver: sqlite or postgres (overrides COURSEFIT_DB_DRIVER)")

	rootCmd.AddCommand(apsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(subjectsCmd)
	rootCmd.AddCommand(interestsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// stringFlag returns the flag value, or def when the flag is empty.
func stringFlag(cmd *cobra.Command, name, def string) string {
	if v, _ := cmd.Flags().GetString(name); v != "" {
		return v
	}
	return def
}

// openStore connects to the catalog database. With create unset and no
// DSN configured it returns nil when the default SQLite file does not
// exist yet.
func openStore(ctx context.Context, cmd *cobra.Command, create bool) (*store.Store, error) {
	cfg := config.FromEnv()
	driver := store.Driver(stringFlag(cmd, "db-driver", cfg.DBDriver))
	dsn := stringFlag(cmd, "db", cfg.DBDSN)

	if dsn == "" {
		if driver != store.DriverSQLite {
			return nil, fmt.Errorf("--db is required for the %s driver", driver)
		}
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) && !create {
			return nil, nil
		}
		dsn = p
	}

	s, err := store.Open(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// resolveCatalog picks the catalog in priority order: --catalog or
// COURSEFIT_CATALOG, the catalog published to the database, the
// built-in reference catalog.
func resolveCatalog(ctx context.Context, cmd *cobra.Command) (*catalog.Catalog, error) {
	if p := stringFlag(cmd, "catalog", config.FromEnv().CatalogPath); p != "" {
		return loadCatalogFile(p)
	}

	s, err := openStore(ctx, cmd, false)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return catalog.Default(), nil
	}
	defer s.Close()

	cat, err := s.LoadCatalog(ctx)
	if errors.Is(err, store.ErrCatalogNotPublished) {
		return catalog.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load published catalog: %w", err)
	}
	return cat, nil
}

func loadCatalogFile(path string) (*catalog.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	cat, err := catalog.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// openInput opens the file named by flag; "-" is stdin.
func openInput(cmd *cobra.Command, flag string) (io.ReadCloser, error) {
	path, _ := cmd.Flags().GetString(flag)
	if path == "" {
		return nil, fmt.Errorf("--%s is required", flag)
	}
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(path)
}

// readProfile decodes the --profile document. Unless skipValidation is
// set, profiles that fail the ranking preconditions are rejected.
func readProfile(cmd *cobra.Command, skipValidation bool) (profile.Student, error) {
	r, err := openInput(cmd, "profile")
	if err != nil {
		return profile.Student{}, err
	}
	defer r.Close()

	student, err := profile.Decode(r)
	if err != nil {
		return profile.Student{}, err
	}
	if !skipValidation {
		if err := student.Validate(); err != nil {
			return profile.Student{}, err
		}
	}
	return student, nil
}

// palette picks colours only for terminals.
func palette(cmd *cobra.Command) theme.Palette {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		return theme.Plain()
	}
	if f, ok := cmd.OutOrStdout().(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return theme.Color()
	}
	return theme.Plain()
}
