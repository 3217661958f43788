package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"jobswipe/internal/app"
	"jobswipe/internal/config"
	"jobswipe/internal/database/migration"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List migrations and whether they are applied",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if migrationsDir != "" {
		cfg.Database.MigrationsDir = migrationsDir
	}

	c, err := app.NewContainer(cmd.Context(), cfg, zap.NewNop())
	if err != nil {
		return fmt.Errorf("init container: %w", err)
	}
	defer func() { _ = c.Close() }()

	r := migration.Runner{Source: migration.SourceFor(cfg.Database.MigrationsDir)}
	states, err := r.Status(cmd.Context(), c.DB.SQLDB())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VERSION\tNAME\tSTATE\tAPPLIED AT")
	for _, st := range states {
		state, at := "pending", "-"
		if st.Applied {
			state = "applied"
			at = st.AppliedAt.UTC().Format("2006-01-02 15:04:05")
		}
		if st.Modified {
			state = "modified"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", st.Version, st.Name, state, at)
	}
	return w.Flush()
}
