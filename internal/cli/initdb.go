package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/feiralivre/feirad/internal/assets"
	"github.com/feiralivre/feirad/internal/config"
	"github.com/feiralivre/feirad/internal/store"
)

// InitDBOptions holds flags for the initdb command.
type InitDBOptions struct {
	*RootOptions
	Config string
}

// NewInitDBCommand creates the initdb command.
func NewInitDBCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InitDBOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "initdb",
		Short: "Create the database and photo directories, then exit",
		Long: `Apply the registry schema and user seeds without starting the server.

Useful for provisioning: after initdb the database file, both photo
directories and the seeded accounts exist.

Example:
  feirad initdb --config feirad.yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInitDB(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Config, "config", "", "path to YAML config file")

	return cmd
}

func runInitDB(opts *InitDBOptions, cmd *cobra.Command) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, dir := range []string{cfg.VendorPhotoDir, cfg.ProductPhotoDir} {
		if err := assets.NewStore(dir, cfg.PlaceholderImage).EnsureDir(); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "database initialized at %s\n", cfg.DatabasePath)
	return nil
}
