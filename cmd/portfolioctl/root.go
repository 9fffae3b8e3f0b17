package main

import (
	"github.com/spf13/cobra"

	"github.com/khoahotran/portfolio-view/adapters/persistence"
	"github.com/khoahotran/portfolio-view/internal/config"
	"github.com/khoahotran/portfolio-view/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-view/pkg/logger"
)

type app struct {
	cfg        config.Config
	logger     logger.Logger
	store      portfolio.Store
	closeStore func()
}

func (a *app) close() {
	if a.closeStore != nil {
		a.closeStore()
	}
	if a.logger != nil {
		a.logger.Sync()
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var driver, sqlitePath string

	root := &cobra.Command{
		Use:           "portfolioctl",
		Short:         "Inspect and seed the stored portfolio fragments",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if driver != "" {
				cfg.Store.Driver = driver
			}
			if sqlitePath != "" {
				cfg.Store.SQLitePath = sqlitePath
			}
			a.cfg = cfg
			a.logger = logger.NewZapLogger(cfg.App.Env)

			store, closeStore, err := persistence.NewFragmentStore(cfg, a.logger)
			if err != nil {
				return err
			}
			a.store, a.closeStore = store, closeStore
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.close()
		},
	}

	root.PersistentFlags().StringVar(&driver, "driver", "", "store driver (memory, sqlite, redis, postgres); overrides STORE_DRIVER")
	root.PersistentFlags().StringVar(&sqlitePath, "sqlite-path", "", "sqlite database file; overrides STORE_SQLITE_PATH")

	root.AddCommand(newSeedCmd(a), newShowCmd(a), newGetCmd(a), newBackupCmd(a), newRestoreCmd(a))
	return root
}
