package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khoahotran/portfolio-view/adapters/media_storage"
	"github.com/khoahotran/portfolio-view/internal/application/service"
	"github.com/khoahotran/portfolio-view/internal/application/usecase/backup"
)

func newBackupCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Dump the raw stored fragments",
		Long: `Writes every stored fragment, unparsed, to --output (or stdout).
When Cloudinary is configured the dump is also uploaded.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var uploader service.Uploader
			if a.cfg.Cloudinary.CloudName != "" {
				var err error
				uploader, err = media_storage.NewCloudinaryUploader(a.cfg, a.logger)
				if err != nil {
					return err
				}
			}

			out, err := backup.NewBackupUseCase(a.store, uploader, a.logger).Execute(cmd.Context())
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(out.Document, "", "  ")
			if err != nil {
				return err
			}
			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			} else if err := os.WriteFile(output, data, 0o600); err != nil {
				return fmt.Errorf("write backup: %w", err)
			}
			if out.URL != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "uploaded to %s\n", out.URL)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write the backup to")
	return cmd
}

func newRestoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restore FILE",
		Short: "Write raw fragments back from a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read backup file: %w", err)
			}
			var doc backup.Document
			if err := json.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("parse backup file: %w", err)
			}

			restored, err := backup.NewRestoreUseCase(a.store, a.logger).Execute(cmd.Context(), doc)
			if err != nil {
				return err
			}
			for _, k := range restored {
				fmt.Fprintf(cmd.OutOrStdout(), "restored %s\n", k)
			}
			return nil
		},
	}
}
