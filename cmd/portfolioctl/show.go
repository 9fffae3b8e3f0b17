package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	portfolioUC "github.com/khoahotran/portfolio-view/internal/application/usecase/portfolio"
)

func newShowCmd(a *app) *cobra.Command {
	var diagnose bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the assembled portfolio snapshot as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := portfolioUC.NewLoadPortfolioUseCase(a.store, a.logger).Execute(cmd.Context())

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(out.Snapshot); err != nil {
				return err
			}

			if diagnose {
				for _, r := range out.Results {
					line := fmt.Sprintf("%s: %s", r.Key, r.Status)
					if r.Err != nil {
						line += " (" + r.Err.Error() + ")"
					}
					fmt.Fprintln(cmd.ErrOrStderr(), line)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&diagnose, "diagnose", false, "also report how each fragment was obtained on stderr")
	return cmd
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print one raw stored fragment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, found, err := a.store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("fragment %q has never been written", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}
