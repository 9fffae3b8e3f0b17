package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khoahotran/portfolio-view/adapters/event"
	"github.com/khoahotran/portfolio-view/internal/application/service"
	portfolioUC "github.com/khoahotran/portfolio-view/internal/application/usecase/portfolio"
)

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed FILE",
		Short: "Replace stored fragments from a JSON document",
		Long: `Reads {"basicInfo": {...}, "experiences": [...], "projects": [...]} and
replaces each fragment present in the document. Missing sections are left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read seed file: %w", err)
			}

			var input portfolioUC.SavePortfolioInput
			if err := json.Unmarshal(data, &input); err != nil {
				return fmt.Errorf("parse seed file: %w", err)
			}

			var publisher service.EventPublisher
			if len(a.cfg.Kafka.Brokers) > 0 {
				kafkaClient, err := event.NewKafkaProducerClient(a.cfg, a.logger)
				if err != nil {
					return err
				}
				defer kafkaClient.Close()
				publisher = kafkaClient
			}

			out, err := portfolioUC.NewSavePortfolioUseCase(a.store, publisher, a.logger).Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			for _, k := range out.Keys {
				fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", k)
			}
			return nil
		},
	}
}
