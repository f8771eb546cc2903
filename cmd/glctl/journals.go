package main

import (
	"context"

	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_posting_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gl_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/gl_posting_engine/internal/dto"
	"github.com/SscSPs/gl_posting_engine/pkg/database"
	"github.com/spf13/cobra"
)

var journalsCmd = &cobra.Command{
	Use:     "journals",
	Aliases: []string{"je"},
	Short:   "Inspect journal entries",
}

var (
	jeSourceType string
	jeSourceID   string
	jeLimit      int
	jeNextToken  string
)

var journalsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal entries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := portsrepo.ListJournalsParams{
			SourceType: domain.SourceType(jeSourceType),
			SourceID:   jeSourceID,
			Limit:      jeLimit,
		}
		if jeNextToken != "" {
			params.NextToken = &jeNextToken
		}
		return withServices(cmd, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
			entries, next, err := svc.Journal.ListJournals(ctx, params)
			if err != nil {
				return err
			}
			return printJSON(cmd, dto.ToListJournalsResponse(entries, next))
		})
	},
}

var journalsGetCmd = &cobra.Command{
	Use:   "get <journalID>",
	Short: "Show one journal entry with its lines",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(cmd, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
			entry, err := svc.Journal.GetJournal(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, dto.ToJournalResponse(entry))
		})
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, newLogger())
	},
}

func init() {
	journalsListCmd.Flags().StringVar(&jeSourceType, "source-type", "", "Filter by source type (CUSTOMER_INVOICE, SUPPLIER_INVOICE, PAYMENT, TAX_ACCRUAL)")
	journalsListCmd.Flags().StringVar(&jeSourceID, "source-id", "", "Filter by source ID (requires --source-type)")
	journalsListCmd.Flags().IntVar(&jeLimit, "limit", 20, "Page size")
	journalsListCmd.Flags().StringVar(&jeNextToken, "next", "", "Continuation token from a previous page")

	journalsCmd.AddCommand(journalsListCmd, journalsGetCmd)
	rootCmd.AddCommand(journalsCmd, migrateCmd)
}
