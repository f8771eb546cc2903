package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	portssvc "github.com/SscSPs/gl_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/gl_posting_engine/internal/dto"
	"github.com/spf13/cobra"
)

var taxCmd = &cobra.Command{
	Use:   "tax",
	Short: "Accrue, file and reverse corporate tax",
}

var (
	taxCountry  string
	taxFrom     string
	taxTo       string
	taxOverride bool
)

var taxAccrueCmd = &cobra.Command{
	Use:   "accrue",
	Short: "Accrue corporate tax for a period",
	Long:  "Computes profit for [--from, --to] from posted activity and books the tax accrual.\nAn existing ACCRUED filing is returned unchanged; a FILED period needs --override.",
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := time.Parse(time.DateOnly, taxFrom)
		if err != nil {
			return fmt.Errorf("invalid --from %q: %w", taxFrom, err)
		}
		to, err := time.Parse(time.DateOnly, taxTo)
		if err != nil {
			return fmt.Errorf("invalid --to %q: %w", taxTo, err)
		}
		req := portssvc.AccrueTaxRequest{
			Country:     strings.ToUpper(taxCountry),
			PeriodStart: from,
			PeriodEnd:   to,
			Override:    taxOverride,
		}
		return withServices(cmd, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
			accrual, err := svc.Tax.Accrue(ctx, req, flagUser)
			if err != nil {
				return err
			}
			return printJSON(cmd, dto.ToAccrueTaxResponse(accrual))
		})
	},
}

var taxFileCmd = &cobra.Command{
	Use:   "file <filingID>",
	Short: "Mark an accrued filing as filed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(cmd, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
			filing, err := svc.Tax.FileReturn(ctx, args[0], flagUser)
			if err != nil {
				return err
			}
			return printJSON(cmd, dto.ToFilingResponse(filing))
		})
	},
}

var taxReverseCmd = &cobra.Command{
	Use:   "reverse <filingID>",
	Short: "Reverse a filing's accrual journal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(cmd, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
			filing, err := svc.Tax.ReverseFiling(ctx, args[0], taxOverride, flagUser)
			if err != nil {
				return err
			}
			return printJSON(cmd, dto.ToFilingResponse(filing))
		})
	},
}

func init() {
	taxAccrueCmd.Flags().StringVar(&taxCountry, "country", "AE", "Country of the tax rule")
	taxAccrueCmd.Flags().StringVar(&taxFrom, "from", "", "Period start (YYYY-MM-DD)")
	taxAccrueCmd.Flags().StringVar(&taxTo, "to", "", "Period end (YYYY-MM-DD)")
	taxAccrueCmd.Flags().BoolVar(&taxOverride, "override", false, "Re-accrue a FILED period, reversing its accrual")
	_ = taxAccrueCmd.MarkFlagRequired("from")
	_ = taxAccrueCmd.MarkFlagRequired("to")

	taxReverseCmd.Flags().BoolVar(&taxOverride, "override", false, "Allow reversing a FILED return")

	taxCmd.AddCommand(taxAccrueCmd, taxFileCmd, taxReverseCmd)
	rootCmd.AddCommand(taxCmd)
}
