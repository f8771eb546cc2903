package main

import (
	"context"

	portssvc "github.com/SscSPs/gl_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/gl_posting_engine/internal/dto"
	"github.com/spf13/cobra"
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Post source documents and payments to the ledger",
}

var postInvoiceCmd = &cobra.Command{
	Use:   "invoice <documentID>",
	Short: "Post a draft customer or supplier invoice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(cmd, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
			res, err := svc.Posting.PostInvoice(ctx, args[0], flagUser)
			if err != nil {
				return err
			}
			return printJSON(cmd, dto.ToPostDocumentResponse(res))
		})
	},
}

var postPaymentCmd = &cobra.Command{
	Use:   "payment <paymentID>",
	Short: "Post a payment against its invoice, booking any realized FX difference",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(cmd, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
			res, err := svc.Posting.PostPayment(ctx, args[0], flagUser)
			if err != nil {
				return err
			}
			return printJSON(cmd, dto.ToPostPaymentResponse(res))
		})
	},
}

var reverseCmd = &cobra.Command{
	Use:   "reverse",
	Short: "Reverse posted documents and payments",
}

var reverseDocumentCmd = &cobra.Command{
	Use:   "document <documentID>",
	Short: "Reverse a posted invoice with a mirror document and journal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(cmd, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
			res, err := svc.Reversal.ReverseDocument(ctx, args[0], flagUser)
			if err != nil {
				return err
			}
			return printJSON(cmd, dto.ToReverseDocumentResponse(res))
		})
	},
}

var reversePaymentCmd = &cobra.Command{
	Use:   "payment <paymentID>",
	Short: "Reverse a posted payment and reopen its invoice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(cmd, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
			res, err := svc.Reversal.ReversePayment(ctx, args[0], flagUser)
			if err != nil {
				return err
			}
			return printJSON(cmd, dto.ToReversePaymentResponse(res))
		})
	},
}

func init() {
	postCmd.AddCommand(postInvoiceCmd, postPaymentCmd)
	reverseCmd.AddCommand(reverseDocumentCmd, reversePaymentCmd)
	rootCmd.AddCommand(postCmd, reverseCmd)
}
