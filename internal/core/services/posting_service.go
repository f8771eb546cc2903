package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/gl_posting_engine/internal/apperrors"
	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_posting_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gl_posting_engine/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// PostingService turns invoices and payments into posted journal entries.
// Every operation runs in one transaction that starts by locking the source row.
type PostingService struct {
	BaseService
	uow        portsrepo.UnitOfWork
	accounts   portssvc.AccountRegistrySvc
	conversion portssvc.CurrencyConversionSvc
	fx         portssvc.FXGainLossSvc
	gate       *ImmutabilityValidator
}

var _ portssvc.PostingSvcFacade = (*PostingService)(nil)

// NewPostingService creates a new PostingService.
func NewPostingService(
	uow portsrepo.UnitOfWork,
	accounts portssvc.AccountRegistrySvc,
	conversion portssvc.CurrencyConversionSvc,
	fx portssvc.FXGainLossSvc,
	gate *ImmutabilityValidator,
) *PostingService {
	return &PostingService{
		BaseService: newBaseService(),
		uow:         uow,
		accounts:    accounts,
		conversion:  conversion,
		fx:          fx,
		gate:        gate,
	}
}

// PostInvoice posts a customer or supplier invoice.
func (s *PostingService) PostInvoice(ctx context.Context, documentID, userID string) (*domain.PostingResult, error) {
	logger := s.GetLogger(ctx).With(slog.String("document_id", documentID))

	var result *domain.PostingResult
	err := s.uow.WithTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		doc, err := repos.Documents.FindDocumentForUpdate(ctx, documentID)
		if err != nil {
			return err
		}

		if doc.JournalEntryID != nil {
			entry, err := repos.Journals.FindJournalByID(ctx, *doc.JournalEntryID)
			if err != nil {
				return fmt.Errorf("loading journal %s of posted document %s: %w", *doc.JournalEntryID, documentID, err)
			}
			logger.Info("Document already posted", slog.String("journal_id", entry.JournalID))
			result = &domain.PostingResult{Entry: entry, Document: doc, Created: false}
			return nil
		}
		if doc.Status != domain.DocumentDraft {
			return &apperrors.InvalidStateError{Entity: "document", ID: documentID, Current: string(doc.Status), Wanted: string(domain.DocumentDraft)}
		}

		if len(doc.Lines) == 0 {
			return apperrors.NewValidationError("lines", "document has no line items")
		}
		subtotal, tax, total := doc.ComputeTotals()
		if total.IsZero() {
			return apperrors.NewValidationError("total", "document total is zero")
		}

		base, err := s.conversion.BaseCurrency(ctx)
		if err != nil {
			return err
		}

		rate := decimal.NewFromInt(1)
		baseSubtotal, baseTax, baseTotal := subtotal, tax, total
		memo := doc.Number
		if doc.CurrencyCode != base.CurrencyCode {
			rate, err = s.conversion.ResolveRate(ctx, doc.CurrencyCode, base.CurrencyCode, doc.DocumentDate, domain.RateTypeSpot)
			if err != nil {
				return err
			}
			// Tax takes the rounding residual so the entry balances at round(total × rate).
			baseTotal = domain.ConvertAmount(total, rate)
			baseSubtotal = domain.ConvertAmount(subtotal, rate)
			baseTax = baseTotal.Sub(baseSubtotal)
			memo = fmt.Sprintf("%s (%s→%s @ %s)", doc.Number, doc.CurrencyCode, base.CurrencyCode, rate.String())
		}

		now := s.Now()
		entry := domain.NewJournalEntry(doc.DocumentDate, base.CurrencyCode, memo, doc.DocumentType.SourceType(), doc.DocumentID, userID, now)
		if err := s.buildInvoiceLines(entry, doc.DocumentType, baseSubtotal, baseTax, baseTotal); err != nil {
			return err
		}

		if err := entry.Post(now); err != nil {
			s.LogError(ctx, err, "Invoice entry failed balance check", slog.String("document_id", documentID))
			return err
		}
		if err := repos.Journals.SaveJournalEntry(ctx, *entry); err != nil {
			return fmt.Errorf("saving journal for document %s: %w", documentID, err)
		}

		proposed := doc.Clone()
		proposed.Status = domain.DocumentPosted
		proposed.JournalEntryID = &entry.JournalID
		proposed.PostedAt = &now
		proposed.ExchangeRate = &rate
		proposed.BaseCurrencyTotal = &baseTotal
		proposed.SettlementStatus = domain.Unpaid
		proposed.Touch(userID, now)
		if err := s.gate.Write(ctx, repos.Documents, doc, proposed); err != nil {
			return err
		}

		result = &domain.PostingResult{Entry: entry, Document: proposed, Created: true}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Created {
		logger.Info("Invoice posted",
			slog.String("journal_id", result.Entry.JournalID),
			slog.String("base_total", result.Document.BaseCurrencyTotal.StringFixed(domain.AmountScale)))
	}
	return result, nil
}

func (s *PostingService) buildInvoiceLines(entry *domain.JournalEntry, docType domain.DocumentType, subtotal, tax, total decimal.Decimal) error {
	roles := []domain.AccountRole{domain.RolePayable, domain.RoleExpense, domain.RoleVATInput}
	if docType.IsReceivable() {
		roles = []domain.AccountRole{domain.RoleReceivable, domain.RoleRevenue, domain.RoleVATOutput}
	}
	accounts := make([]*domain.Account, len(roles))
	for i, role := range roles {
		account, err := s.accounts.Resolve(role)
		if err != nil {
			return err
		}
		accounts[i] = account
	}
	control, net, vat := accounts[0], accounts[1], accounts[2]

	if docType.IsReceivable() {
		entry.AddDebit(control.AccountID, total, "")
		entry.AddCredit(net.AccountID, subtotal, "")
		entry.AddCredit(vat.AccountID, tax, "")
		return nil
	}
	entry.AddDebit(net.AccountID, subtotal, "")
	entry.AddDebit(vat.AccountID, tax, "")
	entry.AddCredit(control.AccountID, total, "")
	return nil
}

// PostPayment posts a payment against a posted invoice in the invoice's
// currency. The control account is relieved at the invoice's frozen rate and
// the bank at the rate of the payment date; the difference is booked as a
// realized FX gain or loss.
func (s *PostingService) PostPayment(ctx context.Context, paymentID, userID string) (*domain.PaymentPostingResult, error) {
	logger := s.GetLogger(ctx).With(slog.String("payment_id", paymentID))

	var result *domain.PaymentPostingResult
	err := s.uow.WithTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		pay, err := repos.Payments.FindPaymentForUpdate(ctx, paymentID)
		if err != nil {
			return err
		}

		if pay.JournalEntryID != nil {
			entry, err := repos.Journals.FindJournalByID(ctx, *pay.JournalEntryID)
			if err != nil {
				return fmt.Errorf("loading journal of posted payment %s: %w", paymentID, err)
			}
			invoice, err := repos.Documents.FindDocumentByID(ctx, pay.InvoiceID)
			if err != nil {
				return err
			}
			result = &domain.PaymentPostingResult{Entry: entry, Payment: pay, Invoice: invoice, Created: false}
			return nil
		}
		if pay.Status != domain.PaymentDraft {
			return &apperrors.InvalidStateError{Entity: "payment", ID: paymentID, Current: string(pay.Status), Wanted: string(domain.PaymentDraft)}
		}
		if !pay.Amount.IsPositive() {
			return apperrors.NewValidationError("amount", "payment amount must be positive")
		}

		invoice, err := repos.Documents.FindDocumentForUpdate(ctx, pay.InvoiceID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewValidationError("invoiceID", fmt.Sprintf("invoice %s does not exist", pay.InvoiceID))
			}
			return err
		}
		if invoice.Status != domain.DocumentPosted {
			return &apperrors.InvalidStateError{Entity: "document", ID: invoice.DocumentID, Current: string(invoice.Status), Wanted: string(domain.DocumentPosted)}
		}
		if pay.CurrencyCode != invoice.CurrencyCode {
			return apperrors.NewValidationError("currencyCode",
				fmt.Sprintf("payment currency %s differs from invoice currency %s", pay.CurrencyCode, invoice.CurrencyCode))
		}
		outstanding := invoice.Outstanding()
		if pay.Amount.GreaterThan(outstanding) {
			return apperrors.NewValidationError("amount",
				fmt.Sprintf("payment %s exceeds outstanding balance %s", pay.Amount.StringFixed(domain.AmountScale), outstanding.StringFixed(domain.AmountScale)))
		}
		if invoice.ExchangeRate == nil {
			return fmt.Errorf("%w: posted invoice %s has no frozen exchange rate", apperrors.ErrInternal, invoice.DocumentID)
		}

		base, err := s.conversion.BaseCurrency(ctx)
		if err != nil {
			return err
		}
		settleRate, err := s.conversion.ResolveRate(ctx, pay.CurrencyCode, base.CurrencyCode, pay.PaymentDate, domain.RateTypeSpot)
		if err != nil {
			return err
		}

		bankBase := domain.ConvertAmount(pay.Amount, settleRate)
		var cleared, fxAmount decimal.Decimal
		var kind domain.FXKind
		if pay.Amount.Equal(outstanding) {
			// Final payment clears whatever base balance is left, absorbing earlier rounding.
			cleared = invoice.BaseOutstanding()
			fxAmount, kind = s.fx.ComputeGainLoss(cleared, base.CurrencyCode, decimal.NewFromInt(1), pay.Amount, pay.CurrencyCode, settleRate)
		} else {
			cleared = domain.ConvertAmount(pay.Amount, *invoice.ExchangeRate)
			fxAmount, kind = s.fx.ComputeGainLoss(pay.Amount, pay.CurrencyCode, *invoice.ExchangeRate, pay.Amount, pay.CurrencyCode, settleRate)
		}

		memo := fmt.Sprintf("Payment %s for %s", paymentLabel(pay), invoice.Number)
		if pay.CurrencyCode != base.CurrencyCode {
			memo = fmt.Sprintf("%s (%s→%s @ %s)", memo, pay.CurrencyCode, base.CurrencyCode, settleRate.String())
		}

		now := s.Now()
		entry := domain.NewJournalEntry(pay.PaymentDate, base.CurrencyCode, memo, domain.SourcePayment, pay.PaymentID, userID, now)
		bank, err := s.accounts.Resolve(domain.RoleBank)
		if err != nil {
			return err
		}
		if invoice.DocumentType.IsReceivable() {
			ar, err := s.accounts.Resolve(domain.RoleReceivable)
			if err != nil {
				return err
			}
			entry.AddDebit(bank.AccountID, bankBase, "")
			entry.AddCredit(ar.AccountID, cleared, "")
		} else {
			ap, err := s.accounts.Resolve(domain.RolePayable)
			if err != nil {
				return err
			}
			entry.AddDebit(ap.AccountID, cleared, "")
			entry.AddCredit(bank.AccountID, bankBase, "")
			kind = kind.Opposite()
		}
		if err := s.fx.PostGainLoss(entry, fxAmount, kind, nil); err != nil {
			return err
		}

		if err := entry.Post(now); err != nil {
			s.LogError(ctx, err, "Payment entry failed balance check", slog.String("payment_id", paymentID))
			return err
		}
		if err := repos.Journals.SaveJournalEntry(ctx, *entry); err != nil {
			return fmt.Errorf("saving journal for payment %s: %w", paymentID, err)
		}

		pay.Status = domain.PaymentPosted
		pay.JournalEntryID = &entry.JournalID
		pay.PostedAt = &now
		pay.ExchangeRate = &settleRate
		pay.BaseAmount = &bankBase
		pay.ClearedBaseAmount = &cleared
		if !fxAmount.IsZero() {
			pay.FXAmount = &fxAmount
			pay.FXKind = &kind
		}
		pay.Touch(userID, now)
		if err := repos.Payments.UpdatePayment(ctx, *pay); err != nil {
			return fmt.Errorf("updating payment %s: %w", paymentID, err)
		}

		settled := invoice.Clone()
		settled.ApplySettlement(pay.Amount, cleared)
		settled.Touch(userID, now)
		if err := s.gate.Write(ctx, repos.Documents, invoice, settled); err != nil {
			return err
		}

		result = &domain.PaymentPostingResult{Entry: entry, Payment: pay, Invoice: settled, Created: true}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Created {
		logger.Info("Payment posted",
			slog.String("journal_id", result.Entry.JournalID),
			slog.String("invoice_id", result.Invoice.DocumentID),
			slog.String("settlement_status", string(result.Invoice.SettlementStatus)))
	}
	return result, nil
}

func paymentLabel(p *domain.Payment) string {
	if p.Reference != "" {
		return p.Reference
	}
	return p.PaymentID
}
