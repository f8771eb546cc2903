package dto

import (
	"testing"

	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, RegisterValidators(v))
	return v
}

func validDocumentRequest() SaveDocumentRequest {
	return SaveDocumentRequest{
		DocumentType: domain.CustomerInvoice,
		Number:       "INV-001",
		CurrencyCode: "usd",
		DocumentDate: "2024-03-15",
		Lines: []DocumentLineRequest{
			{Description: "Consulting", Quantity: "1", UnitPrice: "1000", TaxRate: "5", AccountID: "acc-4000", TaxCode: "STD"},
		},
	}
}

func TestSaveDocumentRequest_Validation(t *testing.T) {
	v := newValidator(t)

	testCases := []struct {
		name    string
		mutate  func(r *SaveDocumentRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *SaveDocumentRequest) {}},
		{name: "tax rate optional", mutate: func(r *SaveDocumentRequest) { r.Lines[0].TaxRate = "" }},
		{name: "bad quantity", mutate: func(r *SaveDocumentRequest) { r.Lines[0].Quantity = "one" }, wantErr: true},
		{name: "quantity at six places", mutate: func(r *SaveDocumentRequest) { r.Lines[0].Quantity = "1.123456" }},
		{name: "quantity past six places", mutate: func(r *SaveDocumentRequest) { r.Lines[0].Quantity = "1.1234567" }, wantErr: true},
		{name: "unit price trailing zeros", mutate: func(r *SaveDocumentRequest) { r.Lines[0].UnitPrice = "10.50000000" }},
		{name: "unit price past six places", mutate: func(r *SaveDocumentRequest) { r.Lines[0].UnitPrice = "0.0000001" }, wantErr: true},
		{name: "tax rate past four places", mutate: func(r *SaveDocumentRequest) { r.Lines[0].TaxRate = "5.00001" }, wantErr: true},
		{name: "bad date", mutate: func(r *SaveDocumentRequest) { r.DocumentDate = "15/03/2024" }, wantErr: true},
		{name: "unknown type", mutate: func(r *SaveDocumentRequest) { r.DocumentType = "CREDIT_NOTE" }, wantErr: true},
		{name: "currency length", mutate: func(r *SaveDocumentRequest) { r.CurrencyCode = "US" }, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validDocumentRequest()
			tc.mutate(&req)
			err := v.Struct(req)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveDocumentRequest_ToDomain(t *testing.T) {
	doc := validDocumentRequest().ToDomain("doc-1")

	assert.Equal(t, "doc-1", doc.DocumentID)
	assert.Equal(t, "USD", doc.CurrencyCode)
	assert.Equal(t, "2024-03-15", doc.DocumentDate.Format("2006-01-02"))
	require.Len(t, doc.Lines, 1)
	assert.Equal(t, "1000", doc.Lines[0].UnitPrice.String())
	assert.Equal(t, "5", doc.Lines[0].TaxRate.String())
}

func TestAccrueTaxRequest(t *testing.T) {
	v := newValidator(t)

	req := AccrueTaxRequest{Country: "AE", From: "2024-01-01", To: "2024-12-31"}
	require.NoError(t, v.Struct(req))

	svcReq := req.ToServiceRequest()
	assert.Equal(t, 2024, svcReq.PeriodEnd.Year())
	assert.Equal(t, 12, int(svcReq.PeriodEnd.Month()))

	assert.Error(t, v.Struct(AccrueTaxRequest{Country: "UAE", From: "2024-01-01", To: "2024-12-31"}))
}
