package types

import (
	ierr "github.com/atlasdoors/backoffice/internal/errors"
)

// DocumentKind distinguishes a legally issued invoice from a quote.
type DocumentKind string

const (
	DocumentKindInvoice DocumentKind = "invoice"
	DocumentKindQuote   DocumentKind = "quote"
)

func (k DocumentKind) Validate() error {
	switch k {
	case DocumentKindInvoice, DocumentKindQuote:
		return nil
	default:
		return ierr.NewError("invalid document kind").
			WithHintf("Document kind must be one of: %s, %s", DocumentKindInvoice, DocumentKindQuote).
			Mark(ierr.ErrValidation)
	}
}
