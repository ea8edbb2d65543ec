package dto

import (
	"github.com/shopspring/decimal"

	"github.com/atlasdoors/backoffice/internal/domain/document"
	"github.com/atlasdoors/backoffice/internal/types"
)

// GenerateDocumentRequest is the payload to compose an invoice or a
// quote. Number is optional; one is generated when absent.
type GenerateDocumentRequest struct {
	Number   string             `json:"number"`
	Kind     types.DocumentKind `json:"kind" binding:"required"`
	Date     string             `json:"date" binding:"required"`
	Client   ClientRequest      `json:"client" binding:"required"`
	Sender   SenderRequest      `json:"sender" binding:"required"`
	Items    []LineItemRequest  `json:"items"`
	TaxRate  decimal.Decimal    `json:"tax_rate"`
	Language types.Language     `json:"language" binding:"required"`
}

type ClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

type SenderRequest struct {
	Name    string `json:"name" binding:"required"`
	Subline string `json:"subline"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Footer  string `json:"footer"`
}

type LineItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

func (r *GenerateDocumentRequest) ToDocument() *document.Document {
	items := make([]document.LineItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, document.LineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	return &document.Document{
		Number: r.Number,
		Kind:   r.Kind,
		Date:   r.Date,
		Client: document.Client{
			Name:    r.Client.Name,
			Address: r.Client.Address,
			Email:   r.Client.Email,
		},
		Sender: document.Sender{
			Name:    r.Sender.Name,
			Subline: r.Sender.Subline,
			Address: r.Sender.Address,
			City:    r.Sender.City,
			Phone:   r.Sender.Phone,
			Email:   r.Sender.Email,
			Footer:  r.Sender.Footer,
		},
		Items:    items,
		TaxRate:  r.TaxRate,
		Language: r.Language,
	}
}
