package translation

import (
	"github.com/atlasdoors/backoffice/internal/types"
)

// Label keys used by the document composer. Every language should
// eventually cover this set; missing keys fall back to the French
// defaults below.
const (
	KeyInvoiceTitle   = "invoiceTitle"
	KeyQuoteTitle     = "quoteTitle"
	KeyDate           = "date"
	KeyNumber         = "number"
	KeyBillTo         = "billTo"
	KeyColDescription = "colDescription"
	KeyColQuantity    = "colQuantity"
	KeyColUnitPrice   = "colUnitPrice"
	KeyColTotal       = "colTotal"
	KeySubtotal       = "subtotal"
	KeyTax            = "tax"
	KeyTotal          = "total"
	KeyPhone          = "phone"
	KeyEmail          = "email"
	KeyFooterText     = "footerText"
)

// DefaultDictionary returns the built-in label dictionary. Storage is
// seeded from it on first access, and reads degrade to it when the
// store is unavailable.
func DefaultDictionary() Dictionary {
	return Dictionary{
		types.LanguageFrench: {
			KeyInvoiceTitle:   "Facture",
			KeyQuoteTitle:     "Devis",
			KeyDate:           "Date",
			KeyNumber:         "Numéro",
			KeyBillTo:         "Facturé à",
			KeyColDescription: "Description",
			KeyColQuantity:    "Quantité",
			KeyColUnitPrice:   "Prix unitaire",
			KeyColTotal:       "Total",
			KeySubtotal:       "Sous-total",
			KeyTax:            "TVA",
			KeyTotal:          "Total TTC",
			KeyPhone:          "Téléphone",
			KeyEmail:          "E-mail",
			KeyFooterText:     "Merci de votre confiance.",
		},
		types.LanguageHebrew: {
			KeyInvoiceTitle:   "חשבונית",
			KeyQuoteTitle:     "הצעת מחיר",
			KeyDate:           "תאריך",
			KeyNumber:         "מספר",
			KeyBillTo:         "לכבוד",
			KeyColDescription: "תיאור",
			KeyColQuantity:    "כמות",
			KeyColUnitPrice:   "מחיר ליחידה",
			KeyColTotal:       "סה\"כ",
			KeySubtotal:       "סכום ביניים",
			KeyTax:            "מע\"מ",
			KeyTotal:          "סה\"כ לתשלום",
			KeyPhone:          "טלפון",
			KeyEmail:          "דוא\"ל",
			KeyFooterText:     "תודה על אמונכם.",
		},
		types.LanguageEnglish: {
			KeyInvoiceTitle:   "Invoice",
			KeyQuoteTitle:     "Quote",
			KeyDate:           "Date",
			KeyNumber:         "Number",
			KeyBillTo:         "Bill to",
			KeyColDescription: "Description",
			KeyColQuantity:    "Quantity",
			KeyColUnitPrice:   "Unit price",
			KeyColTotal:       "Total",
			KeySubtotal:       "Subtotal",
			KeyTax:            "Tax",
			KeyTotal:          "Total due",
			KeyPhone:          "Phone",
			KeyEmail:          "Email",
			KeyFooterText:     "Thank you for your business.",
		},
	}
}
