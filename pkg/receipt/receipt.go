// Package receipt renders a check as a fixed-width plain-text document
// suitable for printing or display. Rendering is a pure function: the same
// receipt and layout always produce byte-identical output.
package receipt

import (
	"fmt"
	"time"
)

// Item is a single line item on a receipt.
type Item struct {
	Name     string
	Quantity int
	Price    float64
	Total    float64
}

// Receipt is a value object representing a printable check.
// It is composed from stored check data at render time.
type Receipt struct {
	FOP           string // issuer (the seller's full name)
	Items         []Item
	Total         float64
	PaymentType   string // "cash" or "card"
	PaymentAmount float64
	Rest          float64
	CreatedAt     time.Time
}

// Layout holds the column widths of the rendered document. Each width is
// independently configurable; zero values are not valid, use DefaultLayout
// and override what you need.
type Layout struct {
	FOPWidth     int
	QtyWidth     int
	PriceWidth   int
	NameWidth    int
	TotalWidth   int
	SumWidth     int
	PaymentWidth int
	DateWidth    int
}

// DefaultLayout returns the standard column widths.
func DefaultLayout() Layout {
	return Layout{
		FOPWidth:     10,
		QtyWidth:     6,
		PriceWidth:   12,
		NameWidth:    20,
		TotalWidth:   12,
		SumWidth:     20,
		PaymentWidth: 15,
		DateWidth:    20,
	}
}

const maxColumnWidth = 120

// Validate checks that every column width is within a sane range.
func (l Layout) Validate() error {
	widths := map[string]int{
		"fop_width":     l.FOPWidth,
		"qty_width":     l.QtyWidth,
		"price_width":   l.PriceWidth,
		"name_width":    l.NameWidth,
		"total_width":   l.TotalWidth,
		"sum_width":     l.SumWidth,
		"payment_width": l.PaymentWidth,
		"date_width":    l.DateWidth,
	}
	for name, w := range widths {
		if w < 1 || w > maxColumnWidth {
			return fmt.Errorf("%s must be between 1 and %d", name, maxColumnWidth)
		}
	}
	return nil
}

// paymentLabel returns the printed label for a payment type.
func paymentLabel(paymentType string) string {
	if paymentType == "cash" {
		return "Готівка"
	}
	return "Картка"
}
