package service

import (
	"fmt"
	"math"

	"github.com/receipthub/receipthub-api/internal/domain/entity"
	"github.com/receipthub/receipthub-api/internal/domain/enum"
	"github.com/receipthub/receipthub-api/pkg/apperror"
)

// CheckItemInput represents a line item of a check being created
type CheckItemInput struct {
	Name     string
	Price    float64
	Quantity int
}

// PaymentInput represents the tendered payment of a check being created
type PaymentInput struct {
	Type   enum.PaymentType
	Amount float64
}

// CheckDraft is the input for building a check
type CheckDraft struct {
	Items   []CheckItemInput
	Payment PaymentInput
}

// BuildCheck computes line totals, the check total and the change due, and
// returns a materialized check ready for persistence. It performs no I/O.
//
// Fails when the item list is empty, when any item has a negative price or a
// non-positive quantity, when the payment type is unknown, or when the
// tendered amount does not cover the total.
func BuildCheck(draft *CheckDraft) (*entity.Check, error) {
	if len(draft.Items) == 0 {
		return nil, apperror.ErrEmptyProducts
	}

	if !draft.Payment.Type.Valid() {
		return nil, apperror.NewBadRequestError("Payment type must be 'cash' or 'card'")
	}
	if draft.Payment.Amount < 0 {
		return nil, apperror.NewBadRequestError("Payment amount cannot be negative")
	}

	var total int64
	items := make([]entity.CheckItem, 0, len(draft.Items))

	for i, item := range draft.Items {
		if item.Name == "" {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Product %d: name is required", i+1))
		}
		if item.Price < 0 {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Product %d: price cannot be negative", i+1))
		}
		if item.Quantity < 1 {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Product %d: quantity must be at least 1", i+1))
		}

		priceCents := toCents(item.Price)
		itemTotal := priceCents * int64(item.Quantity)
		total += itemTotal

		items = append(items, entity.CheckItem{
			Ordinal:  i,
			Name:     item.Name,
			Price:    priceCents,
			Quantity: item.Quantity,
			Total:    itemTotal,
		})
	}

	paymentCents := toCents(draft.Payment.Amount)
	if paymentCents < total {
		return nil, apperror.ErrInsufficientPayment
	}

	return &entity.Check{
		Total:         total,
		PaymentType:   draft.Payment.Type,
		PaymentAmount: paymentCents,
		Rest:          paymentCents - total,
		Products:      items,
	}, nil
}

// toCents converts a decimal amount to integer cents. Amounts are rounded to
// the currency's natural two-decimal precision.
func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
