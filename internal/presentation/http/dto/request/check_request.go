package request

import (
	"math"
	"time"

	"github.com/receipthub/receipthub-api/internal/domain/enum"
	"github.com/receipthub/receipthub-api/internal/domain/repository"
	"github.com/receipthub/receipthub-api/pkg/apperror"
	"github.com/receipthub/receipthub-api/pkg/pagination"
	"github.com/receipthub/receipthub-api/pkg/receipt"
)

// ProductRequest is a line item in a check creation request
type ProductRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// PaymentRequest is the payment section of a check creation request
type PaymentRequest struct {
	Type   string  `json:"type" binding:"required"`
	Amount float64 `json:"amount"`
}

// CreateCheckRequest represents a check creation request
type CreateCheckRequest struct {
	Products []ProductRequest `json:"products"`
	Payment  PaymentRequest   `json:"payment" binding:"required"`
}

// ListChecksQuery holds the query parameters of the check list endpoint.
// All filters are optional and combined with AND.
type ListChecksQuery struct {
	CreatedFrom string   `form:"created_from"`
	CreatedTo   string   `form:"created_to"`
	MinTotal    *float64 `form:"min_total"`
	MaxTotal    *float64 `form:"max_total"`
	PaymentType string   `form:"payment_type"`
	Skip        int      `form:"skip,default=0"`
	PerPage     int      `form:"per_page,default=10"`
}

// ToFilterParams converts the query into repository filter parameters.
// Dates accept ISO dates ("2023-01-01") or RFC 3339 timestamps.
func (q *ListChecksQuery) ToFilterParams() (*repository.CheckFilterParams, error) {
	params := &repository.CheckFilterParams{
		Pagination: &pagination.Params{Skip: q.Skip, PerPage: q.PerPage},
	}

	if q.CreatedFrom != "" {
		t, err := parseDate(q.CreatedFrom)
		if err != nil {
			return nil, apperror.NewBadRequestError("created_from must be an ISO date")
		}
		params.CreatedFrom = &t
	}

	if q.CreatedTo != "" {
		t, err := parseDate(q.CreatedTo)
		if err != nil {
			return nil, apperror.NewBadRequestError("created_to must be an ISO date")
		}
		params.CreatedTo = &t
	}

	if q.MinTotal != nil {
		if *q.MinTotal < 0 {
			return nil, apperror.NewBadRequestError("min_total cannot be negative")
		}
		cents := toCents(*q.MinTotal)
		params.MinTotal = &cents
	}

	if q.MaxTotal != nil {
		if *q.MaxTotal < 0 {
			return nil, apperror.NewBadRequestError("max_total cannot be negative")
		}
		cents := toCents(*q.MaxTotal)
		params.MaxTotal = &cents
	}

	if q.PaymentType != "" {
		pt := enum.PaymentType(q.PaymentType)
		if !pt.Valid() {
			return nil, apperror.NewBadRequestError("payment_type must be 'cash' or 'card'")
		}
		params.PaymentType = &pt
	}

	return params, nil
}

// toCents rounds a decimal filter bound to integer cents, the same way the
// calculator rounds amounts on write. Truncation here would shift the bound
// one cent off the stored total for values like 4.35.
func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// CheckTextQuery holds the column width overrides of the text endpoint
type CheckTextQuery struct {
	FOPWidth     int `form:"fop_width,default=10"`
	QtyWidth     int `form:"qty_width,default=6"`
	PriceWidth   int `form:"price_width,default=12"`
	NameWidth    int `form:"name_width,default=20"`
	TotalWidth   int `form:"total_width,default=12"`
	SumWidth     int `form:"sum_width,default=20"`
	PaymentWidth int `form:"payment_width,default=15"`
	DateWidth    int `form:"date_width,default=20"`
}

// ToLayout converts the query into a renderer layout
func (q *CheckTextQuery) ToLayout() receipt.Layout {
	return receipt.Layout{
		FOPWidth:     q.FOPWidth,
		QtyWidth:     q.QtyWidth,
		PriceWidth:   q.PriceWidth,
		NameWidth:    q.NameWidth,
		TotalWidth:   q.TotalWidth,
		SumWidth:     q.SumWidth,
		PaymentWidth: q.PaymentWidth,
		DateWidth:    q.DateWidth,
	}
}
