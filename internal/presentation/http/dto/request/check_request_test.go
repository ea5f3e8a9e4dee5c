package request

import (
	"testing"
)

func TestToFilterParamsTotalBoundsRoundToCents(t *testing.T) {
	// These decimals have no exact float64 representation; a truncating
	// conversion lands one cent below the stored total.
	tests := []struct {
		amount float64
		cents  int64
	}{
		{4.35, 435},
		{1.13, 113},
		{2.55, 255},
		{20, 2000},
		{0.01, 1},
	}

	for _, tt := range tests {
		q := &ListChecksQuery{MinTotal: &tt.amount, MaxTotal: &tt.amount, PerPage: 10}
		params, err := q.ToFilterParams()
		if err != nil {
			t.Fatalf("ToFilterParams(%v) unexpected error: %v", tt.amount, err)
		}
		if *params.MinTotal != tt.cents {
			t.Errorf("min_total %v = %d cents, want %d", tt.amount, *params.MinTotal, tt.cents)
		}
		if *params.MaxTotal != tt.cents {
			t.Errorf("max_total %v = %d cents, want %d", tt.amount, *params.MaxTotal, tt.cents)
		}
	}
}

func TestToFilterParamsRejections(t *testing.T) {
	negative := -1.0
	tests := []struct {
		name  string
		query ListChecksQuery
	}{
		{"negative min_total", ListChecksQuery{MinTotal: &negative}},
		{"negative max_total", ListChecksQuery{MaxTotal: &negative}},
		{"bad created_from", ListChecksQuery{CreatedFrom: "yesterday"}},
		{"bad payment_type", ListChecksQuery{PaymentType: "cheque"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.query.ToFilterParams(); err == nil {
				t.Error("ToFilterParams() must reject the query")
			}
		})
	}
}

func TestToFilterParamsDates(t *testing.T) {
	q := &ListChecksQuery{CreatedFrom: "2023-01-02", CreatedTo: "2023-01-02T13:45:00Z", PerPage: 10}
	params, err := q.ToFilterParams()
	if err != nil {
		t.Fatalf("ToFilterParams() unexpected error: %v", err)
	}
	if params.CreatedFrom == nil || params.CreatedFrom.Day() != 2 {
		t.Errorf("created_from = %v", params.CreatedFrom)
	}
	if params.CreatedTo == nil || params.CreatedTo.Hour() != 13 {
		t.Errorf("created_to = %v", params.CreatedTo)
	}
}
