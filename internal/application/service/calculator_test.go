package service

import (
	"errors"
	"testing"

	"github.com/receipthub/receipthub-api/internal/domain/enum"
	"github.com/receipthub/receipthub-api/pkg/apperror"
)

func TestBuildCheck(t *testing.T) {
	tests := []struct {
		name      string
		draft     CheckDraft
		wantErr   error
		wantTotal int64 // cents
		wantRest  int64 // cents
	}{
		{
			name: "single item with change",
			draft: CheckDraft{
				Items:   []CheckItemInput{{Name: "Хліб", Price: 20, Quantity: 1}},
				Payment: PaymentInput{Type: enum.PaymentTypeCash, Amount: 50},
			},
			wantTotal: 2000,
			wantRest:  3000,
		},
		{
			name: "multiple items sum per line",
			draft: CheckDraft{
				Items: []CheckItemInput{
					{Name: "Молоко", Price: 35.50, Quantity: 2},
					{Name: "Сир", Price: 120.25, Quantity: 3},
				},
				Payment: PaymentInput{Type: enum.PaymentTypeCard, Amount: 500},
			},
			wantTotal: 43175, // 2*3550 + 3*12025
			wantRest:  6825,
		},
		{
			name: "exact payment leaves zero rest",
			draft: CheckDraft{
				Items:   []CheckItemInput{{Name: "Вода", Price: 10, Quantity: 3}},
				Payment: PaymentInput{Type: enum.PaymentTypeCash, Amount: 30},
			},
			wantTotal: 3000,
			wantRest:  0,
		},
		{
			name: "free item is allowed",
			draft: CheckDraft{
				Items:   []CheckItemInput{{Name: "Пакет", Price: 0, Quantity: 1}},
				Payment: PaymentInput{Type: enum.PaymentTypeCash, Amount: 0},
			},
			wantTotal: 0,
			wantRest:  0,
		},
		{
			name: "underpayment",
			draft: CheckDraft{
				Items:   []CheckItemInput{{Name: "Хліб", Price: 20, Quantity: 1}},
				Payment: PaymentInput{Type: enum.PaymentTypeCash, Amount: 10},
			},
			wantErr: apperror.ErrInsufficientPayment,
		},
		{
			name: "empty item list",
			draft: CheckDraft{
				Payment: PaymentInput{Type: enum.PaymentTypeCash, Amount: 100},
			},
			wantErr: apperror.ErrEmptyProducts,
		},
		{
			name: "negative price",
			draft: CheckDraft{
				Items:   []CheckItemInput{{Name: "Хліб", Price: -1, Quantity: 1}},
				Payment: PaymentInput{Type: enum.PaymentTypeCash, Amount: 100},
			},
			wantErr: apperror.ErrBadRequest,
		},
		{
			name: "zero quantity",
			draft: CheckDraft{
				Items:   []CheckItemInput{{Name: "Хліб", Price: 20, Quantity: 0}},
				Payment: PaymentInput{Type: enum.PaymentTypeCash, Amount: 100},
			},
			wantErr: apperror.ErrBadRequest,
		},
		{
			name: "unknown payment type",
			draft: CheckDraft{
				Items:   []CheckItemInput{{Name: "Хліб", Price: 20, Quantity: 1}},
				Payment: PaymentInput{Type: "check", Amount: 100},
			},
			wantErr: apperror.ErrBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check, err := BuildCheck(&tt.draft)

			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("BuildCheck() = %+v, want error", check)
				}
				wantCode := apperror.GetAppError(tt.wantErr).Code
				if got := apperror.GetAppError(err).Code; got != wantCode {
					t.Errorf("BuildCheck() error code = %d, want %d (%v)", got, wantCode, err)
				}
				// Sentinel errors must round-trip through errors.Is
				if tt.wantErr == apperror.ErrInsufficientPayment && !errors.Is(err, apperror.ErrInsufficientPayment) {
					t.Errorf("BuildCheck() error = %v, want ErrInsufficientPayment", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("BuildCheck() unexpected error: %v", err)
			}
			if check.Total != tt.wantTotal {
				t.Errorf("Total = %d, want %d", check.Total, tt.wantTotal)
			}
			if check.Rest != tt.wantRest {
				t.Errorf("Rest = %d, want %d", check.Rest, tt.wantRest)
			}
			if check.Rest < 0 {
				t.Errorf("Rest = %d, must never be negative", check.Rest)
			}
			if len(check.Products) != len(tt.draft.Items) {
				t.Fatalf("Products = %d items, want %d", len(check.Products), len(tt.draft.Items))
			}
			var sum int64
			for i, item := range check.Products {
				if want := item.Price * int64(item.Quantity); item.Total != want {
					t.Errorf("item %d total = %d, want %d", i, item.Total, want)
				}
				sum += item.Total
			}
			if sum != check.Total {
				t.Errorf("sum of line totals = %d, check total = %d", sum, check.Total)
			}
		})
	}
}

func TestToCentsRounding(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{0.1, 10},
		{0.29, 29},
		{19.99, 1999},
		{1234.56, 123456},
	}
	for _, tt := range tests {
		if got := toCents(tt.amount); got != tt.want {
			t.Errorf("toCents(%v) = %d, want %d", tt.amount, got, tt.want)
		}
	}
}

func TestBuildCheckOrdinalsFollowSubmissionOrder(t *testing.T) {
	draft := &CheckDraft{
		Items: []CheckItemInput{
			{Name: "Хліб", Price: 20, Quantity: 1},
			{Name: "Молоко", Price: 35.5, Quantity: 2},
			{Name: "Сир", Price: 120, Quantity: 1},
		},
		Payment: PaymentInput{Type: enum.PaymentTypeCash, Amount: 500},
	}

	check, err := BuildCheck(draft)
	if err != nil {
		t.Fatalf("BuildCheck() unexpected error: %v", err)
	}

	for i, item := range check.Products {
		if item.Ordinal != i {
			t.Errorf("item %q ordinal = %d, want %d", item.Name, item.Ordinal, i)
		}
		if item.Name != draft.Items[i].Name {
			t.Errorf("item %d = %q, want %q", i, item.Name, draft.Items[i].Name)
		}
	}
}
