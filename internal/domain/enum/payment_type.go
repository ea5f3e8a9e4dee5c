package enum

// PaymentType is the method used to pay for a check
type PaymentType string

const (
	PaymentTypeCash PaymentType = "cash"
	PaymentTypeCard PaymentType = "card"
)

// Valid reports whether the payment type is one of the known values
func (p PaymentType) Valid() bool {
	return p == PaymentTypeCash || p == PaymentTypeCard
}

func (p PaymentType) String() string {
	return string(p)
}
