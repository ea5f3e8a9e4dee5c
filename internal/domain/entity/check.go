package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/receipthub/receipthub-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Check represents a recorded purchase receipt. Checks are append-only:
// never mutated and never deleted after creation.
type Check struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt     time.Time        `gorm:"not null" json:"created_at"`
	Total         int64            `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	PaymentType   enum.PaymentType `gorm:"size:50;not null" json:"-"`
	PaymentAmount int64            `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Rest          int64            `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON

	// ReceiptURL points to the text rendition; only set on detail responses
	ReceiptURL string `gorm:"-" json:"receipt_url,omitempty"`

	// Relationships
	User     User        `gorm:"foreignKey:UserID" json:"-"`
	Products []CheckItem `gorm:"foreignKey:CheckID" json:"products"`
}

// Payment is the embedded payment section of a check in API responses
type Payment struct {
	Type   enum.PaymentType `json:"type"`
	Amount float64          `json:"amount"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (c Check) MarshalJSON() ([]byte, error) {
	type Alias Check
	return json.Marshal(&struct {
		Alias
		Total   float64 `json:"total"`
		Payment Payment `json:"payment"`
		Rest    float64 `json:"rest"`
	}{
		Alias: Alias(c),
		Total: float64(c.Total) / 100,
		Payment: Payment{
			Type:   c.PaymentType,
			Amount: float64(c.PaymentAmount) / 100,
		},
		Rest: float64(c.Rest) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new check
func (c *Check) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Check model
func (Check) TableName() string {
	return "checks"
}

// GetTotalDecimal returns the total as a decimal
func (c *Check) GetTotalDecimal() float64 {
	return float64(c.Total) / 100
}

// GetRestDecimal returns the change due as a decimal
func (c *Check) GetRestDecimal() float64 {
	return float64(c.Rest) / 100
}

// CheckItem represents a line item in a check. Items belong to exactly one
// check and are deleted with it.
type CheckItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	CheckID  uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Ordinal  int       `gorm:"not null" json:"-"` // position within the check, preserves submission order
	Name     string    `gorm:"size:255;not null" json:"name"`
	Price    int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Quantity int       `gorm:"not null" json:"quantity"`
	Total    int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON

	// Relationships
	Check Check `gorm:"foreignKey:CheckID;constraint:OnDelete:CASCADE" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (ci CheckItem) MarshalJSON() ([]byte, error) {
	type Alias CheckItem
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
		Total float64 `json:"total"`
	}{
		Alias: Alias(ci),
		Price: float64(ci.Price) / 100,
		Total: float64(ci.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new check item
func (ci *CheckItem) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == uuid.Nil {
		ci.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CheckItem model
func (CheckItem) TableName() string {
	return "check_items"
}
