package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

type Transaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username    string    `gorm:"index;not null" json:"username"`
	FarmerID    uuid.UUID `gorm:"type:uuid;index" json:"farmerId"`
	Type        string    `gorm:"size:16;not null" json:"type"` // income, expense
	Category    string    `json:"category"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Date        time.Time `gorm:"index" json:"date"`
	Description string    `json:"description"`

	Timestamp
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Date.IsZero() {
		t.Date = time.Now()
	}
	return nil
}
