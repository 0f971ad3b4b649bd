package entities

import "time"

const (
	DistributionStatusPacking  = "Packing"
	DistributionStatusEnRoute  = "EnRoute"
	DistributionStatusReceived = "Received"
)

type Distribution struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	WastedFoodID uint      `gorm:"index;not null" json:"wasted_food_id"`
	RecipientID  uint      `gorm:"index;not null" json:"recipient_id"`
	Date         time.Time `json:"date"`
	Notes        string    `json:"notes,omitempty"`
	Status       string    `json:"status"` // Packing, EnRoute, Received

	WastedFood *WastedFood `gorm:"foreignKey:WastedFoodID"`
	Recipient  *Recipient  `gorm:"foreignKey:RecipientID"`
	Timestamp
}
