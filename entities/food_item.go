package entities

import "time"

const (
	UnitKilogram = "Kilogram"
	UnitLiter    = "Liter"
	UnitPack     = "Pack"
	UnitPortion  = "Portion"
	UnitPiece    = "Piece"
)

type FoodItem struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	BusinessID      uint      `gorm:"index;not null" json:"business_id"`
	Name            string    `gorm:"not null" json:"name"`
	Category        string    `json:"category"`
	Unit            string    `json:"unit"` // Kilogram, Liter, Pack, Portion, Piece
	InitialQuantity float64   `gorm:"not null" json:"initial_quantity"`
	ExpiryDate      time.Time `json:"expiry_date"`
	InputDate       time.Time `json:"input_date"`
	ImageURL        string    `json:"image_url,omitempty"`

	Business    *Business     `gorm:"foreignKey:BusinessID"`
	WastedFoods []*WastedFood `gorm:"foreignKey:FoodItemID;constraint:OnDelete:CASCADE"`
	Timestamp
}
