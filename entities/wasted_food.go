package entities

import "time"

const (
	WasteConditionEdible   = "Edible"
	WasteConditionFeed     = "AnimalFeedCompost"
	WasteConditionDisposed = "Disposed"

	WasteFormSolid  = "Solid"
	WasteFormLiquid = "Liquid"

	WasteStatusAvailable   = "Available"
	WasteStatusDistributed = "Distributed"
)

type WastedFood struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	FoodItemID       uint      `gorm:"index;not null" json:"food_item_id"`
	LeftoverQuantity float64   `gorm:"not null" json:"leftover_quantity"`
	Unit             string    `json:"unit"`
	ExpiryDate       time.Time `json:"expiry_date"`
	InputDate        time.Time `json:"input_date"`
	Condition        string    `json:"condition"` // Edible, AnimalFeedCompost, Disposed
	Form             string    `json:"form"`      // Solid, Liquid
	Status           string    `gorm:"index" json:"status"` // Available, Distributed

	FoodItem      *FoodItem       `gorm:"foreignKey:FoodItemID"`
	Distributions []*Distribution `gorm:"foreignKey:WastedFoodID;constraint:OnDelete:CASCADE"`
	Timestamp
}
