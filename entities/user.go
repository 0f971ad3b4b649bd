package entities

type User struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Email       string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password    string `gorm:"not null" json:"-"`
	PhoneNumber string `json:"phone_number"`

	Business *Business `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Timestamp
}

type Business struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"index;not null" json:"user_id"`
	Name    string `gorm:"not null" json:"name"`
	Address string `json:"address"`

	FoodItems []*FoodItem `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
	Timestamp
}
