package entities

type Notification struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Subject string `gorm:"not null" json:"subject"`
	Message string `json:"message"`
	IsRead  bool   `gorm:"index;default:false" json:"is_read"`

	Timestamp
}
