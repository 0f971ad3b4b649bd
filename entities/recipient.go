package entities

const (
	RecipientTypeSocial           = "Social"
	RecipientTypeLivestockCompost = "LivestockCompost"
)

type Recipient struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"not null" json:"name"`
	Address string  `json:"address"`
	Contact string  `json:"contact"`
	Type    string  `json:"type"` // Social, LivestockCompost
	Score   float64 `json:"score,omitempty"`

	Distributions []*Distribution `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE"`
	Timestamp
}
