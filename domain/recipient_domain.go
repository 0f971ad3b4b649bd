package domain

import "errors"

var (
	MessageSuccessGetRecipients = "recipients retrieved successfully"
	MessageFailedGetRecipients  = "failed to retrieve recipients"

	ErrRecipientConflict = errors.New("recipient already exists")
)

type RecipientResponse struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address,omitempty"`
	Contact string  `json:"contact,omitempty"`
	Type    string  `json:"type"`
	Score   float64 `json:"score,omitempty"`
}
