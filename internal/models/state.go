package models

import (
	"time"

	"github.com/google/uuid"
)

type Notice struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type CartSummary struct {
	Lines        []CartLine `json:"lines"`
	ItemCount    int        `json:"item_count"`
	Subtotal     float64    `json:"subtotal"`
	SubtotalText string     `json:"subtotal_text"`
}

type AdviceState struct {
	Result  *FarmingAdvice `json:"result,omitempty"`
	Error   string         `json:"error,omitempty"`
	Pending bool           `json:"pending"`
}

// AppSnapshot is the read-only view model handed to the rendering layer.
type AppSnapshot struct {
	View            View        `json:"view"`
	Session         *Session    `json:"session,omitempty"`
	Cart            CartSummary `json:"cart"`
	Notice          *Notice     `json:"notice,omitempty"`
	Advice          AdviceState `json:"advice"`
	FarmerListings  []Product   `json:"farmer_listings,omitempty"`
	AdviceAvailable bool        `json:"advice_available"`
}
