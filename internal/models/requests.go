package models

type NavigateRequest struct {
	View string `json:"view"`
}

type LoginRequest struct {
	Role string `json:"role"`
}

type AddToCartRequest struct {
	ProductID int `json:"product_id"`
}

// Quantity is a pointer so an omitted field is not read as a removal.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

type AdviceRequest struct {
	Query string `json:"query"`
}
