package dto

type CreatePreferenceRequest struct {
	PresentID     uint   `json:"presentId" validate:"required"`
	CustomerName  string `json:"customerName" validate:"required"`
	CustomerEmail string `json:"customerEmail" validate:"omitempty,email"`
}

type CartItemRequest struct {
	PresentID uint `json:"presentId" validate:"required"`
	Quantity  int  `json:"quantity" validate:"omitempty,min=1"`
}

type CreateCartPreferenceRequest struct {
	Items         []CartItemRequest `json:"items" validate:"required,min=1,dive"`
	CustomerName  string            `json:"customerName" validate:"required"`
	CustomerEmail string            `json:"customerEmail" validate:"omitempty,email"`
}

type PreferenceResponse struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
	OrderID          uint   `json:"orderId,omitempty"`
	CartID           uint   `json:"cartId,omitempty"`
}

type SyncResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type UpdateContentRequest struct {
	Content string `json:"content" validate:"required"`
}

type PresentRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	ImageURL    string  `json:"imageUrl"`
}
