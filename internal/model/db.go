package model

import "time"

// Canonical sale statuses. Every Mercado Pago status token is normalized to
// one of these before it is persisted.
const (
	StatusPaid      = "paid"
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
)

type Present struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Stock       int       `gorm:"not null;default:0" json:"stock"`
	ImageURL    string    `gorm:"size:512" json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Order struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PresentID     uint      `gorm:"index;not null" json:"presentId"`
	CustomerName  string    `gorm:"size:255;not null" json:"customerName"`
	CustomerEmail string    `gorm:"size:255" json:"customerEmail"`
	Status        string    `gorm:"size:32;index;not null" json:"status"` // pending, paid, or provider status pass-through
	PaymentID     string    `gorm:"size:128;index" json:"paymentId"`      // preference id from the provider
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	Present *Present `gorm:"foreignKey:PresentID" json:"present,omitempty"`
}

type Cart struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CustomerName  string    `gorm:"size:255;not null" json:"customerName"`
	CustomerEmail string    `gorm:"size:255" json:"customerEmail"`
	Status        string    `gorm:"size:32;index;not null" json:"status"`
	PaymentID     string    `gorm:"size:128;index" json:"paymentId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	Items []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"`
}

type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CartID    uint      `gorm:"index;not null" json:"cartId"`
	PresentID uint      `gorm:"index;not null" json:"presentId"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	Price     float64   `gorm:"not null" json:"price"` // unit price snapshot at checkout time
	CreatedAt time.Time `json:"createdAt"`

	Present *Present `gorm:"foreignKey:PresentID" json:"present,omitempty"`
}

// Sale is the durable ledger: one row per observed provider transaction,
// keyed by the provider's payment id.
type Sale struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PresentID     uint      `gorm:"index;not null" json:"presentId"`
	CustomerName  string    `gorm:"size:255" json:"customerName"`
	CustomerEmail string    `gorm:"size:255" json:"customerEmail"`
	Amount        float64   `gorm:"not null;default:0" json:"amount"`
	Quantity      int       `gorm:"not null;default:1" json:"quantity"`
	PaymentMethod string    `gorm:"size:64" json:"paymentMethod"`
	PaymentID     string    `gorm:"size:128;index;not null" json:"paymentId"`
	Status        string    `gorm:"size:32;index;not null" json:"status"`
	Notes         string    `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Config is a singleton row holding provider credentials and site settings,
// editable from the admin panel.
type Config struct {
	ID                         uint      `gorm:"primaryKey" json:"id"`
	SiteTitle                  string    `gorm:"size:255" json:"siteTitle"`
	MercadoPagoAccessToken     string    `gorm:"size:512" json:"mercadoPagoAccessToken"`
	MercadoPagoPublicKey       string    `gorm:"size:512" json:"mercadoPagoPublicKey"`
	MercadoPagoWebhookURL      string    `gorm:"size:512" json:"mercadoPagoWebhookUrl"`
	MercadoPagoNotificationURL string    `gorm:"size:512" json:"mercadoPagoNotificationUrl"`
	CreatedAt                  time.Time `json:"createdAt"`
	UpdatedAt                  time.Time `json:"updatedAt"`
}

type Content struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Section   string    `gorm:"size:64;uniqueIndex;not null" json:"section"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
