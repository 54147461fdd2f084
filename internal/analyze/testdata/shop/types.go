// Package shop is a fixture for contract derivation tests.
package shop

import "time"

// Product is an item available for sale.
type Product struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	SKU         string    `json:"sku" gorm:"uniqueIndex"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"price_cents"` // Price in the lowest currency unit
	Inventory   int       `json:"inventory_count"`
	Weight      float64   `json:"weight"`
	CreatedAt   time.Time `json:"created_at"`
}

// Customer places orders.
type Customer struct {
	Audit

	ID       int64   `json:"id"`
	Email    string  `json:"email" contract:"pii,format=email,classification=confidential"`
	FullName string  `json:"full_name" contract:"pii"`
	Address  *string `json:"address" contract:"pii"`
	IsActive bool    `json:"is_active"`
	Password string  `json:"-"`
	internal string
}

// Audit carries bookkeeping timestamps.
type Audit struct {
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// Order is a purchase made by a customer.
type Order struct {
	ID         int64       `json:"id"`
	CustomerID int64       `json:"customer_id"`
	Status     OrderStatus `json:"status"`
	Currency   string      `json:"currency" contract:"maxLength=3"`
	Items      []OrderItem `json:"items"`
	Metadata   map[string]string
	Receipt    []byte `json:"receipt,omitempty"`
	OrderedAt  time.Time
}

// OrderItem is a product line within an order.
type OrderItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const StatusPending OrderStatus = "PENDING"
