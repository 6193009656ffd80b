// Package store is a small order-management domain used as automapping input.
package store

import (
	"time"
)

// Set is a generic set of comparable values.
type Set[T comparable] map[T]struct{}

// Audit holds timestamps shared by every entity. It is embedded, so its members are stored in
// the table of the embedding entity.
type Audit struct {
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Product is an item available for sale.
// Prices are stored in cents to avoid floating-point rounding.
type Product struct {
	Audit

	ID          int64
	SKU         string `automap:"column=sku_code"`
	Name        string
	Description *string
	PriceCents  int64
	Inventory   int
	Labels      Set[string]
}

// Address is a postal address stored inline with its owner.
type Address struct {
	Street  string
	City    string
	Zip     string
	Country string
}

// Customer places orders.
type Customer struct {
	Audit

	ID       int64
	Email    string
	FullName string
	Shipping Address
	Billing  *Address
	IsActive bool
	Orders   []*Order

	// Rank is computed from order history.
	Rank int `automap:"-"`
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// Order is a purchase made by a customer.
type Order struct {
	Audit

	ID             int64
	Version        int
	Customer       *Customer
	Status         OrderStatus
	PreviousStatus *OrderStatus
	TotalCents     int64
	Lines          []OrderLine
	Notes          []string
	Attributes     map[string]string
	Products       Set[*Product]
	PlacedAt       time.Time
	Reference      string `automap:"readonly"`
}

// OrderLine snapshots a product within an order at the time of purchase.
type OrderLine struct {
	Product   *Product
	Name      string
	Quantity  int
	UnitPrice int64
}
