// Package domain holds the client-side copies of the entities the driver
// works with. All of them are created and transitioned server-side; the
// client only observes, claims and advances them.
package domain

import "time"

// OrderStatus represents the lifecycle status of an order.
type OrderStatus string

// List of possible order statuses
const (
	OrderPending   OrderStatus = "PENDING"
	OrderAccepted  OrderStatus = "ACCEPTED"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderShipped   OrderStatus = "SHIPPED"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderReturned  OrderStatus = "RETURNED"
	OrderCancelled OrderStatus = "CANCELLED"
)

var allowedOrderStatuses = [...]OrderStatus{
	OrderPending, OrderAccepted, OrderConfirmed, OrderShipped,
	OrderDelivered, OrderReturned, OrderCancelled,
}

// Valid checks if the OrderStatus is valid.
func (s OrderStatus) Valid() bool {
	for _, v := range allowedOrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Rank orders statuses along the business lifecycle. A pushed copy whose
// status ranks below the local one is a stale duplicate and must not be
// applied. Terminal outcomes share the top ranks so they always apply.
func (s OrderStatus) Rank() int {
	switch s {
	case OrderPending:
		return 0
	case OrderConfirmed:
		return 1
	case OrderAccepted:
		return 2
	case OrderShipped:
		return 3
	case OrderDelivered, OrderReturned:
		return 4
	case OrderCancelled:
		return 5
	default:
		return -1
	}
}

// DeliveryType distinguishes express and standard deliveries.
type DeliveryType string

// List of possible delivery types
const (
	DeliveryExpress  DeliveryType = "EXPRESS"
	DeliveryStandard DeliveryType = "STANDARD"
)

// PaymentMethod is how the recipient pays.
type PaymentMethod string

// List of possible payment methods
const (
	PaymentCash   PaymentMethod = "CASH"
	PaymentPoints PaymentMethod = "POINTS"
)

// Address is a delivery address; coordinates are optional.
type Address struct {
	ID          int64    `json:"id,omitempty"`
	Street      string   `json:"rue"`
	PostalCode  string   `json:"codePostal"`
	Delegation  string   `json:"delegation"`
	Governorate string   `json:"gouvernerat"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// HasCoordinates reports whether both latitude and longitude are present.
func (a Address) HasCoordinates() bool {
	return a.Latitude != nil && a.Longitude != nil
}

// LineItem is a product reference within an order.
type LineItem struct {
	ID        int64 `json:"id,omitempty"`
	ProductID int64 `json:"produitId"`
	Quantity  int   `json:"quantite"`
}

// Order is a single shop-sourced delivery job ("commande"). LivreurID zero
// means unassigned.
type Order struct {
	ID                   int64         `json:"id"`
	ClientID             int64         `json:"clientId,omitempty"`
	LastName             string        `json:"nom,omitempty"`
	FirstName            string        `json:"prenom,omitempty"`
	Address              Address       `json:"adresse"`
	Phone                string        `json:"numTel,omitempty"`
	Items                []LineItem    `json:"produits"`
	TotalWithoutDelivery float64       `json:"prixTotalSansLivraison"`
	TotalWithDelivery    float64       `json:"prixTotalAvecLivraison"`
	Type                 DeliveryType  `json:"type"`
	PaymentMethod        PaymentMethod `json:"methodePaiement,omitempty"`
	Status               OrderStatus   `json:"statut"`
	Date                 time.Time     `json:"date"`
	LivreurID            int64         `json:"livreurId,omitempty"`
}

// DeliveryFee derives the cash the driver will carry for this order.
func (o Order) DeliveryFee() float64 {
	fee := o.TotalWithDelivery - o.TotalWithoutDelivery
	if fee < 0 {
		return 0
	}
	return fee
}

// Assigned reports whether any driver owns the order.
func (o Order) Assigned() bool { return o.LivreurID != 0 }

// Claimable reports whether the order may be claimed by any driver.
func (o Order) Claimable() bool {
	return o.Status == OrderConfirmed && !o.Assigned()
}
