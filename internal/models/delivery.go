package models

import "time"

// DeliveryStatus tracks a blood delivery from pickup to drop-off.
type DeliveryStatus string

const (
	DeliveryAssigned  DeliveryStatus = "assigned"
	DeliveryPickedUp  DeliveryStatus = "picked-up"
	DeliveryInTransit DeliveryStatus = "in-transit"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryFailed    DeliveryStatus = "failed"
)

// Delivery is the transport leg of a matched request.
type Delivery struct {
	ID                  string         `json:"id"`
	RequestID           string         `json:"requestId"`
	DeliveryPersonnelID string         `json:"deliveryPersonnelId"`
	Status              DeliveryStatus `json:"status"`
	PickupLocation      Location       `json:"pickupLocation"`
	DeliveryLocation    Location       `json:"deliveryLocation"`
	CurrentLocation     *Location      `json:"currentLocation,omitempty"`
	EstimatedArrival    *time.Time     `json:"estimatedArrival,omitempty"`
	ActualArrival       *time.Time     `json:"actualArrival,omitempty"`
	Notes               string         `json:"notes,omitempty"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
}
