package models

import (
	"time"

	"github.com/bloodstream/bloodstream-go/internal/bloodtype"
)

// RequestStatus is the lifecycle state of a blood request.
type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestMatched   RequestStatus = "matched"
	RequestInTransit RequestStatus = "in-transit"
	RequestCompleted RequestStatus = "completed"
	RequestCancelled RequestStatus = "cancelled"
)

// Urgency grades how quickly a request must be served.
type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

// Hospital identifies where the blood is needed.
type Hospital struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	ContactNumber string `json:"contactNumber,omitempty"`
}

// BloodRequest is a recipient's ask for blood units.
type BloodRequest struct {
	ID                  string              `json:"id"`
	RecipientID         string              `json:"recipientId"`
	BloodType           bloodtype.BloodType `json:"bloodType"`
	UnitsNeeded         int                 `json:"unitsNeeded"`
	Urgency             Urgency             `json:"urgency"`
	Status              RequestStatus       `json:"status"`
	Hospital            Hospital            `json:"hospital"`
	Location            *Location           `json:"location,omitempty"`
	Notes               string              `json:"notes,omitempty"`
	MatchedDonorID      string              `json:"matchedDonorId,omitempty"`
	DeliveryPersonnelID string              `json:"deliveryPersonnelId,omitempty"`
	CreatedAt           time.Time           `json:"createdAt"`
	UpdatedAt           time.Time           `json:"updatedAt"`
}

// CreateRequestData is the body of POST /requests.
type CreateRequestData struct {
	BloodType   bloodtype.BloodType `json:"bloodType"`
	UnitsNeeded int                 `json:"unitsNeeded"`
	Urgency     Urgency             `json:"urgency"`
	Hospital    Hospital            `json:"hospital"`
	Notes       string              `json:"notes,omitempty"`
}

// RequestFilters narrows GET /requests. Zero values mean "no filter".
type RequestFilters struct {
	Status    RequestStatus
	Urgency   Urgency
	BloodType bloodtype.BloodType
}
