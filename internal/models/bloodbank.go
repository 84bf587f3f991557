package models

import (
	"time"

	"github.com/bloodstream/bloodstream-go/internal/bloodtype"
)

// InventoryItem is the stock of one blood type at a bank.
type InventoryItem struct {
	BloodType      bloodtype.BloodType `json:"bloodType"`
	UnitsAvailable int                 `json:"unitsAvailable"`
	LastUpdated    time.Time           `json:"lastUpdated"`
}

// BloodBank is a directory entry with current inventory.
type BloodBank struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Location       Location        `json:"location"`
	PhoneNumber    string          `json:"phoneNumber"`
	Email          string          `json:"email,omitempty"`
	OperatingHours string          `json:"operatingHours,omitempty"`
	Inventory      []InventoryItem `json:"inventory"`
	// DistanceKm is populated only by the nearby search.
	DistanceKm float64 `json:"distance,omitempty"`
}

// BloodBankFilters narrows GET /blood-banks. Zero values mean "no filter".
type BloodBankFilters struct {
	City      string
	State     string
	BloodType bloodtype.BloodType
}
