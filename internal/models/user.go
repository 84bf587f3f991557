// Package models defines the domain types exchanged with the Bloodstream
// backend. Field names and JSON tags mirror the API's wire format.
package models

import (
	"time"

	"github.com/bloodstream/bloodstream-go/internal/bloodtype"
)

// Role classifies an account. The set is closed; the UI branches on it.
type Role string

const (
	RoleDonor     Role = "donor"
	RoleRecipient Role = "recipient"
	RoleDelivery  Role = "delivery"
	RoleAdmin     Role = "admin"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleDonor, RoleRecipient, RoleDelivery, RoleAdmin:
		return true
	}
	return false
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Location is a coordinate with optional postal fields.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
	City      string  `json:"city,omitempty"`
	District  string  `json:"district,omitempty"`
	State     string  `json:"state,omitempty"`
	Pincode   string  `json:"pincode,omitempty"`
}

// User is the identity attached to a session. Immutable from the client's
// perspective except through a profile update call.
type User struct {
	ID            string              `json:"id"`
	Email         string              `json:"email"`
	FirstName     string              `json:"firstName"`
	LastName      string              `json:"lastName"`
	Role          Role                `json:"role"`
	PhoneNumber   string              `json:"phoneNumber,omitempty"`
	BloodType     bloodtype.BloodType `json:"bloodType,omitempty"`
	Location      *Location           `json:"location,omitempty"`
	Avatar        string              `json:"avatar,omitempty"`
	IsVerified    bool                `json:"isVerified"`
	DateOfBirth   string              `json:"dateOfBirth,omitempty"`
	Gender        Gender              `json:"gender,omitempty"`
	AadhaarNumber string              `json:"aadharNumber,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// FullName returns "First Last" with missing parts trimmed.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
