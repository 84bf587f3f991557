package models

import (
	"time"

	"github.com/bloodstream/bloodstream-go/internal/bloodtype"
)

// CardStatus is the verification state of a digital blood card.
type CardStatus string

const (
	CardActive    CardStatus = "active"
	CardExpired   CardStatus = "expired"
	CardPending   CardStatus = "pending"
	CardSuspended CardStatus = "suspended"
)

// HealthInfo is the self-reported medical snapshot on a blood card.
type HealthInfo struct {
	HemoglobinLevel   float64  `json:"hemoglobinLevel,omitempty"`
	WeightKg          float64  `json:"weight,omitempty"`
	BloodPressure     string   `json:"bloodPressure,omitempty"`
	MedicalConditions []string `json:"medicalConditions,omitempty"`
	Allergies         []string `json:"allergies,omitempty"`
	Medications       []string `json:"medications,omitempty"`
	LastCheckupDate   string   `json:"lastCheckupDate,omitempty"`
}

// BloodCard is the digital donor/recipient identity card. The QR payload and
// digital signature are produced and verified server-side; the client treats
// them as opaque strings.
type BloodCard struct {
	ID               string              `json:"id"`
	UserID           string              `json:"userId"`
	FirstName        string              `json:"firstName,omitempty"`
	LastName         string              `json:"lastName,omitempty"`
	Role             Role                `json:"role,omitempty"`
	CardNumber       string              `json:"cardNumber"`
	BloodType        bloodtype.BloodType `json:"bloodType"`
	DateOfBirth      string              `json:"dateOfBirth"`
	Gender           Gender              `json:"gender"`
	PhoneNumber      string              `json:"phoneNumber"`
	Email            string              `json:"email"`
	AadhaarNumber    string              `json:"aadharNumber,omitempty"`
	HealthInfo       *HealthInfo         `json:"healthInfo,omitempty"`
	LastDonationDate string              `json:"lastDonationDate,omitempty"`
	Status           CardStatus          `json:"status"`
	IssueDate        time.Time           `json:"issueDate"`
	ExpiryDate       time.Time           `json:"expiryDate"`
	QRCode           string              `json:"qrCode"`
	DigitalSignature string              `json:"digitalSignature"`
	VerifiedBy       string              `json:"verifiedBy,omitempty"`
	VerifiedAt       *time.Time          `json:"verifiedAt,omitempty"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

// CreateBloodCardData is the body of POST /blood-cards.
type CreateBloodCardData struct {
	BloodType     bloodtype.BloodType `json:"bloodType"`
	DateOfBirth   string              `json:"dateOfBirth"`
	Gender        Gender              `json:"gender"`
	PhoneNumber   string              `json:"phoneNumber"`
	AadhaarNumber string              `json:"aadharNumber,omitempty"`
	HealthInfo    *HealthInfo         `json:"healthInfo,omitempty"`
}
