package models

import "github.com/bloodstream/bloodstream-go/internal/bloodtype"

// LoginCredentials is the body of POST /auth/login.
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterData is the body of POST /auth/register.
type RegisterData struct {
	Email       string              `json:"email"`
	Password    string              `json:"password"`
	FirstName   string              `json:"firstName"`
	LastName    string              `json:"lastName"`
	Role        Role                `json:"role"`
	PhoneNumber string              `json:"phoneNumber,omitempty"`
	BloodType   bloodtype.BloodType `json:"bloodType,omitempty"`
}

// OTPVerification is the body of POST /auth/verify-otp.
type OTPVerification struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// AuthResponse is returned by login, register, verify-otp, and refresh.
type AuthResponse struct {
	User         User   `json:"user"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// MessageResponse carries a human-readable acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}
