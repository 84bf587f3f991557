package models

import "time"

// AppointmentStatus is the lifecycle state of a donation appointment.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentNoShow    AppointmentStatus = "no-show"
)

// Appointment is a booked donation slot at a blood bank.
type Appointment struct {
	ID          string            `json:"id"`
	DonorID     string            `json:"donorId"`
	BloodBankID string            `json:"bloodBankId"`
	ScheduledAt time.Time         `json:"scheduledAt"`
	Status      AppointmentStatus `json:"status"`
	Notes       string            `json:"notes,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// CreateAppointmentData is the body of POST /appointments.
type CreateAppointmentData struct {
	BloodBankID string    `json:"bloodBankId"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Notes       string    `json:"notes,omitempty"`
}
