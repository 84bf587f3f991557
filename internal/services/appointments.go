package services

import (
	"context"
	"time"

	"github.com/bloodstream/bloodstream-go/internal/api"
	"github.com/bloodstream/bloodstream-go/internal/models"
)

// AppointmentsService manages donation appointments at blood banks.
type AppointmentsService interface {
	Create(ctx context.Context, data models.CreateAppointmentData) (models.Appointment, error)
	List(ctx context.Context) ([]models.Appointment, error)
	Get(ctx context.Context, id string) (models.Appointment, error)
	Cancel(ctx context.Context, id, reason string) (models.Appointment, error)
	Reschedule(ctx context.Context, id string, scheduledAt time.Time) (models.Appointment, error)
}

type appointmentsService struct {
	api *api.Client
}

func NewAppointmentsService(client *api.Client) AppointmentsService {
	return &appointmentsService{api: client}
}

func (s *appointmentsService) Create(ctx context.Context, data models.CreateAppointmentData) (models.Appointment, error) {
	var a models.Appointment
	err := s.api.Post(ctx, "/appointments", data, &a)
	return a, err
}

func (s *appointmentsService) List(ctx context.Context) ([]models.Appointment, error) {
	var as []models.Appointment
	err := s.api.Get(ctx, "/appointments", &as)
	return as, err
}

func (s *appointmentsService) Get(ctx context.Context, id string) (models.Appointment, error) {
	var a models.Appointment
	err := s.api.Get(ctx, "/appointments/"+id, &a)
	return a, err
}

func (s *appointmentsService) Cancel(ctx context.Context, id, reason string) (models.Appointment, error) {
	var a models.Appointment
	err := s.api.Patch(ctx, "/appointments/"+id+"/cancel", map[string]string{"reason": reason}, &a)
	return a, err
}

func (s *appointmentsService) Reschedule(ctx context.Context, id string, scheduledAt time.Time) (models.Appointment, error) {
	var a models.Appointment
	body := map[string]time.Time{"scheduledAt": scheduledAt}
	err := s.api.Patch(ctx, "/appointments/"+id+"/reschedule", body, &a)
	return a, err
}
