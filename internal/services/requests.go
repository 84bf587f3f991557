package services

import (
	"context"
	"net/url"

	"github.com/bloodstream/bloodstream-go/internal/api"
	"github.com/bloodstream/bloodstream-go/internal/models"
)

// RequestsService manages blood requests. Accept/Decline act as the matched
// donor; Match and Escalate are admin operations.
type RequestsService interface {
	Create(ctx context.Context, data models.CreateRequestData) (models.BloodRequest, error)
	List(ctx context.Context, filters models.RequestFilters) ([]models.BloodRequest, error)
	Get(ctx context.Context, id string) (models.BloodRequest, error)
	Accept(ctx context.Context, id string) (models.BloodRequest, error)
	Decline(ctx context.Context, id string) (models.BloodRequest, error)
	Match(ctx context.Context, id string) (models.BloodRequest, error)
	Escalate(ctx context.Context, id string) (models.BloodRequest, error)
}

type requestsService struct {
	api *api.Client
}

func NewRequestsService(client *api.Client) RequestsService {
	return &requestsService{api: client}
}

func (s *requestsService) Create(ctx context.Context, data models.CreateRequestData) (models.BloodRequest, error) {
	var r models.BloodRequest
	err := s.api.Post(ctx, "/requests", data, &r)
	return r, err
}

func (s *requestsService) List(ctx context.Context, filters models.RequestFilters) ([]models.BloodRequest, error) {
	q := url.Values{}
	if filters.Status != "" {
		q.Set("status", string(filters.Status))
	}
	if filters.Urgency != "" {
		q.Set("urgency", string(filters.Urgency))
	}
	if filters.BloodType != "" {
		q.Set("bloodType", string(filters.BloodType))
	}
	path := "/requests"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var rs []models.BloodRequest
	err := s.api.Get(ctx, path, &rs)
	return rs, err
}

func (s *requestsService) Get(ctx context.Context, id string) (models.BloodRequest, error) {
	var r models.BloodRequest
	err := s.api.Get(ctx, "/requests/"+id, &r)
	return r, err
}

func (s *requestsService) Accept(ctx context.Context, id string) (models.BloodRequest, error) {
	var r models.BloodRequest
	err := s.api.Post(ctx, "/requests/"+id+"/accept", nil, &r)
	return r, err
}

func (s *requestsService) Decline(ctx context.Context, id string) (models.BloodRequest, error) {
	var r models.BloodRequest
	err := s.api.Post(ctx, "/requests/"+id+"/decline", nil, &r)
	return r, err
}

func (s *requestsService) Match(ctx context.Context, id string) (models.BloodRequest, error) {
	var r models.BloodRequest
	err := s.api.Post(ctx, "/requests/"+id+"/match", nil, &r)
	return r, err
}

func (s *requestsService) Escalate(ctx context.Context, id string) (models.BloodRequest, error) {
	var r models.BloodRequest
	err := s.api.Post(ctx, "/requests/"+id+"/escalate", nil, &r)
	return r, err
}
