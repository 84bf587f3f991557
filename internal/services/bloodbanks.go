package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/bloodstream/bloodstream-go/internal/api"
	"github.com/bloodstream/bloodstream-go/internal/models"
)

// BloodBanksService reads the blood bank directory.
type BloodBanksService interface {
	List(ctx context.Context, filters models.BloodBankFilters) ([]models.BloodBank, error)
	Nearby(ctx context.Context, lat, lng, radiusKm float64) ([]models.BloodBank, error)
	Get(ctx context.Context, id string) (models.BloodBank, error)
}

type bloodBanksService struct {
	api *api.Client
}

func NewBloodBanksService(client *api.Client) BloodBanksService {
	return &bloodBanksService{api: client}
}

func (s *bloodBanksService) List(ctx context.Context, filters models.BloodBankFilters) ([]models.BloodBank, error) {
	q := url.Values{}
	if filters.City != "" {
		q.Set("city", filters.City)
	}
	if filters.State != "" {
		q.Set("state", filters.State)
	}
	if filters.BloodType != "" {
		q.Set("bloodType", string(filters.BloodType))
	}
	path := "/blood-banks"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var banks []models.BloodBank
	err := s.api.Get(ctx, path, &banks)
	return banks, err
}

// Nearby searches within radiusKm of the given point. A zero radius leaves
// the cutoff to the server.
func (s *bloodBanksService) Nearby(ctx context.Context, lat, lng, radiusKm float64) ([]models.BloodBank, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lng, 'f', -1, 64))
	if radiusKm > 0 {
		q.Set("radius", strconv.FormatFloat(radiusKm, 'f', -1, 64))
	}
	var banks []models.BloodBank
	err := s.api.Get(ctx, "/blood-banks/nearby?"+q.Encode(), &banks)
	return banks, err
}

func (s *bloodBanksService) Get(ctx context.Context, id string) (models.BloodBank, error) {
	var b models.BloodBank
	err := s.api.Get(ctx, "/blood-banks/"+id, &b)
	return b, err
}
