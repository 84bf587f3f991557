package services

import (
	"context"

	"github.com/bloodstream/bloodstream-go/internal/api"
	"github.com/bloodstream/bloodstream-go/internal/models"
)

// BloodCardsService manages digital blood cards. VerifyByNumber is the
// scanner-side lookup of someone else's card; UpdateStatus is admin only.
type BloodCardsService interface {
	Mine(ctx context.Context) (models.BloodCard, error)
	Get(ctx context.Context, id string) (models.BloodCard, error)
	Create(ctx context.Context, data models.CreateBloodCardData) (models.BloodCard, error)
	UpdateHealthInfo(ctx context.Context, info models.HealthInfo) (models.BloodCard, error)
	RequestRevalidation(ctx context.Context) (models.MessageResponse, error)
	VerifyByNumber(ctx context.Context, cardNumber string) (models.BloodCard, error)
	UpdateStatus(ctx context.Context, id string, status models.CardStatus) (models.BloodCard, error)
}

type bloodCardsService struct {
	api *api.Client
}

func NewBloodCardsService(client *api.Client) BloodCardsService {
	return &bloodCardsService{api: client}
}

func (s *bloodCardsService) Mine(ctx context.Context) (models.BloodCard, error) {
	var c models.BloodCard
	err := s.api.Get(ctx, "/blood-cards/me", &c)
	return c, err
}

func (s *bloodCardsService) Get(ctx context.Context, id string) (models.BloodCard, error) {
	var c models.BloodCard
	err := s.api.Get(ctx, "/blood-cards/"+id, &c)
	return c, err
}

func (s *bloodCardsService) Create(ctx context.Context, data models.CreateBloodCardData) (models.BloodCard, error) {
	var c models.BloodCard
	err := s.api.Post(ctx, "/blood-cards", data, &c)
	return c, err
}

func (s *bloodCardsService) UpdateHealthInfo(ctx context.Context, info models.HealthInfo) (models.BloodCard, error) {
	var c models.BloodCard
	body := map[string]models.HealthInfo{"healthInfo": info}
	err := s.api.Patch(ctx, "/blood-cards/me/health", body, &c)
	return c, err
}

func (s *bloodCardsService) RequestRevalidation(ctx context.Context) (models.MessageResponse, error) {
	var m models.MessageResponse
	err := s.api.Post(ctx, "/blood-cards/me/revalidate", nil, &m)
	return m, err
}

func (s *bloodCardsService) VerifyByNumber(ctx context.Context, cardNumber string) (models.BloodCard, error) {
	var c models.BloodCard
	body := map[string]string{"cardNumber": cardNumber}
	err := s.api.Post(ctx, "/blood-cards/verify", body, &c)
	return c, err
}

func (s *bloodCardsService) UpdateStatus(ctx context.Context, id string, status models.CardStatus) (models.BloodCard, error) {
	var c models.BloodCard
	body := map[string]models.CardStatus{"status": status}
	err := s.api.Patch(ctx, "/blood-cards/"+id+"/status", body, &c)
	return c, err
}
