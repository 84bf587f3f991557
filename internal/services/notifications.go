package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/bloodstream/bloodstream-go/internal/api"
	"github.com/bloodstream/bloodstream-go/internal/models"
)

// NotificationsService reads and mutates the server-side notification
// history. It does not touch the local notify.Store; the CLI keeps the two
// in sync.
type NotificationsService interface {
	List(ctx context.Context, page, limit int, unreadOnly bool) (models.NotificationPage, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id string) error
}

type notificationsService struct {
	api *api.Client
}

func NewNotificationsService(client *api.Client) NotificationsService {
	return &notificationsService{api: client}
}

func (s *notificationsService) List(ctx context.Context, page, limit int, unreadOnly bool) (models.NotificationPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if unreadOnly {
		q.Set("unreadOnly", "true")
	}
	var p models.NotificationPage
	err := s.api.Get(ctx, "/notifications?"+q.Encode(), &p)
	return p, err
}

func (s *notificationsService) UnreadCount(ctx context.Context) (int, error) {
	var c models.UnreadCount
	err := s.api.Get(ctx, "/notifications/unread-count", &c)
	return c.Count, err
}

func (s *notificationsService) MarkRead(ctx context.Context, id string) error {
	return s.api.Patch(ctx, "/notifications/"+id+"/read", nil, nil)
}

func (s *notificationsService) MarkAllRead(ctx context.Context) error {
	return s.api.Patch(ctx, "/notifications/mark-all-read", nil, nil)
}

func (s *notificationsService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/notifications/"+id, nil)
}
