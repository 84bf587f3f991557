package models

import (
	"encoding/json"
	"time"
)

// NotificationType groups notifications by origin.
type NotificationType string

const (
	NotificationMatch       NotificationType = "match"
	NotificationAppointment NotificationType = "appointment"
	NotificationDelivery    NotificationType = "delivery"
	NotificationSystem      NotificationType = "system"
	NotificationAlert       NotificationType = "alert"
)

// Priority ranks how prominently a notification is surfaced.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Notification is a persisted user-facing message. It arrives either via the
// REST list endpoint (history) or pushed over the realtime channel.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId,omitempty"`
	Type      NotificationType `json:"type"`
	Priority  Priority         `json:"priority"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Data      json.RawMessage  `json:"data,omitempty"`
	IsRead    bool             `json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`
}

// NotificationPage is the paged response of GET /notifications.
type NotificationPage struct {
	Notifications []Notification `json:"notifications"`
	Total         int            `json:"total"`
	Page          int            `json:"page"`
	Limit         int            `json:"limit"`
}

// UnreadCount is the response of GET /notifications/unread-count.
type UnreadCount struct {
	Count int `json:"count"`
}
