package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidRole(t *testing.T) {
	for _, r := range []Role{RoleDonor, RoleRecipient, RoleDelivery, RoleAdmin} {
		assert.True(t, ValidRole(r), string(r))
	}
	assert.False(t, ValidRole("superuser"))
	assert.False(t, ValidRole(""))
}

func TestUser_FullName(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{"both parts", User{FirstName: "Asha", LastName: "Iyer"}, "Asha Iyer"},
		{"first only", User{FirstName: "Asha"}, "Asha"},
		{"last only", User{LastName: "Iyer"}, "Iyer"},
		{"empty", User{}, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.user.FullName())
		})
	}
}

func TestNotification_WireFormat(t *testing.T) {
	raw := `{
		"id": "n1",
		"type": "match",
		"priority": "urgent",
		"title": "Match Found!",
		"message": "A donor has been matched to your request",
		"data": {"requestId": "r1"},
		"isRead": false,
		"createdAt": "2025-06-01T10:00:00Z"
	}`

	var n Notification
	require.NoError(t, json.Unmarshal([]byte(raw), &n))

	assert.Equal(t, "n1", n.ID)
	assert.Equal(t, NotificationMatch, n.Type)
	assert.Equal(t, PriorityUrgent, n.Priority)
	assert.False(t, n.IsRead)
	assert.JSONEq(t, `{"requestId":"r1"}`, string(n.Data))
}
