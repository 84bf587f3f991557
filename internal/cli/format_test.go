package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bloodstream/bloodstream-go/internal/bloodtype"
	"github.com/bloodstream/bloodstream-go/internal/models"
)

func TestFormatRequest(t *testing.T) {
	s := formatRequest(models.BloodRequest{
		ID:          "r1",
		BloodType:   bloodtype.ONegative,
		UnitsNeeded: 2,
		Urgency:     models.UrgencyCritical,
		Status:      models.RequestPending,
		Hospital:    models.Hospital{Name: "City Hospital"},
	})
	assert.Contains(t, s, "r1")
	assert.Contains(t, s, "O-")
	assert.Contains(t, s, "x2")
	assert.Contains(t, s, "critical")
	assert.Contains(t, s, "City Hospital")
}

func TestFormatCardMasksAadhaar(t *testing.T) {
	s := formatCard(models.BloodCard{
		CardNumber:    "BC-0001",
		BloodType:     bloodtype.APositive,
		Status:        models.CardActive,
		FirstName:     "Asha",
		LastName:      "Rao",
		DateOfBirth:   "12/03/1994",
		Gender:        models.GenderFemale,
		AadhaarNumber: "123456789012",
		IssueDate:     time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		ExpiryDate:    time.Date(2028, 1, 5, 0, 0, 0, 0, time.UTC),
	})
	assert.Contains(t, s, "XXXX-XXXX-9012")
	assert.NotContains(t, s, "123456789012")
	assert.Contains(t, s, "05/01/2026")
	assert.Contains(t, s, "05/01/2028")
}

func TestFormatBankShowsDistanceAndStock(t *testing.T) {
	s := formatBank(models.BloodBank{
		ID:       "b1",
		Name:     "Red Cross Bank",
		Location: models.Location{City: "Bengaluru"},
		Inventory: []models.InventoryItem{
			{BloodType: bloodtype.OPositive, UnitsAvailable: 4},
			{BloodType: bloodtype.ABNegative, UnitsAvailable: 0},
		},
		DistanceKm: 2.35,
	})
	assert.Contains(t, s, "Red Cross Bank")
	assert.Contains(t, s, "2.4 km")
	assert.Contains(t, s, "O+:4")
	assert.NotContains(t, s, "AB-:0")
}

func TestFormatNotificationMarksUnread(t *testing.T) {
	unread := formatNotification(models.Notification{
		ID: "n1", Type: models.NotificationMatch, Priority: models.PriorityHigh,
		Title: "Match", Message: "Donor found",
	})
	assert.True(t, unread[0] == '*')

	read := formatNotification(models.Notification{ID: "n2", IsRead: true})
	assert.True(t, read[0] == ' ')
}

func TestFormatUserMasksAadhaar(t *testing.T) {
	s := formatUser(models.User{
		FirstName: "Asha", LastName: "Rao", Email: "asha@example.in",
		Role: models.RoleDonor, BloodType: bloodtype.BNegative,
		AadhaarNumber: "999988887777",
	})
	assert.Contains(t, s, "Asha Rao")
	assert.Contains(t, s, "XXXX-XXXX-7777")
	assert.NotContains(t, s, "999988887777")
}
