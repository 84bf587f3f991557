package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/bloodstream/bloodstream-go/internal/india"
	"github.com/bloodstream/bloodstream-go/internal/models"
)

func formatDateTime(t time.Time) string {
	return india.FormatDate(t) + " " + t.Format("15:04")
}

func formatUser(u models.User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s <%s>, %s", u.FullName(), u.Email, u.Role)
	if u.BloodType != "" {
		fmt.Fprintf(&b, ", blood type %s", u.BloodType)
	}
	if u.PhoneNumber != "" {
		fmt.Fprintf(&b, ", %s", u.PhoneNumber)
	}
	if u.AadhaarNumber != "" {
		fmt.Fprintf(&b, ", Aadhaar %s", india.MaskAadhaar(u.AadhaarNumber))
	}
	return b.String()
}

func formatRequest(r models.BloodRequest) string {
	return fmt.Sprintf("%s  %-3s x%d  %-8s %-10s %s",
		r.ID, r.BloodType, r.UnitsNeeded, r.Urgency, r.Status, r.Hospital.Name)
}

func formatAppointment(a models.Appointment) string {
	s := fmt.Sprintf("%s  %s  %-9s bank %s", a.ID, formatDateTime(a.ScheduledAt), a.Status, a.BloodBankID)
	if a.Notes != "" {
		s += "  (" + a.Notes + ")"
	}
	return s
}

func formatBank(b models.BloodBank) string {
	var stock []string
	for _, item := range b.Inventory {
		if item.UnitsAvailable > 0 {
			stock = append(stock, fmt.Sprintf("%s:%d", item.BloodType, item.UnitsAvailable))
		}
	}
	s := fmt.Sprintf("%s  %s, %s", b.ID, b.Name, b.Location.City)
	if b.DistanceKm > 0 {
		s += fmt.Sprintf("  %.1f km", b.DistanceKm)
	}
	if len(stock) > 0 {
		s += "  [" + strings.Join(stock, " ") + "]"
	}
	return s
}

func formatCard(c models.BloodCard) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Card %s  %s  %s\n", c.CardNumber, c.BloodType, c.Status)
	fmt.Fprintf(&b, "  %s %s, born %s, %s\n", c.FirstName, c.LastName, c.DateOfBirth, c.Gender)
	if c.AadhaarNumber != "" {
		fmt.Fprintf(&b, "  Aadhaar %s\n", india.MaskAadhaar(c.AadhaarNumber))
	}
	fmt.Fprintf(&b, "  issued %s, expires %s", india.FormatDate(c.IssueDate), india.FormatDate(c.ExpiryDate))
	return b.String()
}

func formatNotification(n models.Notification) string {
	read := " "
	if !n.IsRead {
		read = "*"
	}
	return fmt.Sprintf("%s %s  [%s/%s] %s: %s", read, n.ID, n.Type, n.Priority, n.Title, n.Message)
}
