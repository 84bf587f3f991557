package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/bloodstream/bloodstream-go/internal/models"
)

func (a *App) listAppointments(ctx context.Context) error {
	as, err := a.appointments.List(ctx)
	if err != nil {
		return err
	}
	if len(as) == 0 {
		printlnFn("No appointments.")
		return nil
	}
	for _, appt := range as {
		printlnFn(formatAppointment(appt))
	}
	return nil
}

func (a *App) bookAppointment(ctx context.Context) error {
	bankID, err := getSimpleText(a.reader, "Blood bank id", os.Stdout)
	if err != nil {
		return err
	}
	whenStr, err := getSimpleText(a.reader, "Date and time (02/01/2006 15:04)", os.Stdout)
	if err != nil {
		return err
	}
	when, err := time.ParseInLocation("02/01/2006 15:04", whenStr, time.Local)
	if err != nil {
		return errors.New("date must look like 25/12/2026 10:30")
	}
	if when.Before(time.Now()) {
		return errors.New("appointment must be in the future")
	}
	notes, err := getOptionalText(a.reader, "Notes", os.Stdout)
	if err != nil {
		return err
	}

	appt, err := a.appointments.Create(ctx, models.CreateAppointmentData{
		BloodBankID: bankID,
		ScheduledAt: when,
		Notes:       notes,
	})
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Appointment %s booked for %s.", appt.ID, formatDateTime(appt.ScheduledAt)))
	return nil
}

func (a *App) cancelAppointment(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errMissingID
	}
	reason, err := getOptionalText(a.reader, "Reason", os.Stdout)
	if err != nil {
		return err
	}
	appt, err := a.appointments.Cancel(ctx, args[0], reason)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Appointment %s cancelled.", appt.ID))
	return nil
}
