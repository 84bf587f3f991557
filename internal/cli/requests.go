package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bloodstream/bloodstream-go/internal/bloodtype"
	"github.com/bloodstream/bloodstream-go/internal/india"
	"github.com/bloodstream/bloodstream-go/internal/models"
)

var errMissingID = errors.New("an id argument is required")

// parseRequestFilters reads key=value args, e.g. "status=pending urgency=high".
func parseRequestFilters(args []string) models.RequestFilters {
	var f models.RequestFilters
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok {
			continue
		}
		switch k {
		case "status":
			f.Status = models.RequestStatus(v)
		case "urgency":
			f.Urgency = models.Urgency(v)
		case "bloodType":
			f.BloodType = bloodtype.BloodType(v)
		}
	}
	return f
}

func (a *App) listRequests(ctx context.Context, args []string) error {
	rs, err := a.requests.List(ctx, parseRequestFilters(args))
	if err != nil {
		return err
	}
	if len(rs) == 0 {
		printlnFn("No blood requests found.")
		return nil
	}
	for _, r := range rs {
		printlnFn(formatRequest(r))
	}
	return nil
}

func (a *App) showRequest(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errMissingID
	}
	r, err := a.requests.Get(ctx, args[0])
	if err != nil {
		return err
	}
	printlnFn(formatRequest(r))
	if r.Notes != "" {
		printlnFn("  notes:", r.Notes)
	}
	return nil
}

// createRequest prompts for the request fields, validating the blood type and
// the hospital contact number locally.
func (a *App) createRequest(ctx context.Context) error {
	bt, err := getSimpleText(a.reader, "Blood type needed (e.g. O-)", os.Stdout)
	if err != nil {
		return err
	}
	if !bloodtype.Valid(bloodtype.BloodType(bt)) {
		return errInvalidBloodType
	}

	unitsStr, err := getSimpleText(a.reader, "Units needed", os.Stdout)
	if err != nil {
		return err
	}
	units, err := strconv.Atoi(unitsStr)
	if err != nil || units < 1 {
		return errors.New("units needed must be a positive number")
	}

	urgency, err := getSimpleText(a.reader, "Urgency (low/medium/high/critical)", os.Stdout)
	if err != nil {
		return err
	}
	switch models.Urgency(urgency) {
	case models.UrgencyLow, models.UrgencyMedium, models.UrgencyHigh, models.UrgencyCritical:
	default:
		return errors.New("urgency must be low, medium, high or critical")
	}

	hospitalName, err := getSimpleText(a.reader, "Hospital name", os.Stdout)
	if err != nil {
		return err
	}
	hospitalAddr, err := getSimpleText(a.reader, "Hospital address", os.Stdout)
	if err != nil {
		return err
	}
	contact, err := getOptionalText(a.reader, "Hospital contact number", os.Stdout)
	if err != nil {
		return err
	}
	if contact != "" {
		if !india.ValidPhone(contact) {
			return errInvalidPhone
		}
		contact = india.FormatPhone(contact)
	}
	notes, err := getOptionalText(a.reader, "Notes", os.Stdout)
	if err != nil {
		return err
	}

	r, err := a.requests.Create(ctx, models.CreateRequestData{
		BloodType:   bloodtype.BloodType(bt),
		UnitsNeeded: units,
		Urgency:     models.Urgency(urgency),
		Hospital: models.Hospital{
			Name:          hospitalName,
			Address:       hospitalAddr,
			ContactNumber: contact,
		},
		Notes: notes,
	})
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Blood request %s created.", r.ID))
	return nil
}

func (a *App) acceptRequest(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errMissingID
	}
	r, err := a.requests.Accept(ctx, args[0])
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Request %s accepted, status is now %s.", r.ID, r.Status))
	return nil
}

func (a *App) declineRequest(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errMissingID
	}
	if _, err := a.requests.Decline(ctx, args[0]); err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Request %s declined.", args[0]))
	return nil
}

func (a *App) matchRequest(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errMissingID
	}
	r, err := a.requests.Match(ctx, args[0])
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Request %s matched, status is now %s.", r.ID, r.Status))
	return nil
}

func (a *App) escalateRequest(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errMissingID
	}
	r, err := a.requests.Escalate(ctx, args[0])
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Request %s escalated to %s urgency.", r.ID, r.Urgency))
	return nil
}
