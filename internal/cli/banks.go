package cli

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/bloodstream/bloodstream-go/internal/bloodtype"
	"github.com/bloodstream/bloodstream-go/internal/models"
)

func parseBankFilters(args []string) models.BloodBankFilters {
	var f models.BloodBankFilters
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok {
			continue
		}
		switch k {
		case "city":
			f.City = v
		case "state":
			f.State = v
		case "bloodType":
			f.BloodType = bloodtype.BloodType(v)
		}
	}
	return f
}

func (a *App) listBanks(ctx context.Context, args []string) error {
	banks, err := a.banks.List(ctx, parseBankFilters(args))
	if err != nil {
		return err
	}
	if len(banks) == 0 {
		printlnFn("No blood banks found.")
		return nil
	}
	for _, b := range banks {
		printlnFn(formatBank(b))
	}
	return nil
}

// nearbyBanks expects "nearby <lat> <lng> [radiusKm]".
func (a *App) nearbyBanks(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: nearby <lat> <lng> [radiusKm]")
	}
	lat, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return errors.New("latitude must be a number")
	}
	lng, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return errors.New("longitude must be a number")
	}
	radius := 0.0
	if len(args) > 2 {
		radius, err = strconv.ParseFloat(args[2], 64)
		if err != nil {
			return errors.New("radius must be a number")
		}
	}

	banks, err := a.banks.Nearby(ctx, lat, lng, radius)
	if err != nil {
		return err
	}
	if len(banks) == 0 {
		printlnFn("No blood banks nearby.")
		return nil
	}
	for _, b := range banks {
		printlnFn(formatBank(b))
	}
	return nil
}
