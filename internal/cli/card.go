package cli

import (
	"context"
	"errors"
	"net/http"

	"github.com/bloodstream/bloodstream-go/internal/api"
)

func (a *App) showCard(ctx context.Context) error {
	card, err := a.cards.Mine(ctx)
	if err != nil {
		if api.StatusOf(err) == http.StatusNotFound {
			printlnFn("You have no blood card yet.")
			return nil
		}
		return err
	}
	printlnFn(formatCard(card))
	return nil
}

func (a *App) verifyCard(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: verify-card <card number>")
	}
	card, err := a.cards.VerifyByNumber(ctx, args[0])
	if err != nil {
		return err
	}
	printlnFn(formatCard(card))
	return nil
}
