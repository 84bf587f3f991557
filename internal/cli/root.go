package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bloodstream/bloodstream-go/internal/realtime"
)

func (a *App) getStatus() string {
	s := ""
	if snap := a.session.Snapshot(); snap.User != nil {
		s = snap.User.Email + " " + string(snap.User.Role)
	}
	if a.channel.Status() == realtime.StatusConnected {
		s = strings.TrimSpace(s + " live")
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root runs the interactive loop until the user exits or stdin closes.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to Bloodstream CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	a.loop(ctx, scanner)
}

func (a *App) loop(ctx context.Context, scanner *bufio.Scanner) {
	for {
		fmt.Printf("bs %s> ", a.getStatus())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		if !a.dispatch(ctx, parts[0], parts[1:]) {
			return
		}
	}
}

// dispatch runs one command; it returns false when the loop should stop.
func (a *App) dispatch(ctx context.Context, cmd string, args []string) bool {
	switch cmd {
	case "help":
		a.help()

	case "register":
		report(a.register(ctx))
	case "login":
		report(a.login(ctx))
	case "verify-otp":
		report(a.verifyOTP(ctx))
	case "resend-otp":
		report(a.resendOTP(ctx))
	case "forgot-password":
		report(a.forgotPassword(ctx))
	case "reset-password":
		report(a.resetPassword(ctx))
	case "logout":
		report(a.logout(ctx))
	case "whoami":
		report(a.whoami(ctx))

	case "requests", "r":
		report(a.listRequests(ctx, args))
	case "request":
		report(a.showRequest(ctx, args))
	case "create-request":
		report(a.createRequest(ctx))
	case "accept":
		report(a.acceptRequest(ctx, args))
	case "decline":
		report(a.declineRequest(ctx, args))
	case "match":
		report(a.matchRequest(ctx, args))
	case "escalate":
		report(a.escalateRequest(ctx, args))

	case "appointments":
		report(a.listAppointments(ctx))
	case "book":
		report(a.bookAppointment(ctx))
	case "cancel":
		report(a.cancelAppointment(ctx, args))

	case "banks":
		report(a.listBanks(ctx, args))
	case "nearby":
		report(a.nearbyBanks(ctx, args))

	case "card":
		report(a.showCard(ctx))
	case "verify-card":
		report(a.verifyCard(ctx, args))

	case "notifications", "n":
		report(a.listNotifications(ctx))
	case "read":
		report(a.markRead(ctx, args))
	case "read-all":
		report(a.markAllRead(ctx))

	case "connect":
		report(a.channel.Connect(ctx))
	case "disconnect":
		a.channel.Disconnect()
		printlnFn("Realtime channel disconnected")

	case "exit", "quit":
		printlnFn("Bye!")
		return false

	default:
		printlnFn("Unknown command:", cmd)
	}
	return true
}

func (a *App) help() {
	if a.isLoggedIn() {
		printlnFn("Available commands:")
		printlnFn("  whoami, logout")
		printlnFn("  requests, request <id>, create-request, accept <id>, decline <id>")
		printlnFn("  match <id>, escalate <id>")
		printlnFn("  appointments, book, cancel <id>")
		printlnFn("  banks [city=..] [state=..] [bloodType=..], nearby <lat> <lng> [radiusKm]")
		printlnFn("  card, verify-card <number>")
		printlnFn("  notifications, read <id>, read-all")
		printlnFn("  connect, disconnect, exit")
	} else {
		printlnFn("Available commands: register, login, verify-otp, resend-otp, forgot-password, reset-password, exit")
	}
}

// report prints a handler error for the user; the loop itself never stops on
// command failures.
func report(err error) {
	if err != nil {
		printlnFn("Error:", err.Error())
	}
}
