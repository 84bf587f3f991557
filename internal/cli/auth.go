package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bloodstream/bloodstream-go/internal/bloodtype"
	"github.com/bloodstream/bloodstream-go/internal/common"
	"github.com/bloodstream/bloodstream-go/internal/india"
	"github.com/bloodstream/bloodstream-go/internal/models"
)

// getSimpleText, getOptionalText and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getOptionalText = GetOptionalText
var getPassword = GetPassword

var (
	errInvalidRole      = errors.New("role must be donor, recipient or delivery")
	errInvalidPhone     = errors.New("invalid Indian mobile number")
	errInvalidBloodType = errors.New("invalid blood type")
	errInvalidAadhaar   = errors.New("Aadhaar number must be 12 digits")
)

// register walks the user through account creation. Phone number and blood
// type are validated locally before the request leaves the machine.
func (a *App) register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	firstName, err := getSimpleText(a.reader, "First name", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Last name", os.Stdout)
	if err != nil {
		return err
	}

	role, err := getSimpleText(a.reader, "Role (donor/recipient/delivery)", os.Stdout)
	if err != nil {
		return err
	}
	if !models.ValidRole(models.Role(role)) || models.Role(role) == models.RoleAdmin {
		return errInvalidRole
	}

	phone, err := getOptionalText(a.reader, "Mobile number", os.Stdout)
	if err != nil {
		return err
	}
	if phone != "" {
		if !india.ValidPhone(phone) {
			return errInvalidPhone
		}
		phone = india.FormatPhone(phone)
	}

	bt, err := getOptionalText(a.reader, "Blood type (e.g. O-)", os.Stdout)
	if err != nil {
		return err
	}
	if bt != "" && !bloodtype.Valid(bloodtype.BloodType(bt)) {
		return errInvalidBloodType
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	resp, err := a.auth.Register(ctx, models.RegisterData{
		Email:       email,
		Password:    string(password),
		FirstName:   firstName,
		LastName:    lastName,
		Role:        models.Role(role),
		PhoneNumber: phone,
		BloodType:   bloodtype.BloodType(bt),
	})
	if err != nil {
		return err
	}

	printlnFn(resp.Message)
	printlnFn("Check your email for the OTP, then run 'verify-otp'.")
	return nil
}

func (a *App) login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	resp, err := a.auth.Login(ctx, models.LoginCredentials{
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Welcome back, %s!", resp.User.FullName()))
	return a.channel.Connect(ctx)
}

func (a *App) verifyOTP(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	otp, err := getSimpleText(a.reader, "Enter the 6-digit OTP", os.Stdout)
	if err != nil {
		return err
	}

	resp, err := a.auth.VerifyOTP(ctx, models.OTPVerification{Email: email, OTP: otp})
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Account verified. Welcome, %s!", resp.User.FullName()))
	return a.channel.Connect(ctx)
}

func (a *App) resendOTP(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.auth.ResendOTP(ctx, email); err != nil {
		return err
	}
	printlnFn("A new OTP is on its way.")
	return nil
}

func (a *App) resetPassword(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Reset token from the email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.ResetPassword(ctx, token, string(password)); err != nil {
		return err
	}
	printlnFn("Password updated. You can login now.")
	return nil
}

func (a *App) forgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.auth.ForgotPassword(ctx, email); err != nil {
		return err
	}
	printlnFn("If the address is registered, a reset link is on its way.")
	return nil
}

func (a *App) logout(ctx context.Context) error {
	a.channel.Disconnect()
	a.inbox.Clear()
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out.")
	return nil
}

func (a *App) whoami(ctx context.Context) error {
	u, err := a.auth.Me(ctx)
	if err != nil {
		return err
	}
	printlnFn(formatUser(u))
	return nil
}
