package cli

import (
	"bytes"
	"context"
	"errors"

	"github.com/dmitrijs2005/foundrmate/internal/common"
)

// getSimpleText and getPassword are swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errPasswordMismatch = errors.New("passwords do not match")

func (a *App) Register(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirmation, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirmation)

	if !bytes.Equal(password, confirmation) {
		printlnFn("Passwords do not match")
		return errPasswordMismatch
	}

	s, err := a.authService.Register(ctx, fullName, email, password)
	if err != nil {
		return a.report(err)
	}

	a.user = &s.User
	printlnFn("Welcome, " + s.User.FullName + "!")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.authService.Login(ctx, email, password)
	if err != nil {
		return a.report(err)
	}

	a.user = &s.User
	printlnFn("Logged in as " + s.User.FullName)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return a.report(err)
	}
	a.user = nil
	printlnFn("Logged out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	u, err := a.authService.WhoAmI(ctx)
	if err != nil {
		return a.report(err)
	}
	a.user = u
	printlnFn(u.FullName + " <" + u.Email + ">")
	return nil
}

func (a *App) Health(ctx context.Context) error {
	if err := a.authService.Ping(ctx); err != nil {
		return a.report(err)
	}
	printlnFn("Server is up")
	return nil
}
