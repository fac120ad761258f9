package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/shopkeeper/internal/common"
)

// readSecret prompts for a password and returns it as a string, wiping the
// raw bytes read from the terminal.
func readSecret(a *App, prompt string) (string, error) {
	pw, err := getPassword(a.out, prompt)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

// Register prompts for a username, password and admin flag and creates the
// account.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := readSecret(a, "Enter password")
	if err != nil {
		return err
	}

	isAdmin, err := GetYesNo(a.reader, "Administrator?", a.out)
	if err != nil {
		return err
	}

	id, err := a.client.Register(ctx, userName, password, isAdmin)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered user %s (id=%d)\n", userName, id)
	return nil
}

// Login prompts for credentials and opens a session.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := readSecret(a, "Enter password")
	if err != nil {
		return err
	}

	resp, err := a.client.Login(ctx, userName, password)
	if err != nil {
		return err
	}

	a.userName = userName
	a.isAdmin = resp.IsAdmin
	a.logger.Info(ctx, "Login successful", "username", userName, "admin", resp.IsAdmin)
	return nil
}

func (a *App) ChangePassword(ctx context.Context) error {
	oldPassword, err := readSecret(a, "Enter current password")
	if err != nil {
		return err
	}

	newPassword, err := readSecret(a, "Enter new password")
	if err != nil {
		return err
	}

	changed, err := a.client.ChangePassword(ctx, oldPassword, newPassword)
	if err != nil {
		return err
	}

	if !changed {
		fmt.Fprintln(a.out, "Password not changed: current password does not match")
		return nil
	}

	fmt.Fprintln(a.out, "Password changed")
	return nil
}

// Logout forgets the session token.
func (a *App) Logout(ctx context.Context) error {
	a.client.Logout()
	a.userName = ""
	a.isAdmin = false
	return nil
}
