package cli

import (
	"context"
	"errors"
	"fmt"
	"training-reels/internal/core/domain"
)

// ErrPasswordMismatch is returned when the confirmation differs from the new password
var ErrPasswordMismatch = errors.New("passwords do not match")

func (a *App) Login(ctx context.Context, args []string) error {
	fs := a.flagSet("login")
	email := fs.String("email", "", "account email")
	if _, err := a.parseArgs(fs, args, 0); err != nil {
		return err
	}

	address, err := a.valueOrPrompt(*email, "Email")
	if err != nil {
		return err
	}
	password, err := a.promptPassword("Password")
	if err != nil {
		return err
	}

	user, err := a.services.Auth.SignIn(ctx, address, password)
	if err != nil {
		return err
	}

	name := user.Name
	if name == "" {
		name = user.Email
	}
	fmt.Fprintf(a.out, "Signed in as %s <%s>\n", name, user.Email)
	if !user.EmailVerified {
		fmt.Fprintln(a.out, "Your email is not verified yet, run reelctl verify-email <token>")
	}
	return nil
}

func (a *App) Logout(ctx context.Context, args []string) error {
	if _, err := a.parseArgs(a.flagSet("logout"), args, 0); err != nil {
		return err
	}

	err := a.services.Auth.SignOut(ctx)
	switch {
	case errors.Is(err, domain.ErrNotSignedIn):
		fmt.Fprintln(a.out, "Not signed in")
		return nil
	case err != nil:
		return err
	}
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

func (a *App) VerifyEmail(ctx context.Context, args []string) error {
	rest, err := a.parseArgs(a.flagSet("verify-email"), args, 1)
	if err != nil {
		return err
	}
	if err := a.services.Auth.VerifyEmail(ctx, rest[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Email verified")
	return nil
}

func (a *App) ResendVerification(ctx context.Context, args []string) error {
	fs := a.flagSet("resend-verification")
	email := fs.String("email", "", "account email")
	if _, err := a.parseArgs(fs, args, 0); err != nil {
		return err
	}

	address, err := a.valueOrPrompt(*email, "Email")
	if err != nil {
		return err
	}
	if err := a.services.Auth.ResendVerification(ctx, address); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Verification email sent to %s\n", address)
	return nil
}

func (a *App) ForgotPassword(ctx context.Context, args []string) error {
	fs := a.flagSet("forgot-password")
	email := fs.String("email", "", "account email")
	if _, err := a.parseArgs(fs, args, 0); err != nil {
		return err
	}

	address, err := a.valueOrPrompt(*email, "Email")
	if err != nil {
		return err
	}
	if err := a.services.Auth.RequestPasswordReset(ctx, address); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "If the account exists, a reset link is on its way")
	return nil
}

func (a *App) ResetPassword(ctx context.Context, args []string) error {
	rest, err := a.parseArgs(a.flagSet("reset-password"), args, 1)
	if err != nil {
		return err
	}

	password, err := a.promptPassword("New password")
	if err != nil {
		return err
	}
	confirm, err := a.promptPassword("Confirm password")
	if err != nil {
		return err
	}
	if password != confirm {
		return ErrPasswordMismatch
	}

	if err := a.services.Auth.ResetPassword(ctx, rest[0], password); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password updated, you can now log in")
	return nil
}
