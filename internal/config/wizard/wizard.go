// Package wizard prompts for values not supplied on the command line.
package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptPassword asks for the vCenter password interactively, masked.
// Used when the --password flag is omitted and stdin is a terminal.
func PromptPassword(ctx context.Context, username string) (string, error) {
	var password string

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Password for %s", username)).
				Description("Used to authenticate against every vCenter endpoint").
				EchoMode(huh.EchoModePassword).
				Value(&password).
				Validate(ValidatePassword),
		).Title("vCenter Credentials"),
	).RunWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("password prompt failed: %w", err)
	}

	return password, nil
}

// ValidatePassword rejects blank passwords before they reach the
// credential constructor.
func ValidatePassword(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("password must not be blank")
	}
	return nil
}
