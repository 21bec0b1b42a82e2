// Package handlers implements command execution for the vmdecom CLI.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/imamik/vmdecom/internal/config"
	"github.com/imamik/vmdecom/internal/config/wizard"
	"github.com/imamik/vmdecom/internal/decom"
	"github.com/imamik/vmdecom/internal/logging"
	"github.com/imamik/vmdecom/internal/platform/vsphere"
	"github.com/imamik/vmdecom/internal/secret"
)

// DecommissionOptions carries the decommission command's flag values.
type DecommissionOptions struct {
	VMName     string
	ConfigPath string
	Username   string
	Password   string
	Endpoints  []string
	LogFile    string
	Insecure   bool
}

// Orchestrator interface for testing - matches decom.Orchestrator.
type Orchestrator interface {
	Run(ctx context.Context, req decom.Request) (*decom.Result, error)
}

// Factory function variables - can be replaced in tests.
var (
	loadConfigFile = config.LoadFile

	newDialer = func(insecure bool) vsphere.Dialer {
		return vsphere.NewGovmomiDialer(insecure)
	}

	newOrchestrator = func(cfg *config.Config, dialer vsphere.Dialer, log *logging.Logger) Orchestrator {
		return decom.NewOrchestrator(cfg, dialer, log)
	}

	promptPassword = wizard.PromptPassword

	stdinIsTerminal = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
)

// Decommission handles the decommission command.
//
// It assembles the configuration (file, then flag overrides), resolves
// the credentials, and runs the orchestrator. Any returned error makes
// the process exit 1.
func Decommission(ctx context.Context, opts DecommissionOptions) error {
	cfg, err := loadConfigFile(opts.ConfigPath)
	if err != nil {
		return err
	}

	if len(opts.Endpoints) > 0 {
		cfg.Endpoints = opts.Endpoints
	}
	if opts.LogFile != "" {
		cfg.LogFile = opts.LogFile
	}
	if opts.Insecure {
		cfg.Insecure = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	password := opts.Password
	if password == "" {
		if !stdinIsTerminal() {
			return errors.New("no password given and stdin is not a terminal")
		}
		password, err = promptPassword(ctx, opts.Username)
		if err != nil {
			return err
		}
	}

	creds, err := secret.New(opts.Username, password)
	if err != nil {
		return fmt.Errorf("invalid credentials: %w", err)
	}
	defer creds.Zero()

	log := logging.New(os.Stdout, cfg.LogFile)
	defer log.Close() //nolint:errcheck

	orch := newOrchestrator(cfg, newDialer(cfg.Insecure), log)
	res, err := orch.Run(ctx, decom.Request{VMName: opts.VMName, Credentials: creds})
	if err != nil {
		log.Errorf("Decommission of %s failed: %v", opts.VMName, err)
		return fmt.Errorf("decommission %s: %w", opts.VMName, err)
	}

	if n := len(res.Warnings); n > 0 {
		log.Warnf("Completed with %d warning(s)", n)
	}
	return nil
}
