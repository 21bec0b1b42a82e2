package decom

import (
	"context"
	"errors"
	"fmt"

	"github.com/imamik/vmdecom/internal/config"
	"github.com/imamik/vmdecom/internal/logging"
	"github.com/imamik/vmdecom/internal/platform/vsphere"
	"github.com/imamik/vmdecom/internal/secret"
)

// Orchestrator runs the decommission flow against a fleet of endpoints.
type Orchestrator struct {
	cfg    *config.Config
	dialer vsphere.Dialer
	log    *logging.Logger
}

// NewOrchestrator wires the orchestrator with its dependencies.
func NewOrchestrator(cfg *config.Config, dialer vsphere.Dialer, log *logging.Logger) *Orchestrator {
	return &Orchestrator{cfg: cfg, dialer: dialer, log: log}
}

// Run executes the full flow. Every connection opened during the run is
// logged out before Run returns, on success and on every error path.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*Result, error) {
	res := &Result{}

	if req.VMName == "" {
		return res, errors.New("vm name is required")
	}
	if req.Credentials == nil {
		return res, errors.New("credentials are required")
	}

	o.log.Infof("Decommissioning %s across %d endpoints", req.VMName, len(o.cfg.Endpoints))

	conns := o.connect(ctx, req.Credentials)
	defer o.teardown(ctx, conns, res)

	if len(conns) == 0 {
		return res, fmt.Errorf("no endpoints reachable (tried %d)", len(o.cfg.Endpoints))
	}

	conn, vm, err := o.locate(ctx, conns, req.VMName, res)
	if err != nil {
		return res, err
	}
	res.Endpoint = conn.Endpoint()

	if err := o.powerOff(ctx, req.VMName, vm, res); err != nil {
		return res, err
	}

	if err := o.rename(ctx, req.VMName, vm, res); err != nil {
		return res, err
	}

	o.log.Infof("%s decommissioned on %s", req.VMName, res.Endpoint)
	return res, nil
}

// connect attempts every configured endpoint in order and returns the
// subset that authenticated. Unreachable endpoints are expected in a
// mixed fleet and are skipped without a warning.
func (o *Orchestrator) connect(ctx context.Context, creds *secret.Credentials) []vsphere.Connection {
	conns := make([]vsphere.Connection, 0, len(o.cfg.Endpoints))
	for _, endpoint := range o.cfg.Endpoints {
		conn, err := o.dialer.Connect(ctx, endpoint, creds)
		if err != nil {
			continue
		}
		o.log.Infof("Connected to %s", endpoint)
		conns = append(conns, conn)
	}
	return conns
}

// locate searches the connected endpoints in order and stops at the
// first match. Duplicate names on later endpoints are never seen; the
// matching endpoint is logged so operators can audit that choice.
func (o *Orchestrator) locate(ctx context.Context, conns []vsphere.Connection, name string, res *Result) (vsphere.Connection, vsphere.VirtualMachine, error) {
	for _, conn := range conns {
		vm, err := conn.FindVM(ctx, name)
		if err != nil {
			if vsphere.IsNotFound(err) {
				o.log.Infof("%s not found on %s", name, conn.Endpoint())
				continue
			}
			res.warnf("lookup on %s failed: %v", conn.Endpoint(), err)
			o.log.Warnf("Lookup on %s failed: %v", conn.Endpoint(), err)
			continue
		}
		o.log.Infof("Found %s on %s", name, conn.Endpoint())
		return conn, vm, nil
	}
	return nil, nil, fmt.Errorf("virtual machine %q not found on any connected endpoint", name)
}

// teardown logs out every connection. Logout failures are warnings; the
// run's outcome is already decided by the time this executes.
func (o *Orchestrator) teardown(ctx context.Context, conns []vsphere.Connection, res *Result) {
	for _, conn := range conns {
		if err := conn.Logout(ctx); err != nil {
			res.warnf("disconnect from %s failed: %v", conn.Endpoint(), err)
			o.log.Warnf("Disconnect from %s failed: %v", conn.Endpoint(), err)
			continue
		}
		o.log.Infof("Disconnected from %s", conn.Endpoint())
	}
}
