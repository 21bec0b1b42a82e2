package vsphere

import (
	"context"

	"github.com/vmware/govmomi/vim25/types"

	"github.com/imamik/vmdecom/internal/secret"
)

// Dialer authenticates against vCenter endpoints.
type Dialer interface {
	// Connect opens an authenticated session against one endpoint.
	// The endpoint is a bare hostname (https and /sdk are assumed) or a
	// full SDK URL.
	Connect(ctx context.Context, endpoint string, creds *secret.Credentials) (Connection, error)
}

// Connection is an authenticated session against a single endpoint.
type Connection interface {
	// Endpoint returns the endpoint this session was dialed against.
	Endpoint() string

	// FindVM looks up a VM by exact name across the endpoint's
	// datacenters. Returns ErrNotFound when no datacenter has a VM with
	// that name.
	FindVM(ctx context.Context, name string) (VirtualMachine, error)

	// Logout terminates the session.
	Logout(ctx context.Context) error
}

// VirtualMachine is a handle to one inventory VM on a connected endpoint.
type VirtualMachine interface {
	// Name returns the VM's current inventory name.
	Name(ctx context.Context) (string, error)

	// PowerState returns the VM's current power state.
	PowerState(ctx context.Context) (types.VirtualMachinePowerState, error)

	// ShutdownGuest asks the guest OS to shut down. Requires VMware
	// Tools in the guest; returns immediately without waiting for the
	// power state to change.
	ShutdownGuest(ctx context.Context) error

	// PowerOff forces the VM off and waits for the task to complete.
	PowerOff(ctx context.Context) error

	// Rename changes the VM's inventory name and waits for the task to
	// complete.
	Rename(ctx context.Context, name string) error
}
