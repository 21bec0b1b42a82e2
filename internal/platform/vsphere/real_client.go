package vsphere

import (
	"context"
	"fmt"
	"net/url"

	"github.com/vmware/govmomi"
	"github.com/vmware/govmomi/find"
	"github.com/vmware/govmomi/object"
	"github.com/vmware/govmomi/vim25/soap"
	"github.com/vmware/govmomi/vim25/types"

	"github.com/imamik/vmdecom/internal/secret"
)

// GovmomiDialer implements Dialer using the govmomi SDK.
type GovmomiDialer struct {
	insecure bool
}

// NewGovmomiDialer creates a dialer. insecure skips TLS certificate
// verification.
func NewGovmomiDialer(insecure bool) *GovmomiDialer {
	return &GovmomiDialer{insecure: insecure}
}

// Connect logs in to the endpoint's SDK URL with the given credentials.
func (d *GovmomiDialer) Connect(ctx context.Context, endpoint string, creds *secret.Credentials) (Connection, error) {
	u, err := soap.ParseURL(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	u.User = url.UserPassword(creds.Username, creds.Password())

	client, err := govmomi.NewClient(ctx, u, d.insecure)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", endpoint, err)
	}

	return &govmomiConnection{endpoint: endpoint, client: client}, nil
}

type govmomiConnection struct {
	endpoint string
	client   *govmomi.Client
}

func (c *govmomiConnection) Endpoint() string {
	return c.endpoint
}

// FindVM searches every datacenter on the endpoint for a VM with the
// exact inventory name.
func (c *govmomiConnection) FindVM(ctx context.Context, name string) (VirtualMachine, error) {
	finder := find.NewFinder(c.client.Client, true)

	datacenters, err := finder.DatacenterList(ctx, "*")
	if err != nil {
		return nil, fmt.Errorf("list datacenters on %s: %w", c.endpoint, err)
	}

	for _, dc := range datacenters {
		finder.SetDatacenter(dc)
		vm, err := finder.VirtualMachine(ctx, name)
		if err != nil {
			if IsNotFound(err) {
				continue
			}
			return nil, fmt.Errorf("search %s on %s: %w", name, c.endpoint, err)
		}
		return &govmomiVM{vm: vm}, nil
	}

	return nil, ErrNotFound
}

func (c *govmomiConnection) Logout(ctx context.Context) error {
	return c.client.Logout(ctx)
}

type govmomiVM struct {
	vm *object.VirtualMachine
}

func (g *govmomiVM) Name(ctx context.Context) (string, error) {
	return g.vm.ObjectName(ctx)
}

func (g *govmomiVM) PowerState(ctx context.Context) (types.VirtualMachinePowerState, error) {
	return g.vm.PowerState(ctx)
}

func (g *govmomiVM) ShutdownGuest(ctx context.Context) error {
	return g.vm.ShutdownGuest(ctx)
}

func (g *govmomiVM) PowerOff(ctx context.Context) error {
	task, err := g.vm.PowerOff(ctx)
	if err != nil {
		return err
	}
	return task.Wait(ctx)
}

func (g *govmomiVM) Rename(ctx context.Context, name string) error {
	task, err := g.vm.Rename(ctx, name)
	if err != nil {
		return err
	}
	return task.Wait(ctx)
}
