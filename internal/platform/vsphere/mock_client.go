package vsphere

import (
	"context"

	"github.com/vmware/govmomi/vim25/types"

	"github.com/imamik/vmdecom/internal/secret"
)

// MockDialer is a func-field mock of Dialer.
type MockDialer struct {
	ConnectFunc  func(ctx context.Context, endpoint string, creds *secret.Credentials) (Connection, error)
	ConnectCalls []string
}

func (m *MockDialer) Connect(ctx context.Context, endpoint string, creds *secret.Credentials) (Connection, error) {
	m.ConnectCalls = append(m.ConnectCalls, endpoint)
	return m.ConnectFunc(ctx, endpoint, creds)
}

// MockConnection is a func-field mock of Connection. FindVM defaults to
// ErrNotFound and Logout to success when the corresponding func is nil.
type MockConnection struct {
	EndpointName string
	FindVMFunc   func(ctx context.Context, name string) (VirtualMachine, error)
	LogoutFunc   func(ctx context.Context) error

	FindVMCalls int
	LogoutCalls int
}

func (m *MockConnection) Endpoint() string {
	return m.EndpointName
}

func (m *MockConnection) FindVM(ctx context.Context, name string) (VirtualMachine, error) {
	m.FindVMCalls++
	if m.FindVMFunc == nil {
		return nil, ErrNotFound
	}
	return m.FindVMFunc(ctx, name)
}

func (m *MockConnection) Logout(ctx context.Context) error {
	m.LogoutCalls++
	if m.LogoutFunc == nil {
		return nil
	}
	return m.LogoutFunc(ctx)
}

// MockVM is a func-field mock of VirtualMachine with call counters.
// Nil funcs default to benign behavior: the configured name, powered-off
// state, and successful operations.
type MockVM struct {
	VMName         string
	NameFunc       func(ctx context.Context) (string, error)
	PowerStateFunc func(ctx context.Context) (types.VirtualMachinePowerState, error)
	ShutdownFunc   func(ctx context.Context) error
	PowerOffFunc   func(ctx context.Context) error
	RenameFunc     func(ctx context.Context, name string) error

	NameCalls       int
	PowerStateCalls int
	ShutdownCalls   int
	PowerOffCalls   int
	RenameCalls     int
	RenamedTo       string
}

func (m *MockVM) Name(ctx context.Context) (string, error) {
	m.NameCalls++
	if m.NameFunc == nil {
		return m.VMName, nil
	}
	return m.NameFunc(ctx)
}

func (m *MockVM) PowerState(ctx context.Context) (types.VirtualMachinePowerState, error) {
	m.PowerStateCalls++
	if m.PowerStateFunc == nil {
		return types.VirtualMachinePowerStatePoweredOff, nil
	}
	return m.PowerStateFunc(ctx)
}

func (m *MockVM) ShutdownGuest(ctx context.Context) error {
	m.ShutdownCalls++
	if m.ShutdownFunc == nil {
		return nil
	}
	return m.ShutdownFunc(ctx)
}

func (m *MockVM) PowerOff(ctx context.Context) error {
	m.PowerOffCalls++
	if m.PowerOffFunc == nil {
		return nil
	}
	return m.PowerOffFunc(ctx)
}

func (m *MockVM) Rename(ctx context.Context, name string) error {
	m.RenameCalls++
	m.RenamedTo = name
	if m.RenameFunc == nil {
		return nil
	}
	return m.RenameFunc(ctx, name)
}
