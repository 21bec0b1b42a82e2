// Package vsphere wraps the govmomi SDK behind small interfaces for
// endpoint sessions and virtual machine operations.
//
// The orchestrator only ever sees [Dialer], [Connection], and
// [VirtualMachine]; the govmomi-backed implementations live in
// real_client.go and the func-field mocks for tests in mock_client.go.
package vsphere
