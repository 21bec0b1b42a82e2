// Package decom implements the VM decommission flow: connect to every
// configured endpoint, locate the VM by name, power it off, rename it,
// and disconnect.
//
// The flow is strictly sequential. Best-effort failures (guest shutdown
// request, endpoint logout) are recorded as warnings on the Result so
// callers decide their severity; everything else is fatal and still
// passes through teardown.
package decom

import (
	"fmt"

	"github.com/imamik/vmdecom/internal/secret"
)

// NamePrefix marks a VM as decommissioned. A VM carrying this prefix
// must not be powered on again.
const NamePrefix = "_DoNotPowerOn-"

// DecommissionedName returns the rename target for a VM.
func DecommissionedName(name string) string {
	return NamePrefix + name
}

// Request identifies the VM to decommission.
type Request struct {
	VMName      string
	Credentials *secret.Credentials
}

// Result reports what a run did. It is populated progressively, so on
// error it reflects everything completed up to the failure.
type Result struct {
	// Endpoint is where the VM was found. Empty if it never was.
	Endpoint string

	// NewName is the decommission name the VM carries after the run.
	NewName string

	// Renamed is false when the VM already carried the decommission name.
	Renamed bool

	// GracefulShutdown is true when the guest powered off within the
	// shutdown window; ForcedStop when a hard power-off was needed.
	GracefulShutdown bool
	ForcedStop       bool

	// Warnings collects best-effort failures that did not stop the run.
	Warnings []string
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}
