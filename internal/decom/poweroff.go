package decom

import (
	"context"
	"fmt"

	"github.com/vmware/govmomi/vim25/types"

	"github.com/imamik/vmdecom/internal/platform/vsphere"
	"github.com/imamik/vmdecom/internal/util/retry"
)

// powerOff drives the VM to the powered-off state.
//
// Already-off VMs are a no-op. Otherwise a guest shutdown is requested
// (best-effort) and the power state is polled at a fixed interval for
// the shutdown window. A VM still running after the window gets exactly
// one forced power-off, whose failure is fatal.
func (o *Orchestrator) powerOff(ctx context.Context, name string, vm vsphere.VirtualMachine, res *Result) error {
	state, err := vm.PowerState(ctx)
	if err != nil {
		return fmt.Errorf("query power state of %s: %w", name, err)
	}

	if state == types.VirtualMachinePowerStatePoweredOff {
		o.log.Infof("%s is already powered off", name)
		return nil
	}

	o.log.Infof("%s is %s, requesting guest shutdown", name, state)
	if err := vm.ShutdownGuest(ctx); err != nil {
		res.warnf("guest shutdown request failed: %v", err)
		o.log.Warnf("Guest shutdown request failed: %v", err)
	}

	off, err := retry.Poll(ctx, func(ctx context.Context) (bool, error) {
		state, err := vm.PowerState(ctx)
		if err != nil {
			// Transient query failures do not end the wait.
			return false, nil
		}
		return state == types.VirtualMachinePowerStatePoweredOff, nil
	},
		retry.WithInterval(o.cfg.Timeouts.PollInterval),
		retry.WithMaxAttempts(o.cfg.Timeouts.MaxPolls()))
	if err != nil {
		return fmt.Errorf("wait for %s to power off: %w", name, err)
	}

	if off {
		res.GracefulShutdown = true
		o.log.Infof("%s powered off gracefully", name)
		return nil
	}

	o.log.Warnf("%s still running after %s, forcing stop", name, o.cfg.Timeouts.ShutdownWindow)
	if err := vm.PowerOff(ctx); err != nil {
		return fmt.Errorf("forced power-off of %s failed: %w", name, err)
	}
	res.ForcedStop = true
	o.log.Infof("%s forcibly stopped", name)
	return nil
}
