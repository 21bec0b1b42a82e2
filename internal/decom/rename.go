package decom

import (
	"context"
	"fmt"

	"github.com/imamik/vmdecom/internal/platform/vsphere"
)

// rename marks the VM as decommissioned. A VM already carrying the
// decommission name is left alone.
func (o *Orchestrator) rename(ctx context.Context, name string, vm vsphere.VirtualMachine, res *Result) error {
	target := DecommissionedName(name)
	res.NewName = target

	current, err := vm.Name(ctx)
	if err != nil {
		return fmt.Errorf("query name of %s: %w", name, err)
	}

	if current == target {
		o.log.Infof("%s already carries the decommission name", name)
		return nil
	}

	if err := vm.Rename(ctx, target); err != nil {
		return fmt.Errorf("rename %s to %q: %w", name, target, err)
	}
	res.Renamed = true
	o.log.Infof("Renamed %s to %s", name, target)
	return nil
}
