package vsphere

import (
	"errors"

	"github.com/vmware/govmomi/find"
)

// ErrNotFound indicates no VM with the requested name exists on the
// queried endpoint.
var ErrNotFound = errors.New("virtual machine not found")

// IsNotFound reports whether err means the VM does not exist, covering
// both the package sentinel and govmomi's finder error.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var nfe *find.NotFoundError
	return errors.As(err, &nfe)
}
