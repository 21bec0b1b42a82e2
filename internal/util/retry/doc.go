// Package retry provides fixed-interval polling for operations that wait
// on a remote state transition.
//
// The [Poll] function checks a condition at a fixed interval with a
// bounded number of attempts. It is used to wait for a virtual machine
// to reach the powered-off state after a guest shutdown request.
package retry
