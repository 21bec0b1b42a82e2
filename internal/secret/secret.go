// Package secret holds short-lived credentials with explicit zeroing.
//
// Passwords arrive on the command line or from an interactive prompt and
// are only needed while endpoint sessions are being established. Keeping
// the password in a byte slice lets the caller wipe it once the run is
// over instead of leaving it reachable for the process lifetime.
package secret

import "errors"

// Credentials is an authenticated identity for vCenter endpoint logins.
// The password is wiped by Zero; all reads must happen before that.
type Credentials struct {
	Username string

	password []byte
}

// New validates and wraps a username/password pair.
func New(username, password string) (*Credentials, error) {
	if username == "" {
		return nil, errors.New("username must not be empty")
	}
	if password == "" {
		return nil, errors.New("password must not be empty")
	}
	return &Credentials{Username: username, password: []byte(password)}, nil
}

// Password returns the current password. Empty after Zero.
func (c *Credentials) Password() string {
	return string(c.password)
}

// Zero overwrites the password bytes and drops the slice.
// Safe to call more than once.
func (c *Credentials) Zero() {
	for i := range c.password {
		c.password[i] = 0
	}
	c.password = nil
}
