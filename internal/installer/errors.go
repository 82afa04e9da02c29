package installer

import "errors"

// Failure classes for provisioning. Each wraps the underlying tool error,
// so callers can still recover the exact exit status with errors.As.
var (
	// ErrInstall: the manifest installer exited non-zero.
	ErrInstall = errors.New("package install failed")
	// ErrSync: the environment manager failed to resolve or install.
	ErrSync = errors.New("environment sync failed")
	// ErrEnvCreate: the target directory cannot hold a new environment.
	ErrEnvCreate = errors.New("environment creation failed")
)
