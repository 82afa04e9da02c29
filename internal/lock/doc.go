// Package lock reads uv.lock files. Lock files record the exact resolved
// package versions for the environment, enabling reproducible provisioning
// runs. This tool never writes them.
package lock
