// Package project resolves the on-disk layout of a provisioned project:
// manifest, lock file, virtual environment directory, and the optional
// .comprep.yaml configuration that overrides the conventional names.
package project
