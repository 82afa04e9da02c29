// Package venv inspects on-disk virtual environments: isolated interpreter
// plus package directories owned by the operator's shell session.
package venv
