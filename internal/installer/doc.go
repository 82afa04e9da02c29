// Package installer invokes the two external provisioning tools: pip, the
// flat manifest installer, and uv, the unified environment manager.
// Dependency resolution, registry access and idempotence all belong to the
// tools; this package only runs them, streams their output, and classifies
// failures. Exit codes pass through unchanged in the wrapped error chain.
package installer
