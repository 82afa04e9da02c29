// Package manifest reads flat requirements files: the ordered list of
// package/constraint pairs both installer paths consume. Parsing exists for
// display and editing only; content validation during provisioning is left
// entirely to the external installer.
package manifest
