// Package core is the orchestration layer.  It composes the transport,
// the plugin registry, the router and the session into a runnable
// Mode, chosen by Build from the configuration.
//
// Architecture layers (bottom → top):
//
//	wire/auth  →  transport  →  session  →  router/plugins  →  core  →  cmd (CLI)
package core

import "context"

// Mode is a complete run of ggm: either serving IRC until told to stop,
// or a dry run that only reports what would be done.
type Mode interface {
	Run(ctx context.Context) error
}
