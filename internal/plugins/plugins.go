// Package plugins lists every plugin ggm can load, keyed by the id used
// in the configuration's plugin sections.
package plugins

import (
	"ggm/internal/plugin"
	"ggm/internal/plugins/bitcoinaverage"
	"ggm/internal/plugins/lookup"
	"ggm/internal/plugins/quotes"
	"ggm/internal/plugins/urlutils"
)

// Registry returns the built-in plugin constructors.
func Registry() plugin.Registry {
	return plugin.Registry{
		bitcoinaverage.ID: bitcoinaverage.New,
		lookup.ID:         lookup.New,
		quotes.ID:         quotes.New,
		urlutils.ID:       urlutils.New,
	}
}
