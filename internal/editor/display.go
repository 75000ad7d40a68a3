package editor

import "zile/internal/variables"

// DisplayCache holds the variables the renderer reads on every redisplay.
// They are copied out of the store so redisplay does not do table lookups;
// RefreshCachedVariables must run after any of them changes.
type DisplayCache struct {
	store *variables.Store

	Colors               bool
	DisplayTime          bool
	HighlightNonselected bool
	StatusLineColor      string
	TextColor            string

	// Refreshes counts RefreshCachedVariables calls.
	Refreshes int
}

// NewDisplayCache returns a cache loaded from store.
func NewDisplayCache(store *variables.Store) *DisplayCache {
	d := &DisplayCache{store: store}
	d.load()
	return d
}

// RefreshCachedVariables implements ziletypes.Display.
func (d *DisplayCache) RefreshCachedVariables() {
	d.load()
	d.Refreshes++
}

func (d *DisplayCache) load() {
	d.Colors = d.store.LookupBool("colors")
	d.DisplayTime = d.store.LookupBool("display-time")
	d.HighlightNonselected = d.store.LookupBool("highlight-nonselected-windows")
	d.StatusLineColor, _ = d.store.Get("status-line-color")
	d.TextColor, _ = d.store.Get("text-color")
}
