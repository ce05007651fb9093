// Package messages holds the player facing strings, looked up by key from an
// embedded gettext catalog.
package messages

import (
	_ "embed"
	"sync"

	"github.com/leonelquinteros/gotext"
)

// Catalog keys
const (
	Title           = "TITLE"
	Generated       = "GENERATED"
	HUDPosition     = "HUD_POSITION"
	HUDBlocked      = "HUD_BLOCKED"
	HUDMoves        = "HUD_MOVES"
	HUDHelp         = "HUD_HELP"
	WalkHelp        = "WALK_HELP"
	Bump            = "BUMP"
	BumpCorner      = "BUMP_CORNER"
	Regenerated     = "REGENERATED"
	EntranceReached = "ENTRANCE_REACHED"
	DumpTitle       = "DUMP_TITLE"
	DumpLegend      = "DUMP_LEGEND"
)

//go:embed locale/en.po
var catalogEN []byte

var (
	load    sync.Once
	catalog *gotext.Po
)

func po() *gotext.Po {
	load.Do(func() {
		catalog = gotext.NewPo()
		catalog.Parse(catalogEN)
	})
	return catalog
}

// lookup is a function variable so that go vet does not take Get, whose
// first argument is a catalog key, for a printf wrapper.
var lookup = (*gotext.Po).Get

// Get returns the message for key formatted with args. Unknown keys are
// returned unchanged.
func Get(key string, args ...any) string {
	return lookup(po(), key, args...)
}

// Has returns true if the catalog translates key
func Has(key string) bool {
	return po().IsTranslated(key)
}
