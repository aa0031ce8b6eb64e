package rpg

import (
	"github.com/signadot/rpgmap/ir"
)

// PageFlags lists the scalar page attributes in the order they are
// written.
var PageFlags = []string{
	"through",
	"move_frequency",
	"move_type",
	"trigger",
	"always_on_top",
	"walk_anime",
	"move_speed",
	"step_anime",
	"direction_fix",
}

// PageRecords lists the nested page records in the order they are
// written.
var PageRecords = []string{"graphic", "condition", "move_route"}

// EventFields are the event attributes written after any extra ones.
var EventFields = []string{"id", "name", "x", "y"}

const (
	DefaultEncounterStep = 30
	DefaultAudioVolume   = 100
	DefaultAudioPitch    = 100

	DefaultGridWidth  = 20
	DefaultGridHeight = 20
	DefaultGridLayers = 3
)

// DefaultAudio returns the audio file used when bgm or bgs is absent.
func DefaultAudio() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "name", Val: ir.FromString("")},
		{Key: "volume", Val: ir.FromInt(DefaultAudioVolume)},
		{Key: "pitch", Val: ir.FromInt(DefaultAudioPitch)},
	})
}

// IsPageField reports whether key is written in a fixed place of a page.
func IsPageField(key string) bool {
	switch key {
	case "page_index", "commands", "list":
		return true
	}
	for _, f := range PageFlags {
		if f == key {
			return true
		}
	}
	for _, f := range PageRecords {
		if f == key {
			return true
		}
	}
	return false
}

// IsEventField reports whether key is written in a fixed place of an
// event.
func IsEventField(key string) bool {
	if key == "pages" {
		return true
	}
	for _, f := range EventFields {
		if f == key {
			return true
		}
	}
	return false
}
