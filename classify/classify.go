// Package classify decides which record type an untagged mapping
// stands for, by looking at its key set.
package classify

import (
	"github.com/signadot/rpgmap/ir"
)

// Tag is a record type name without the tag prefix, such as
// "RPG::AudioFile". The empty Tag is the generic object.
type Tag string

const (
	Generic      Tag = ""
	AudioFile    Tag = "RPG::AudioFile"
	Color        Tag = "Color"
	MoveCommand  Tag = "RPG::MoveCommand"
	MoveRoute    Tag = "RPG::MoveRoute"
	Condition    Tag = "RPG::Event::Page::Condition"
	Graphic      Tag = "RPG::Event::Page::Graphic"
	Map          Tag = "RPG::Map"
	Table        Tag = "Table"
	Event        Tag = "RPG::Event"
	Page         Tag = "RPG::Event::Page"
	EventCommand Tag = "RPG::EventCommand"
)

// ObjectPrefix starts every record tag.
const ObjectPrefix = "!ruby/object:"

// String returns the full tag text, for example
// "!ruby/object:RPG::AudioFile".
func (t Tag) String() string {
	return ObjectPrefix + string(t)
}

// FromString returns the Tag of full tag text, and false if the text
// is not a record tag.
func FromString(s string) (Tag, bool) {
	if len(s) < len(ObjectPrefix) || s[:len(ObjectPrefix)] != ObjectPrefix {
		return Generic, false
	}
	return Tag(s[len(ObjectPrefix):]), true
}

// Rule pairs a key set predicate with the tag it assigns.
type Rule struct {
	Tag   Tag
	Match func(keys map[string]bool) bool
}

var (
	audioKeys     = []string{"name", "volume", "pitch"}
	colorKeys     = []string{"red", "green", "blue", "alpha"}
	routeKeys     = []string{"repeat", "skippable", "list"}
	conditionKeys = []string{
		"switch1_valid", "self_switch_ch", "switch1_id", "switch2_valid",
		"variable_value", "self_switch_valid", "variable_id",
		"variable_valid", "switch2_id",
	}
	graphicKeys = []string{
		"character_name", "character_index", "direction",
		"pattern", "opacity", "blend_type",
	}
)

var rules = []Rule{
	{AudioFile, exactly(audioKeys)},
	{Color, exactly(colorKeys)},
	{MoveCommand, func(keys map[string]bool) bool {
		return containsAll(keys, []string{"code", "parameters"}) && !containsAny(keys, routeKeys)
	}},
	{MoveRoute, func(keys map[string]bool) bool { return containsAll(keys, routeKeys) }},
	{Condition, func(keys map[string]bool) bool { return containsAll(keys, conditionKeys) }},
	{Graphic, func(keys map[string]bool) bool { return containsAll(keys, graphicKeys) }},
}

// Rules returns the ordered classification rules. The first matching
// rule decides; when none matches the result is Generic.
func Rules() []Rule {
	res := make([]Rule, len(rules))
	copy(res, rules)
	return res
}

// Keys classifies a key set. The order of keys does not matter.
func Keys(keys []string) Tag {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	for _, r := range rules {
		if r.Match(set) {
			return r.Tag
		}
	}
	return Generic
}

// Node classifies an object node; anything else is Generic.
func Node(y *ir.Node) Tag {
	if y == nil || y.Type != ir.ObjectType {
		return Generic
	}
	return Keys(y.Keys())
}

// KeysOf returns the key set a rule was built from, for tags with a
// fixed field list.
func KeysOf(t Tag) []string {
	var ks []string
	switch t {
	case AudioFile:
		ks = audioKeys
	case Color:
		ks = colorKeys
	case MoveRoute:
		ks = routeKeys
	case Condition:
		ks = conditionKeys
	case Graphic:
		ks = graphicKeys
	case MoveCommand:
		ks = []string{"code", "parameters"}
	}
	return append([]string(nil), ks...)
}

func exactly(want []string) func(map[string]bool) bool {
	return func(keys map[string]bool) bool {
		return len(keys) == len(want) && containsAll(keys, want)
	}
}

func containsAll(keys map[string]bool, want []string) bool {
	for _, k := range want {
		if !keys[k] {
			return false
		}
	}
	return true
}

func containsAny(keys map[string]bool, want []string) bool {
	for _, k := range want {
		if keys[k] {
			return true
		}
	}
	return false
}
