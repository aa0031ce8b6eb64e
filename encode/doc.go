// Package encode writes map documents.
//
// Encode turns the JSON layout of a map (map_data, bgm, events and so
// on) into the object-tagged document read by the game editor:
//
//	--- !ruby/object:RPG::Map
//	tileset_id: 1
//	...
//	events:
//	  1: !ruby/object:RPG::Event
//	    id: 1
//	    pages:
//	    - !ruby/object:RPG::Event::Page
//	      ...
//
// Mappings are tagged by their key sets (see package classify), the
// tile grid is written as a Table text block (see package table) and
// the move commands of a "set move route" command are anchored so that
// the following "movement command" commands can alias them.
//
// EncodeJSON writes any node as indented JSON.
//
// # Related Packages
//
//   - github.com/signadot/rpgmap/parse - reads documents back to JSON
//   - github.com/signadot/rpgmap/ir - the node tree
package encode
