// Package parse reads object-tagged map documents.
//
// ParseGeneric turns a document into a plain node tree. Record tags
// such as !ruby/object:RPG::Event are kept on the nodes (ir.Node.Tag)
// but otherwise ignored; !binary scalars become binary placeholder
// objects holding the base64 text unchanged; aliases resolve to copies
// of their anchored values.
//
// Parse additionally reshapes the tree into the JSON layout of a map:
// map_data with the tile grid recovered from the Table block, audio
// settings, and events as a list of {id, name, x, y, pages} objects
// whose pages carry their commands under "commands".
package parse
