// Package token encodes and decodes single scalars of the tagged map
// document: strings, which are emitted bare unless a YAML reader could
// mistake them for something else, and binary blobs, which are carried
// as base64 text behind the !binary tag.
package token
