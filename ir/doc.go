// Package ir provides the generic tree shared by the converter packages.
//
// A Node is a JSON value: null, boolean, number, string, array or
// object. Objects keep their keys in input order; for ObjectType nodes
// Fields[i] is the key for the value at Values[i].
//
// Number values are placed under:
//   - Int64: if it is an integer (64-bit signed)
//   - Float64: if it is a floating point number (64-bit IEEE float)
//   - Number: as a string fallback if neither can represent it
//
// Nodes maintain parent links (Parent, ParentIndex, ParentField), so
// Path() can report where a value sits, for example
// "$.events[0].pages[1]".
//
// The Tag field carries the record tag a node had in a tagged document,
// or the tag a serializer decided on. Binary blobs are represented by the
// placeholder object {"__binary_content__": "<base64>"}, see IsBinary.
//
// Node structures are not thread-safe.
package ir
