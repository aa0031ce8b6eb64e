// Package roundtrip checks that a JSON map document survives conversion
// to the tagged document and back.
package roundtrip
