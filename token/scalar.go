package token

import (
	"strconv"
	"strings"
	"unicode"
)

// leading characters which make a plain scalar mean something else.
const indicators = "!@#%^&*()-+={}[]|\\:;\"'<>,.?/~`$"

var literalWords = map[string]bool{
	"true": true, "false": true,
	"y": true, "n": true,
	"yes": true, "no": true,
	"on": true, "off": true,
	"null": true,
}

// NeedsQuote reports whether v must be quoted to read back as the same
// string.
func NeedsQuote(v string) bool {
	if strings.TrimSpace(v) == "" {
		return true
	}
	if strings.IndexByte(indicators, v[0]) != -1 {
		return true
	}
	if literalWords[strings.ToLower(v)] {
		return true
	}
	if strings.ContainsAny(v, ":[]{}") || strings.Contains(v, " #") {
		return true
	}
	if v != strings.TrimSpace(v) {
		return true
	}
	for _, r := range v {
		if unicode.IsControl(r) {
			return true
		}
	}
	return looksNumeric(v)
}

func looksNumeric(v string) bool {
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return true
	}
	if _, err := strconv.ParseInt(v, 0, 64); err == nil {
		return true
	}
	return false
}

// EncodeString renders s as a scalar token.
func EncodeString(s string) string {
	if NeedsQuote(s) {
		return Quote(s)
	}
	return s
}

// DecodeString returns the string a scalar token stands for. Tokens
// which are not properly quoted are returned as is.
func DecodeString(tok string) string {
	if len(tok) < 2 {
		return tok
	}
	first, last := tok[0], tok[len(tok)-1]
	if first != last || (first != '"' && first != '\'') {
		return tok
	}
	s, err := Unquote(tok)
	if err != nil {
		return tok
	}
	return s
}

// EncodeKey renders a mapping key. Identifier keys such as y or on are
// written bare: a key is always read back as its text, so only null
// and keys which break the mapping syntax need quotes.
func EncodeKey(k string) string {
	if isIdent(k) && !strings.EqualFold(k, "null") {
		return k
	}
	return EncodeString(k)
}

func isIdent(k string) bool {
	if k == "" {
		return false
	}
	for i, r := range k {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
