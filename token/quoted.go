package token

import (
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Quote double-quotes v, escaping the way JSON does. The result is a
// valid YAML double-quoted scalar.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// Unquote is the inverse of Quote. It also accepts single-quoted YAML
// scalars, where '' stands for a single quote.
func Unquote(v string) (string, error) {
	if len(v) < 2 {
		return "", ErrUnterminated
	}
	switch v[0] {
	case '\'':
		if v[len(v)-1] != '\'' {
			return "", ErrUnterminated
		}
		inner := v[1 : len(v)-1]
		if !utf8.ValidString(inner) {
			return "", ErrBadUTF8
		}
		return strings.ReplaceAll(inner, "''", "'"), nil
	case '"':
		return unquoteDouble(v)
	default:
		return "", ErrUnterminated
	}
}

func unquoteDouble(v string) (string, error) {
	b := &strings.Builder{}
	d := []byte(v)
	i := 1
	n := len(d)
	for i < n {
		r, sz := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && sz <= 1 {
			return "", ErrBadUTF8
		}
		i += sz
		switch r {
		case '"':
			if i != n {
				return "", ErrUnterminated
			}
			return b.String(), nil
		case '\\':
			if i >= n {
				return "", ErrUnterminated
			}
			e := d[i]
			i++
			switch e {
			case '"', '\\', '/':
				b.WriteByte(e)
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case '0':
				b.WriteByte(0)
			case 'u':
				if i+4 > n {
					return "", ErrUnterminated
				}
				dst := []byte{0, 0}
				if _, err := hex.Decode(dst, d[i:i+4]); err != nil {
					return "", ErrBadUnicode
				}
				b.WriteRune(rune(dst[0])<<8 | rune(dst[1]))
				i += 4
			default:
				return "", ErrBadEscape
			}
		default:
			if r != '\t' && unicode.IsControl(r) {
				return "", ErrUnicodeControl
			}
			b.WriteRune(r)
		}
	}
	return "", ErrUnterminated
}
