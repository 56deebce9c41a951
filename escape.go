package neatjson

import (
	"unicode/utf16"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// appendQuoted appends s as a quoted JSON string. Quote, backslash and
// control characters always get escaped; the short forms \n, \r, \t, \b and
// \f are preferred over \u00XX where JSON defines them. With asciiOnly set,
// every rune above 0x7F is written as \uXXXX (a surrogate pair for runes
// outside the BMP). Invalid UTF-8 bytes are escaped as �.
func appendQuoted(dst []byte, s string, asciiOnly bool) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); {
		if b := s[i]; b < utf8.RuneSelf {
			if b >= 0x20 && b != '"' && b != '\\' {
				dst = append(dst, b)
				i++
				continue
			}
			switch b {
			case '"':
				dst = append(dst, '\\', '"')
			case '\\':
				dst = append(dst, '\\', '\\')
			case '\n':
				dst = append(dst, '\\', 'n')
			case '\r':
				dst = append(dst, '\\', 'r')
			case '\t':
				dst = append(dst, '\\', 't')
			case '\b':
				dst = append(dst, '\\', 'b')
			case '\f':
				dst = append(dst, '\\', 'f')
			default:
				dst = appendHexEscape(dst, rune(b))
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			dst = appendHexEscape(dst, utf8.RuneError)
			i++
			continue
		}
		if asciiOnly {
			if r > 0xFFFF {
				r1, r2 := utf16.EncodeRune(r)
				dst = appendHexEscape(dst, r1)
				dst = appendHexEscape(dst, r2)
			} else {
				dst = appendHexEscape(dst, r)
			}
		} else {
			dst = append(dst, s[i:i+size]...)
		}
		i += size
	}
	return append(dst, '"')
}

func appendHexEscape(dst []byte, r rune) []byte {
	return append(dst, '\\', 'u',
		hexDigits[r>>12&0xf],
		hexDigits[r>>8&0xf],
		hexDigits[r>>4&0xf],
		hexDigits[r&0xf])
}
