package stanza

import (
	"strconv"
	"strings"
)

// bindMarkers rewrites each `?` marker in frag with a $N placeholder,
// numbering from next. Markers inside single-quoted literals or
// double-quoted identifiers are left untouched. It returns the rewritten
// text, the number of markers consumed, and the next free index.
func bindMarkers(frag string, next int) (text string, count, nextIndex int) {
	var out strings.Builder
	out.Grow(len(frag) + 8)

	for i := 0; i < len(frag); i++ {
		switch ch := frag[i]; ch {
		case '\'', '"':
			j := skipQuoted(frag, i, ch)
			out.WriteString(frag[i:j])
			i = j - 1
		case '?':
			out.WriteByte('$')
			out.WriteString(strconv.Itoa(next))
			next++
			count++
		default:
			out.WriteByte(ch)
		}
	}
	return out.String(), count, next
}

// renumberPlaceholders rewrites every $N placeholder in text with a
// fresh index from a shared counter starting at next, preserving marker
// order. Placeholders inside quoted literals or quoted identifiers are
// not rewritten (builders never emit them there, but fragment text is
// caller-supplied). Values lists are not touched: the caller
// concatenates them in the same fragment order, which keeps marker M
// bound to values entry M.
func renumberPlaceholders(text string, next int) (string, int) {
	var out strings.Builder
	out.Grow(len(text) + 8)

	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case ch == '\'' || ch == '"':
			j := skipQuoted(text, i, ch)
			out.WriteString(text[i:j])
			i = j - 1
		case ch == '$' && i+1 < len(text) && isDigit(text[i+1]):
			j := i + 1
			for j < len(text) && isDigit(text[j]) {
				j++
			}
			out.WriteByte('$')
			out.WriteString(strconv.Itoa(next))
			next++
			i = j - 1
		default:
			out.WriteByte(ch)
		}
	}
	return out.String(), next
}

// skipQuoted returns the index just past the quoted run opening at i.
// A doubled quote character inside the run is an escape, not a
// terminator. An unterminated run extends to the end of the string.
func skipQuoted(s string, i int, quote byte) int {
	j := i + 1
	for j < len(s) {
		if s[j] != quote {
			j++
			continue
		}
		if j+1 < len(s) && s[j+1] == quote {
			j += 2
			continue
		}
		return j + 1
	}
	return j
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }
