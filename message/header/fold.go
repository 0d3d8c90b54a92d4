package header

import "strings"

// Line lengths used when folding header fields. Neither counts the line break.
const (
	// PreferredFoldLength is the length lines are folded to when there is
	// whitespace to fold at.
	PreferredFoldLength = 78

	// ForcedFoldLength is the longest line RFC 5322 permits. A line with no
	// whitespace to fold at before this point is broken here regardless.
	ForcedFoldLength = 998
)

func isSpace(c byte) bool { return c == ' ' || c == '\t' }

// Fold splits a complete "Name: body" field into lines no longer than
// PreferredFoldLength when possible and never longer than ForcedFoldLength. A
// fold is made just before a space or tab, so removing the line breaks gives
// back the original field. The field name is never folded.
//
// When a run of text has no whitespace for ForcedFoldLength bytes, it is broken
// at PreferredFoldLength and the continuation line is indented with a single
// space. Text that was already folded with lbr keeps those breaks.
func Fold(field string, lbr string) []string {
	var lines []string
	for i, line := range strings.Split(field, lbr) {
		lines = append(lines, foldLine(line, i > 0)...)
	}
	return lines
}

func foldLine(line string, continuing bool) []string {
	var lines []string
	for len(line) > PreferredFoldLength {
		// the first fold may come no sooner than the first character of the
		// body, and a continuation line must keep its leading whitespace
		start := 1
		if !continuing {
			start = strings.IndexByte(line, ':') + 2
		}

		if start >= len(line) {
			break
		}

		// best case, fold at the last whitespace that keeps this line short
		limit := PreferredFoldLength + 1
		if start < limit {
			if ix := strings.LastIndexFunc(line[start:limit], isSpaceRune); ix >= 0 {
				lines = append(lines, line[:start+ix])
				line, continuing = line[start+ix:], true
				continue
			}
		} else {
			limit = start
		}

		// barring that, fold at the next whitespace if it is close enough
		if ix := strings.IndexFunc(line[limit:], isSpaceRune); ix >= 0 && limit+ix <= ForcedFoldLength {
			lines = append(lines, line[:limit+ix])
			line, continuing = line[limit+ix:], true
			continue
		}

		if len(line) <= ForcedFoldLength {
			break
		}

		// no whitespace in reach, so break the text and indent
		lines = append(lines, line[:PreferredFoldLength])
		line, continuing = " "+line[PreferredFoldLength:], true
	}

	return append(lines, line)
}

func isSpaceRune(c rune) bool { return c < 0x80 && isSpace(byte(c)) }
