package emvqr

import "strings"

// Match is one hit of ScanTag.
type Match struct {
	Value     string
	NextIndex int
}

// ScanTag looks for the next literal occurrence of tag at or after start
// (a character index) and reads the length and value that follow it.
//
// This is a substring search, not a structural walk: the two tag
// characters may be found inside another field's value, for example a
// merchant name containing "59". Callers treat hits as candidates.
func ScanTag(text, tag string, start int) (Match, bool) {
	return scanTag([]rune(text), []rune(tag), start)
}

// AllTags collects every ScanTag hit from the start of text, resuming after
// each value. It stops at the first miss or malformed length.
func AllTags(text, tag string) []string {
	data := []rune(text)
	needle := []rune(tag)

	var results []string
	start := 0
	for start < len(data) {
		m, ok := scanTag(data, needle, start)
		if !ok {
			break
		}
		results = append(results, m.Value)
		start = m.NextIndex
	}
	return results
}

// FirstTag returns the first AllTags hit.
func FirstTag(text, tag string) (string, bool) {
	m, ok := ScanTag(text, tag, 0)
	if !ok {
		return "", false
	}
	return m.Value, true
}

func scanTag(data, tag []rune, start int) (Match, bool) {
	if start < 0 {
		start = 0
	}
	idx := indexRunes(data, tag, start)
	if idx < 0 || idx+headerLen > len(data) {
		return Match{}, false
	}

	length, ok := parseLength(data[idx+tagLen : idx+headerLen])
	if !ok || idx+headerLen+length > len(data) {
		return Match{}, false
	}

	end := idx + headerLen + length
	return Match{
		Value:     string(data[idx+headerLen : end]),
		NextIndex: end,
	}, true
}

func indexRunes(data, needle []rune, start int) int {
	if start > len(data) {
		return -1
	}
	if len(needle) == 0 {
		return start
	}
	rest := string(data[start:])
	i := strings.Index(rest, string(needle))
	if i < 0 {
		return -1
	}
	// byte offset back to a character offset
	return start + len([]rune(rest[:i]))
}
