package htmlreport

import (
	"net/url"
	"regexp"
	"strconv"
)

var unsafeIDChars = regexp.MustCompile(`[^a-zA-Z0-9 -]`)

// MakeID builds a document-safe identifier from a display name. The name is
// query-escaped, stripped to [a-zA-Z0-9 -] and suffixed with ordinal, so two
// names that sanitize to the same token still get distinct ids.
func MakeID(prefix, name string, ordinal int) string {
	token := unsafeIDChars.ReplaceAllString(url.QueryEscape(name), "")
	return prefix + "-" + token + "-" + strconv.Itoa(ordinal)
}

// idSequence hands out ordinals for one render pass, starting at 0.
type idSequence struct {
	prefix string
	next   int
}

func newIDSequence(prefix string) *idSequence {
	return &idSequence{prefix: prefix}
}

// Next returns the id for name and advances the ordinal.
func (s *idSequence) Next(name string) string {
	id := MakeID(s.prefix, name, s.next)
	s.next++
	return id
}
