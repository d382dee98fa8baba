package mpd

import "strings"

// querySegment is one (type, text) pair extracted from a free-text query.
type querySegment struct {
	typ   string
	words []string
}

// parseQuery translates a user-typed query of the form
//
//	[type:]word [type:word ...]
//
// into the flat [type, text, type, text, ...] argument list mpc's search and
// find commands expect. A token containing a colon opens a new segment;
// untyped tokens are absorbed into the current segment's space-joined text.
// Untyped tokens appearing before the first typed token open an implicit
// "any" segment — note the asymmetry: an implicit segment is only ever
// opened at the start, never after a typed segment has been seen. A query
// with no colon at all is passed through verbatim as a single "any" search.
func parseQuery(query string) []string {
	if !strings.Contains(query, ":") {
		return []string{"any", query}
	}

	var segments []querySegment
	for _, token := range strings.Fields(query) {
		typ, word, typed := strings.Cut(token, ":")
		if typed {
			seg := querySegment{typ: typ}
			if word != "" {
				seg.words = append(seg.words, word)
			}
			segments = append(segments, seg)
			continue
		}

		if len(segments) == 0 {
			segments = append(segments, querySegment{typ: "any"})
		}
		last := &segments[len(segments)-1]
		last.words = append(last.words, token)
	}

	args := make([]string, 0, 2*len(segments))
	for _, seg := range segments {
		args = append(args, seg.typ, strings.Join(seg.words, " "))
	}
	return args
}
