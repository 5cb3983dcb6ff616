package data

import "strings"

// separator delimits path segments within a query string.
const separator = "."

// Query addresses a location within a document tree as an ordered sequence
// of string path segments. Parts passed to the constructors are flattened
// eagerly: a single part "a.b" is equivalent to the two parts "a", "b".
// Two queries are equal (with ==) iff their flattened part sequences are
// equal. The zero Query has no parts and denotes the view it is resolved
// against.
type Query struct {
	s string
}

// NewQuery builds a query from the given parts. Each part may itself be a
// dotted sub-path; empty parts are dropped.
func NewQuery(parts ...string) Query {
	flat := make([]string, 0, len(parts))
	for _, part := range parts {
		for seg := range strings.SplitSeq(part, separator) {
			if seg != "" {
				flat = append(flat, seg)
			}
		}
	}
	return Query{s: strings.Join(flat, separator)}
}

// ParseQuery builds a query from a dotted path string.
func ParseQuery(s string) Query {
	return NewQuery(s)
}

// Parts returns the flattened segments of the query, nil for the zero
// query.
func (q Query) Parts() []string {
	if q.s == "" {
		return nil
	}
	return strings.Split(q.s, separator)
}

// Then returns a new query addressing r relative to q.
func (q Query) Then(r Query) Query {
	switch {
	case q.s == "":
		return r
	case r.s == "":
		return q
	}
	return Query{s: q.s + separator + r.s}
}

// Empty reports whether the query has no parts.
func (q Query) Empty() bool {
	return q.s == ""
}

// Last returns the final segment of the query, "" for the zero query.
func (q Query) Last() string {
	if i := strings.LastIndex(q.s, separator); i >= 0 {
		return q.s[i+1:]
	}
	return q.s
}

// String returns the dotted form of the query.
func (q Query) String() string {
	return q.s
}
