package rtr

// Parameter is a name/value pair captured from a dynamic pattern segment.
// The tree returns captured values from patterns like /track/:id.
//
// Example:
//   Pattern: /artist/:name/track/:id
//   Path:    /artist/moby/track/99
//   Result:  []Parameter{{Key: "name", Value: "moby"}, {Key: "id", Value: "99"}}
//
// An ordered slice is used rather than a map so captures stay in pattern
// order and static lookups allocate nothing.
type Parameter struct {
	Key   string
	Value string
}
