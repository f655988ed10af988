package rtr

import (
	"strings"

	"github.com/wayroute/wayroute/consts"
)

// treeNode is a radix tree node.
// A node stores a compressed prefix and can carry three kinds of children:
// static children, one parameter child (:name) and one catch-all child.
//
// Layout notes:
//   - indices maps the first byte of a child prefix to its slot, so static
//     dispatch is a single array lookup
//   - startIndex/endIndex bound the byte range covered by indices
//   - the parameter and catch-all children are held separately so they never
//     shadow static siblings; a literal segment always wins over :name
//
// Tree for the patterns /tracks, /tracks/:id, /tracks/:id/lyrics:
//
//	root (prefix: "")
//	 └── "tracks" (data: component1)
//	      └── parameter "id" (data: component2)
//	           └── "/lyrics" (data: component3)
type treeNode[T any] struct {
	prefix     string
	data       T
	children   []*treeNode[T]
	parameter  *treeNode[T] // :name child, matches one segment
	catchAll   *treeNode[T] // fallback child, matches the rest of the path
	indices    []uint8
	startIndex uint8
	endIndex   uint8
	kind       byte // ':', '*' or 0 for static
}

// split divides the node at the given index and inserts a new branch with
// the remaining pattern. An empty pattern means the data belongs on the
// shortened node itself and only the suffix child is created.
//
//	Existing: "tracks" -> (component1)
//	Added:    "track"  -> (component2)
//	Result:   "track"  -> (component2)
//	            └── "s" -> (component1)
func (node *treeNode[T]) split(index int, pattern string, data T) {
	// Move the suffix, with everything the node carried, into a child
	splitNode := node.clone(node.prefix[index:])
	node.reset(node.prefix[:index])

	if pattern == "" {
		node.data = data
		node.addChild(splitNode)
		return
	}

	node.addChild(splitNode)
	node.append(pattern, data)
}

// clone copies the node under a new prefix. The copy is shallow: children
// are shared, which is safe because inserts only ever add nodes.
func (node *treeNode[T]) clone(prefix string) *treeNode[T] {
	return &treeNode[T]{
		prefix:     prefix,
		data:       node.data,
		indices:    node.indices,
		startIndex: node.startIndex,
		endIndex:   node.endIndex,
		children:   node.children,
		parameter:  node.parameter,
		catchAll:   node.catchAll,
		kind:       node.kind,
	}
}

// reset strips the node down to a pure routing node with the given prefix.
// Used by split to turn a leaf into an interior node in place.
func (node *treeNode[T]) reset(prefix string) {
	var empty T
	node.prefix = prefix
	node.data = empty
	node.parameter = nil
	node.catchAll = nil
	node.kind = 0
	node.startIndex = 0
	node.endIndex = 0
	node.indices = nil
	node.children = nil
}

// addChild registers a static child and keeps the byte index current.
// indices is a sparse array: byte c maps to children[indices[c-startIndex]],
// with slot 0 reserved for "no child". The range grows on demand in either
// direction.
func (node *treeNode[T]) addChild(child *treeNode[T]) {
	if len(node.children) == 0 {
		node.children = append(node.children, nil)
	}

	firstChar := child.prefix[0]

	switch {
	case node.startIndex == 0:
		node.startIndex = firstChar
		node.indices = []uint8{0}
		node.endIndex = node.startIndex + uint8(len(node.indices))

	case firstChar < node.startIndex:
		diff := node.startIndex - firstChar
		newIndices := make([]uint8, diff+uint8(len(node.indices)))
		copy(newIndices[diff:], node.indices)
		node.startIndex = firstChar
		node.indices = newIndices
		node.endIndex = node.startIndex + uint8(len(node.indices))

	case firstChar >= node.endIndex:
		diff := firstChar - node.endIndex + 1
		newIndices := make([]uint8, diff+uint8(len(node.indices)))
		copy(newIndices, node.indices)
		node.indices = newIndices
		node.endIndex = node.startIndex + uint8(len(node.indices))
	}

	index := node.indices[firstChar-node.startIndex]

	if index == 0 {
		node.indices[firstChar-node.startIndex] = uint8(len(node.children))
		node.children = append(node.children, child)
		return
	}

	// Same leading byte again: a re-registration replaces the child
	node.children[index] = child
}

// addTrailingSlash registers a "/" child carrying the same data, so
// /tracks and /tracks/ resolve identically without double registration.
// Skipped when the prefix already ends in a slash, the node is a catch-all,
// or a "/" child exists.
func (node *treeNode[T]) addTrailingSlash(data T) {
	if strings.HasSuffix(node.prefix, "/") || node.kind == consts.RuneAsterisk ||
		(consts.RuneFwdSlash >= node.startIndex && consts.RuneFwdSlash < node.endIndex &&
			node.indices[consts.RuneFwdSlash-node.startIndex] != 0) {
		return
	}

	node.addChild(&treeNode[T]{
		prefix: "/",
		data:   data,
	})
}

// append attaches the remaining pattern below this node, consuming it
// iteratively. Literal runs become static nodes, :name becomes a parameter
// node and *name becomes the catch-all child (the compiled form of "**").
func (node *treeNode[T]) append(pattern string, data T) {
	for {
		if pattern == "" {
			node.data = data
			return
		}

		// Find the next dynamic marker
		paramStart := strings.IndexByte(pattern, consts.RuneColon)

		if paramStart == -1 {
			paramStart = strings.IndexByte(pattern, consts.RuneAsterisk)
		}

		// Purely literal remainder
		if paramStart == -1 {
			if node.prefix == "" {
				node.prefix = pattern
				node.data = data
				node.addTrailingSlash(data)
				return
			}

			child := &treeNode[T]{
				prefix: pattern,
				data:   data,
			}

			node.addChild(child)
			child.addTrailingSlash(data)
			return
		}

		// Marker at the current position
		if paramStart == 0 {
			paramEnd := strings.IndexByte(pattern, consts.RuneFwdSlash)

			if paramEnd == -1 {
				paramEnd = len(pattern)
			}

			// prefix holds the capture name without its marker byte
			child := &treeNode[T]{
				prefix: pattern[1:paramEnd],
				kind:   pattern[paramStart],
			}

			switch child.kind {
			case consts.RuneColon:
				child.addTrailingSlash(data)
				node.parameter = child
				node = child
				pattern = pattern[paramEnd:]
				continue

			case consts.RuneAsterisk:
				// Catch-all consumes the rest of the path, no children
				child.data = data
				node.catchAll = child
				return
			}
		}

		// Marker later in the pattern: place the literal part first
		if node.prefix == "" {
			node.prefix = pattern[:paramStart]
			pattern = pattern[paramStart:]
			continue
		}

		child := &treeNode[T]{
			prefix: pattern[:paramStart],
		}

		// A bare "/" node inherits the parent data so the slashless form
		// of the parent path keeps resolving
		if child.prefix == "/" {
			child.data = node.data
		}

		node.addChild(child)
		node = child
		pattern = pattern[paramStart:]
	}
}

// end decides the continuation after a node's prefix has been fully matched
// during insertion: descend into a matching child, hop onto the parameter
// child, or append the remainder here. Only called from Tree.Add.
// Returns the next node, the new offset and the control directive.
func (node *treeNode[T]) end(pattern string, data T, i int, offset int) (*treeNode[T], int, flow) {
	char := pattern[i]

	if char >= node.startIndex && char < node.endIndex {
		index := node.indices[char-node.startIndex]

		if index != 0 {
			node = node.children[index]
			offset = i
			return node, offset, flowNext
		}
	}

	// No static child matches from here

	if node.prefix == "" {
		node.append(pattern[i:], data)
		return node, offset, flowStop
	}

	// A parameter child may already exist at this position
	// (e.g. /track/:id registered, now adding /track/:id/lyrics)
	if node.parameter != nil && pattern[i] == consts.RuneColon {
		node = node.parameter
		offset = i
		return node, offset, flowBegin
	}

	node.append(pattern[i:], data)
	return node, offset, flowStop
}

// each runs the callback on every node, depth first: the node itself, its
// static children, then the parameter and catch-all children. Exactly one
// call per node.
func (node *treeNode[T]) each(callback func(*treeNode[T])) {
	callback(node)

	for _, child := range node.children {
		if child == nil {
			continue
		}

		child.each(callback)
	}

	if node.parameter != nil {
		node.parameter.each(callback)
	}

	if node.catchAll != nil {
		node.catchAll.each(callback)
	}
}
