package rtr

import "github.com/wayroute/wayroute/consts"

// Tree is a radix tree (compressed trie) holding route patterns.
// Common prefixes are shared, so lookup cost tracks path length rather than
// table size.
//
// Structure for the patterns /track, /tracks, /track/:id:
//
//	root
//	 └── "track"  (data: component for /track)
//	      ├── "s" (data: component for /tracks)
//	      └── ":" (parameter node)
//	           └── "id" (data: component for /track/:id)
//
// The zero value is ready to use; the root node is embedded, not a pointer.
type Tree[T any] struct {
	root treeNode[T]
}

// Add inserts a pattern with its data, splitting nodes where the new
// pattern diverges from existing ones. Re-adding a pattern replaces its
// data in place.
func (tree *Tree[T]) Add(pattern string, data T) {
	i := 0      // position in the pattern
	offset := 0 // start of the current node's prefix within the pattern
	node := &tree.root

	for {
	begin:
		switch node.kind {
		case consts.RuneColon:
			// Reached only when the same parameter pattern is added again:
			// just swap the data.
			if i == len(pattern) {
				node.data = data
				return
			}

			// Separator after the parameter: continue below it
			// (e.g. /track/:id/lyrics, sitting just past :id)
			if pattern[i] == consts.RuneFwdSlash {
				node, offset, _ = node.end(pattern, data, i, offset)
				goto next
			}

		default:
			if i == len(pattern) {
				// Exact match: pattern already present
				if i-offset == len(node.prefix) {
					node.data = data
					return
				}

				// Pattern is a strict prefix of this node: split
				//   node: /track|list
				//   new:  /track|
				node.split(i-offset, "", data)
				return
			}

			// Node prefix fully consumed, move on to children
			if i-offset == len(node.prefix) {
				var control flow
				node, offset, control = node.end(pattern, data, i, offset)

				switch control {
				case flowStop:
					return
				case flowBegin:
					goto begin
				case flowNext:
					goto next
				}
			}

			// Divergence inside the prefix: split at the conflict byte
			//   node: /t|op
			//   new:  /t|rack
			if pattern[i] != node.prefix[i-offset] {
				node.split(i-offset, pattern[i:], data)
				return
			}
		}

	next:
		i++
	}
}

// Lookup resolves a path, collecting captured parameters into a slice.
// Convenience wrapper over LookupNoAlloc; the slice is only allocated when
// the matched pattern actually captures something.
func (tree *Tree[T]) Lookup(path string) (T, []Parameter) {
	var params []Parameter

	data := tree.LookupNoAlloc(path, func(key string, value string) {
		params = append(params, Parameter{key, value})
	})

	return data, params
}

// LookupNoAlloc resolves a path without allocating; captures are handed to
// the callback as they are found.
//
// The walk prefers static children over the parameter child, and records the
// nearest catch-all on the way down as the fallback if nothing more specific
// resolves. Byte-range indexing and gotos keep the hot path flat.
func (tree *Tree[T]) LookupNoAlloc(path string, addParameter func(key string, value string)) T {
	var (
		i            uint // position in path (unsigned for cheaper bounds checks)
		catchAllPath string
		catchAll     *treeNode[T]
		node         = &tree.root
	)

	// Nearly every path and root prefix start with '/': skip the first
	// iteration when the leading bytes already agree.
	if len(path) > 0 && len(node.prefix) > 0 && path[0] == node.prefix[0] {
		i = 1
	}

begin:
	for i < uint(len(path)) {
		// Prefix fully matched, dispatch on the next byte
		if i == uint(len(node.prefix)) {
			// Remember the fallback before going deeper
			if node.catchAll != nil {
				catchAll = node.catchAll
				catchAllPath = path[i:]
			}

			char := path[i]

			if char >= node.startIndex && char < node.endIndex {
				index := node.indices[char-node.startIndex]

				if index != 0 {
					node = node.children[index]
					path = path[i:]
					i = 1
					continue
				}
			}

			// No literal child: a parameter node may absorb the segment.
			// Literal children were tried first, which is what makes a
			// literal segment always beat :name for the same path.
			if node.parameter != nil {
				node = node.parameter
				path = path[i:]
				i = 1

				for i < uint(len(path)) {
					// Segment ends, keep resolving below it
					if path[i] == consts.RuneFwdSlash {
						addParameter(node.prefix, path[:i])
						index := node.indices[consts.RuneFwdSlash-node.startIndex]
						node = node.children[index]
						path = path[i:]
						i = 1
						goto begin
					}

					i++
				}

				addParameter(node.prefix, path[:i])
				return node.data
			}

			goto notFound
		}

		// Byte mismatch inside the prefix
		if path[i] != node.prefix[i] {
			goto notFound
		}

		i++
	}

	// Path consumed exactly at this node
	if i == uint(len(node.prefix)) {
		return node.data
	}

	// Nothing specific matched: fall back to the nearest catch-all,
	// which captures the unmatched remainder.
notFound:
	if catchAll != nil {
		addParameter(catchAll.prefix, catchAllPath)
		return catchAll.data
	}

	var empty T
	return empty
}

// Map replaces every stored data value via the transform, in place.
// Useful for wrapping all registered components at once.
func (tree *Tree[T]) Map(transform func(T) T) {
	tree.root.each(func(node *treeNode[T]) {
		node.data = transform(node.data)
	})
}
