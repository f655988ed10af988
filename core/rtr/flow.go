package rtr

// flow tells the insertion loop what to do next.
// Tree operations run as a single loop with goto labels instead of recursion,
// and this enum carries the continuation decision out of node.end.
type flow int

const (
	// flowStop ends traversal: the pattern has been fully processed.
	flowStop flow = iota

	// flowBegin restarts the loop body, used when switching onto a
	// parameter node that must be re-examined from the top.
	flowBegin

	// flowNext advances to the next byte of the pattern.
	flowNext
)
