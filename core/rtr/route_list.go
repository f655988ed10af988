package rtr

// RouteList is a registered route in inspectable form.
// Router implementations expose their tables through this for route-table
// dumps, conflict debugging and tests.
type RouteList struct {
	Outlet     string
	Pattern    string
	HandlerRef string
}
