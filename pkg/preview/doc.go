// Package preview serves a live toolbar preview over HTTP.
//
// Routes:
//
//	GET /                    HTML page with the rendered toolbar
//	GET /api/toolbar         toolbar groups as JSON
//	GET /api/layers/{kind}   rendered layer popup, ?x=&y= position
//	GET /ws                  live toolbar updates
//	GET /metrics             Prometheus metrics, when a recorder is set
//
// The websocket accepts JSON messages
//
//	{"type": "scrollSync", "hidden": true}
//	{"type": "state", "states": {"strong": true}}
//	{"type": "active", "item": "scrollSync", "active": false}
//
// and answers each with {"type": "toolbar", "html": "...", "groups": [...]}.
// Each connection keeps its own toolbar; messages only retoggle or
// reannotate it, they never regroup.
package preview
