// Package graph models the host application's node graph: nodes with typed
// knobs, input connections, DAG placement, and group nodes with interior
// subgraphs. Plugin modules build and manipulate graphs through this package
// instead of talking to the host process directly, which keeps their logic
// testable outside an interactive session.
package graph
