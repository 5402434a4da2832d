// Package wordgraph analyses the intersection structure of a crossword:
// an undirected graph whose nodes are placed word ids and whose edges are
// intersection cells. The grid rebuilds this view on demand; nothing here
// is persisted.
//
// What:
//
//   - NewFromEdges / AddNode / AddEdges: construction from intersection pairs.
//   - IsConnected: edge-walking traversal reaching every registered node.
//   - CountCycles: E - N + 1 for a connected graph (logged warning, and an
//     undercount, when called on a disconnected one).
//   - FindLeaves: nodes of degree ≤ 1, removable without disconnecting.
//   - PartitionNodes: dual-source traversal splitting the graph into the
//     component grown around each of two seed nodes.
//   - ComponentsAfterDeletingNode: connected components of the remainder.
//
// All outputs are deterministic: node lists are sorted and traversal
// follows ascending-id edge order.
//
// Errors:
//
//   - ErrNodeNotFound: an operation referenced an unregistered node.
//   - ErrInvalidEdgeReference: an edge points at a node missing from the
//     node map, which signals a structurally inconsistent graph.
package wordgraph
