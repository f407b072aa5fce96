// Package interval implements the augmented interval tree used for style
// run tracking: a red-black balanced BST keyed by (start, end), where every
// node also carries the maximum end value of its subtree.
//
// The augmentation lets overlap, containment, and range queries prune whole
// subtrees — a subtree whose maxEnd falls before the query start cannot hold
// a match — bounding searches to O(log n + k) for k results.
//
// Runs are half-open [start, end) and carry typed data. Trees are generic
// over the data type; exact-match deletion compares data with == unless a
// custom equality is supplied via WithEquals.
//
// Open-ended queries use the Unbounded / NegUnbounded sentinels:
//
//	tree.FindInRange(pos, interval.Unbounded)  // every run starting at or after pos
//
// Validate audits the red-black invariants and the augmentation; tests use
// it as a correctness oracle after mutation sequences.
package interval
