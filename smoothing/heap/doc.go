// Package heap implements a penalty-corrected polygon quality min-heap: a
// binary heap over per-polygon mean-ratio quality numbers, augmented with a
// penalty sum used to discourage repeatedly selecting the same polygon, and
// a reverse index mapping polygon index to heap slot so that any polygon's
// entry can be located and re-heapified in O(log n) time.
//
// Fixed polygons (every node of the polygon is fixed) always sort after
// non-fixed polygons, regardless of quality, since GETMe sequential must
// never pick one to transform.
//
// Complexity:
//
//	– New:    O(n log n) time, O(n) space for n polygons.
//	– Update: O(log n) time per call.
package heap
