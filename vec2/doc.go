// Package vec2 (getme2d) provides the 2-D vector arithmetic and bounding-box
// primitives shared by every other package in this module.
//
// 🚀 What is vec2?
//
//	A tiny, zero-dependency set of value types used to represent mesh node
//	positions and the geometric quantities derived from them:
//
//	  • Vector2      — an (x, y) point/vector with the handful of operations
//	                    the smoothing algorithms actually need
//	  • BoundingBox   — an axis aligned bounding box of a point set
//
// ✨ Why a dedicated package?
//
//   - Beginner-friendly — minimal API, no hidden allocation, no pointers
//   - Pure Go           — no cgo, no third-party dependency
//   - Deterministic     — every operation is a pure function of its inputs
//
// Vector2 is a value type, not a pointer: mesh node slices are
// []Vector2, copied and compared by value.
package vec2
