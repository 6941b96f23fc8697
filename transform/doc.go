// Package transform implements the generalized planar polygon
// transformation: a single affine regularizing operator parameterized by
// (λ, θ), its eigenvalue spectrum, and the regularity predicate used to
// validate a user-supplied transformation set.
//
// Complexity:
//
//	– Transform:   O(n) time, O(n) space for an n-gon.
//	– Eigenvalues: O(n) time, O(n) space.
//	– Regularity:  O(n) time, O(n) extra space.
package transform
