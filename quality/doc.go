// Package quality computes the mean-ratio quality number of a single
// polygon (Equation 2.6 of the GETMe book) and aggregates per-polygon
// quality numbers into mesh-wide quality statistics.
//
// Complexity:
//
//	– MeanRatio:         O(n) time, O(1) extra space for an n-gon.
//	– ComputeMeanRatios: O(sum of polygon sizes) time, parallelizable.
package quality
