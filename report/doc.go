// Package report logs mesh quality snapshots and smoothing run outcomes
// as structured fields via zerolog.
package report
