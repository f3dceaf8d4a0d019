// Package delay provides Line, a fixed-depth delay for whole vectors.
//
// A Line of depth d holds d+1 equally sized buffers in a ring. Push stores
// the incoming vector at the cursor and advances; Data then returns the
// vector that was pushed d pushes ago (zeros until the line has filled).
package delay
