// Package history tracks mutating editor operations on a single linear
// undo/redo timeline with named checkpoints and a bounded capacity.
package history
