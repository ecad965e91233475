// Package order models a customer's purchase request: the transient Draft a
// buyer edits on the order page and the persisted Order aggregate created on
// submission. Every order starts in NEW regardless of input; afterwards the
// administrator overwrites the status field directly. The status set is fixed
// but transitions are deliberately unguarded — any status may replace any
// other, matching how staff actually work the phone-and-deliver flow.
package order
