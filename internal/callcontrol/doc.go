// Package callcontrol holds the view-layer helpers of the call-control bar:
// button visibility for the current task, the optional task actions supplied
// by the host, wrap-up reason validation and the outdial keypad.
//
// The task SDK itself is not part of this package. Actions are opaque
// callbacks and TaskState is a plain snapshot of what the SDK reports.
package callcontrol
