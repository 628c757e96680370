// Package task contains the Task aggregate: one worker's claim on performing
// a single fulfillment stage (packaging or delivery) for one order.
//
// A task is open while CompletedAt is nil. The domain invariant - at most one
// open task per (order, kind) - cannot be defended by the aggregate alone
// under concurrent claims; it is enforced by a partial unique index at the
// storage layer, which the task repository translates into a typed conflict
// error. Tasks are closed, never deleted.
package task
