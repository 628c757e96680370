// Package order contains the Order aggregate, the fulfillment Status enum,
// and the role transition table.
//
// The status graph is the structural truth about which transitions exist at
// all; the role transition table narrows it down to what each staff role may
// request. Privileged roles (admin, super admin) are checked only against the
// structural graph - an explicit override, not a fallthrough.
//
// The aggregate itself never creates or closes packaging/delivery tasks; that
// coupling is owned by the task orchestrator in the application layer, which
// is the single writer for order status and task completion.
package order
