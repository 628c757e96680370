// Package user contains the User aggregate and the Role enum.
//
// Users are the operational staff of the platform: intake reviewers, packaging
// agents, delivery agents, and the admins who own them. Every staff user is
// linked to the admin that created it via CreatedByID; that link is the basis
// of tenant resolution (see the tenant package). Admins have no creator link
// and act as their own tenant root; super admins sit above all tenants.
package user
