// Package workorder implements the work order aggregate and its lifecycle.
//
// A work order authorizes production of a planned quantity of a product and is
// tracked through a closed set of statuses. Transitions follow a declarative
// transition table; entering in_progress stamps the actual start time and
// entering completed stamps the actual end time, each exactly once. Completed
// and cancelled are terminal.
//
// The aggregate carries a version for optimistic concurrency: the persistence
// layer predicates updates on the version loaded with the aggregate, so two
// concurrent transitions of the same work order cannot silently overwrite
// each other.
package workorder
