// Package scheduler assigns batches of compute workloads to discrete time
// slots of a carbon intensity forecast. The carbon-aware policy runs a
// single forward greedy pass ordered by priority and deadline; the fastest
// policy is a deliberately naive baseline used for savings comparisons.
package scheduler
