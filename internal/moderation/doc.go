// Package moderation contains moderation rules: tickets' state machine, ban transitions and
// article status transitions. Functions of the package never touch storage, they only decide
// what should be emitted by comparing snapshots taken before and after a mutation.
package moderation
