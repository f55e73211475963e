// Package history provides linked undo transactions: host-owned
// scopes that group multiple buffer mutations into a single undo
// step. Completion is idempotent so a transaction is never closed
// twice even when both the escape path and an abnormal mode exit try.
package history
