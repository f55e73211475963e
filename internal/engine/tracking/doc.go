// Package tracking records the most recent completed change to a
// buffer, exposed as either an inserted-text run or a deleted-count
// run. The editing engine reads it to replay the last change when a
// mode was entered with a repeat count.
package tracking
