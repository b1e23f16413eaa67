// Package store models the fulfilment locations returned by the remote store
// locator and the query that finds them.
package store
