// Package timezone centralizes time handling in the configured application
// timezone. All timestamps persisted or compared by the services go through
// this package so that date-based filters behave consistently regardless of
// the host's local zone.
package timezone
