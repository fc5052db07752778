// Package idgen generates opaque identifiers for events and queue messages.
// The generator is a package variable so tests can make ids deterministic.
package idgen
