// Package model contains the value types shared by every task manager
// variant: the tracked Process, its Priority, the listing order (SortedBy)
// and the admission Mode used to select a variant.
//
// All types are small immutable values; they can be decoded from YAML or
// JSON through their text codecs.
package model
