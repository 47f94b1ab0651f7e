// Package model implements a C4-style software architecture model: software
// systems, the containers they are built from, runtime instances of those
// containers, and the directed relationships between them.
//
// Every element carries an ordered, duplicate-free tag list whose required
// subset is fixed by the element's Kind and can never be removed. Canonical
// names are derived on demand from the containment hierarchy, so they always
// reflect the current parent and instance ordinal.
//
// A Model is not safe for concurrent mutation. ID allocation and instance
// ordinals are plain counters; callers sharing a Model across goroutines must
// serialize all writes.
package model
