// Package photom provides photometric magnitude systems.
//
// A magnitude system names a zero-point flux density: the flux that defines
// magnitude 0. The registry is populated once during process initialization,
// single-threaded, and is read-only afterwards, so concurrent reads need no
// locking.
package photom
