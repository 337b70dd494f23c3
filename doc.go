// Package phdrs exposes the shared objects (the executable and its
// libraries) currently mapped into the calling process, together with each
// object's ELF program headers, via the dynamic loader's dl_iterate_phdr
// facility.
//
// Nothing is read from disk and no process other than the caller's own can
// be inspected: the loader already holds all of this information in memory,
// Objects merely copies out the transient parts and borrows the stable ones.
package phdrs
