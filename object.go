package phdrs

import (
	"fmt"
	"iter"
	"os"
	"unsafe"
)

// Object describes one loaded module: the running executable, a shared
// library, or the vDSO. An Object is built once, inside the enumeration
// callback, and is immutable afterwards.
type Object struct {
	// addr is the load bias applied to every virtual address in the
	// object's segments.
	addr uintptr
	// name is an independent copy of the loader's name string. It may be
	// empty (on Linux the main executable reports an empty name) and is
	// not guaranteed to be valid UTF-8.
	name string
	// phdrs points into the loader-owned program header array. The loader
	// keeps that array in place for the life of the process; it is
	// borrowed here, never copied and never freed.
	phdrs *ProgHeader
	// nphdr is the number of entries behind phdrs.
	nphdr uint16
}

// Addr returns the object's load bias.
func (o Object) Addr() uintptr {
	return o.addr
}

// Name returns the object's name as reported by the loader. The main
// executable reports an empty name on Linux; the bytes are passed through
// untouched and may not be valid UTF-8.
func (o Object) Name() string {
	return o.name
}

// NumPhdrs returns the number of program headers the object carries.
func (o Object) NumPhdrs() uint16 {
	return o.nphdr
}

// Path resolves the object's on-disk path, applying the platform convention
// that an empty name means the running executable itself. Names of objects
// without file backing (such as "linux-vdso.so.1") pass through unchanged.
func (o Object) Path() (string, error) {
	if o.name == "" {
		return os.Executable()
	}
	return o.name, nil
}

// IterPhdrs returns a fresh iterator over the object's program headers.
// Every call returns an independent iterator; all of them see the same
// underlying table.
func (o Object) IterPhdrs() *ProgHeaderIterator {
	return &ProgHeaderIterator{ptr: o.phdrs, num: o.nphdr}
}

// Phdrs returns the object's program headers as a range-over-func sequence.
func (o Object) Phdrs() iter.Seq[*ProgHeader] {
	return func(yield func(*ProgHeader) bool) {
		it := o.IterPhdrs()
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// String renders the object for diagnostics. The exact format is not
// stable API.
func (o Object) String() string {
	return fmt.Sprintf("Object{addr: %#x, name: %q, phdrs: %#x, num_phdrs: %d}",
		o.addr, o.name, uintptr(unsafe.Pointer(o.phdrs)), o.nphdr)
}
