package phdrs

import "unsafe"

// ProgHeaderIterator walks an object's program header table in place.
// It is single-pass: once exhausted it stays exhausted.
type ProgHeaderIterator struct {
	ptr *ProgHeader // next entry in the loader-owned table
	num uint16      // entries remaining
}

// Next returns the next program header, or (nil, false) once the table is
// exhausted. The returned view stays valid as long as the process runs; the
// loader never moves or unloads a published header table.
func (it *ProgHeaderIterator) Next() (*ProgHeader, bool) {
	if it.num == 0 {
		return nil, false
	}
	p := it.ptr
	it.ptr = (*ProgHeader)(unsafe.Add(unsafe.Pointer(it.ptr), unsafe.Sizeof(ProgHeader{})))
	it.num--
	return p, true
}
