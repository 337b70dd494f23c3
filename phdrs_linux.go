package phdrs

/*
#cgo CFLAGS: -D_GNU_SOURCE
#include <link.h>

typedef ElfW(Phdr) phdrs_elf_phdr;

// Defined on the Go side; see callback_linux.go.
extern int phdrsCollect(struct dl_phdr_info *info, size_t size, void *data);

static int phdrs_iterate(uintptr_t handle) {
	return dl_iterate_phdr(phdrsCollect, (void *)handle);
}
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"
)

// ProgHeader views the loader's header array in place, so its layout must
// match ElfW(Phdr) byte for byte.
var _ [C.sizeof_phdrs_elf_phdr]byte = [unsafe.Sizeof(ProgHeader{})]byte{}

// Objects returns every object currently mapped into the calling process,
// in the order the loader presents them (implementation-defined; do not
// rely on it beyond the main executable being present).
//
// The scan is a single synchronous pass: dl_iterate_phdr holds the loader's
// own lock while it runs, invokes the collection callback once per object
// in this thread, and cannot fail on Linux. Concurrent calls are safe; they
// serialize against each other on that same lock.
func Objects() []Object {
	var objs []Object
	h := cgo.NewHandle(&objs)
	defer h.Delete()
	C.phdrs_iterate(C.uintptr_t(h))
	return objs
}
