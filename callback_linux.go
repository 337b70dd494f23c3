package phdrs

/*
// _GNU_SOURCE must come in through CFLAGS: a preamble #define is not
// copied into the generated export file, whose system includes would then
// pull in link.h without the dl_iterate_phdr declarations.
#cgo CFLAGS: -D_GNU_SOURCE
#include <link.h>
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"
)

// phdrsCollect is the dl_iterate_phdr callback. It runs once per loaded
// object with the loader lock held, so it must stay cheap and must not
// re-enter the loader.
//
// The dl_phdr_info record itself is scratch memory the loader reuses
// between invocations: the name bytes have to be copied out before
// returning. The program header array it points at is different — the
// loader keeps it in place for the life of the process — so only the
// pointer and count are taken.
//
//export phdrsCollect
func phdrsCollect(info *C.struct_dl_phdr_info, size C.size_t, data unsafe.Pointer) C.int {
	objs := cgo.Handle(uintptr(data)).Value().(*[]Object)
	*objs = append(*objs, Object{
		addr:  uintptr(info.dlpi_addr),
		name:  C.GoString(info.dlpi_name),
		phdrs: (*ProgHeader)(unsafe.Pointer(info.dlpi_phdr)),
		nphdr: uint16(info.dlpi_phnum),
	})
	return 0
}
