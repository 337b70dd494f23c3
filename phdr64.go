//go:build amd64 || arm64 || loong64 || mips64 || mips64le || ppc64 || ppc64le || riscv64 || s390x

package phdrs

// ProgHeader is a read-only view of one ELF program header in the loader's
// table. The field layout mirrors Elf64_Phdr exactly so that the loader's
// array can be walked in place without copying.
type ProgHeader struct {
	ptype  uint32
	pflags uint32
	off    uint64
	vaddr  uint64
	paddr  uint64
	filesz uint64
	memsz  uint64
	align  uint64
}
