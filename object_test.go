package phdrs

import (
	"debug/elf"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testObject builds an Object over a Go-allocated header array, standing in
// for the loader-owned table. The slice must outlive the Object; keeping it
// in the caller's frame is enough for a test.
func testObject(name string, hdrs []ProgHeader) Object {
	return Object{
		addr:  0x7f0000000000,
		name:  name,
		phdrs: &hdrs[0],
		nphdr: uint16(len(hdrs)),
	}
}

func testHeaders() []ProgHeader {
	return []ProgHeader{
		{ptype: uint32(elf.PT_PHDR), pflags: uint32(elf.PF_R), off: 0x40, vaddr: 0x40, paddr: 0x40, filesz: 728, memsz: 728, align: 8},
		{ptype: uint32(elf.PT_LOAD), pflags: uint32(elf.PF_R | elf.PF_X), vaddr: 0x1000, paddr: 0x1000, filesz: 4096, memsz: 4096, align: 0x1000},
		{ptype: uint32(elf.PT_DYNAMIC), pflags: uint32(elf.PF_R | elf.PF_W), off: 0x2f00, vaddr: 0x3f00, paddr: 0x3f00, filesz: 480, memsz: 480, align: 8},
	}
}

func TestIterPhdrs_YieldsEveryEntryInOrder(t *testing.T) {
	hdrs := testHeaders()
	o := testObject("libfake.so.1", hdrs)

	it := o.IterPhdrs()
	var types []uint32
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		types = append(types, p.Type())
	}

	assert.Equal(t, []uint32{
		uint32(elf.PT_PHDR),
		uint32(elf.PT_LOAD),
		uint32(elf.PT_DYNAMIC),
	}, types)
}

func TestIterPhdrs_ExhaustionIsIdempotent(t *testing.T) {
	hdrs := testHeaders()
	o := testObject("libfake.so.1", hdrs)

	it := o.IterPhdrs()
	n := 0
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}
	require.Equal(t, len(hdrs), n)

	for i := 0; i < 3; i++ {
		p, ok := it.Next()
		assert.Nil(t, p)
		assert.False(t, ok)
	}
}

func TestIterPhdrs_IndependentIterators(t *testing.T) {
	hdrs := testHeaders()
	o := testObject("libfake.so.1", hdrs)

	collect := func() [][2]uint64 {
		var got [][2]uint64
		it := o.IterPhdrs()
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			got = append(got, [2]uint64{uint64(p.Type()), p.Vaddr()})
		}
		return got
	}

	first := collect()
	second := collect()
	assert.Equal(t, first, second)
	assert.Len(t, first, len(hdrs))
}

func TestIterPhdrs_FieldsPassThrough(t *testing.T) {
	hdrs := testHeaders()
	o := testObject("libfake.so.1", hdrs)

	it := o.IterPhdrs()
	p, ok := it.Next()
	require.True(t, ok)

	assert.Equal(t, uint32(elf.PT_PHDR), p.Type())
	assert.Equal(t, uint32(elf.PF_R), p.Flags())
	assert.Equal(t, uint64(0x40), p.Offset())
	assert.Equal(t, uint64(0x40), p.Vaddr())
	assert.Equal(t, uint64(0x40), p.Paddr())
	assert.Equal(t, uint64(728), p.Filesz())
	assert.Equal(t, uint64(728), p.Memsz())
	assert.Equal(t, uint64(8), p.Align())
}

func TestPhdrs_RangeSeq(t *testing.T) {
	hdrs := testHeaders()
	o := testObject("libfake.so.1", hdrs)

	n := 0
	for range o.Phdrs() {
		n++
	}
	assert.Equal(t, len(hdrs), n)

	// Early break must not panic or misbehave.
	n = 0
	for range o.Phdrs() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestPath_EmptyNameResolvesToSelf(t *testing.T) {
	hdrs := testHeaders()
	o := testObject("", hdrs)

	exe, err := os.Executable()
	require.NoError(t, err)

	path, err := o.Path()
	require.NoError(t, err)
	assert.Equal(t, exe, path)
}

func TestPath_NamedObjectPassesThrough(t *testing.T) {
	hdrs := testHeaders()
	o := testObject("/usr/lib/libc.so.6", hdrs)

	path, err := o.Path()
	require.NoError(t, err)
	assert.Equal(t, "/usr/lib/libc.so.6", path)
}

func TestObject_NonUTF8NameTolerated(t *testing.T) {
	raw := "/lib/\xff\xfe\x80.so"
	hdrs := testHeaders()
	o := testObject(raw, hdrs)

	// Bytes pass through untouched, and rendering must not choke.
	assert.Equal(t, raw, o.Name())
	assert.NotPanics(t, func() { _ = o.String() })

	path, err := o.Path()
	require.NoError(t, err)
	assert.Equal(t, raw, path)
}

func TestObject_Accessors(t *testing.T) {
	hdrs := testHeaders()
	o := testObject("libfake.so.1", hdrs)

	assert.Equal(t, uintptr(0x7f0000000000), o.Addr())
	assert.Equal(t, "libfake.so.1", o.Name())
	assert.Equal(t, uint16(len(hdrs)), o.NumPhdrs())
}
