// Package procmaps reads the kernel's virtual memory mapping table for the
// current process from /proc/self/maps.
package procmaps

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// Mapping is one line of the maps table: a contiguous address range and
// what backs it.
type Mapping struct {
	Start  uintptr // first address of the range
	End    uintptr // first address past the range
	Perms  string  // e.g. "r-xp"
	Offset uint64  // offset into the backing file
	Dev    uint64  // backing device number, unix.Mkdev form
	Inode  uint64  // backing inode, 0 for anonymous mappings
	Path   string  // backing path, pseudo-path like "[vdso]", or empty
}

// Contains reports whether addr falls inside the mapping.
func (m *Mapping) Contains(addr uintptr) bool {
	return addr >= m.Start && addr < m.End
}

// Self reads and parses /proc/self/maps.
func Self() ([]Mapping, error) {
	f, err := os.Open("/proc/self/maps")
	if err != nil {
		return nil, fmt.Errorf("opening /proc/self/maps: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Parse(f)
}

// Parse reads mappings in /proc/PID/maps format, one per line.
func Parse(r io.Reader) ([]Mapping, error) {
	var maps []Mapping
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		m, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		maps = append(maps, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading maps: %w", err)
	}
	return maps, nil
}

// parseLine parses one maps line, e.g.
//
//	7f6e2000-7f6e21000 r-xp 00000000 08:01 408012 /usr/lib/libc.so.6
//
// The path column is optional and may itself contain spaces.
func parseLine(line string) (Mapping, error) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return Mapping{}, fmt.Errorf("malformed maps line: %q", line)
	}

	lo, hi, ok := strings.Cut(fields[0], "-")
	if !ok {
		return Mapping{}, fmt.Errorf("malformed address range %q", fields[0])
	}
	start, err := strconv.ParseUint(lo, 16, 64)
	if err != nil {
		return Mapping{}, fmt.Errorf("parsing range start %q: %w", lo, err)
	}
	end, err := strconv.ParseUint(hi, 16, 64)
	if err != nil {
		return Mapping{}, fmt.Errorf("parsing range end %q: %w", hi, err)
	}

	offset, err := strconv.ParseUint(fields[2], 16, 64)
	if err != nil {
		return Mapping{}, fmt.Errorf("parsing offset %q: %w", fields[2], err)
	}

	majStr, minStr, ok := strings.Cut(fields[3], ":")
	if !ok {
		return Mapping{}, fmt.Errorf("malformed device %q", fields[3])
	}
	major, err := strconv.ParseUint(majStr, 16, 32)
	if err != nil {
		return Mapping{}, fmt.Errorf("parsing device major %q: %w", majStr, err)
	}
	minor, err := strconv.ParseUint(minStr, 16, 32)
	if err != nil {
		return Mapping{}, fmt.Errorf("parsing device minor %q: %w", minStr, err)
	}

	inode, err := strconv.ParseUint(fields[4], 10, 64)
	if err != nil {
		return Mapping{}, fmt.Errorf("parsing inode %q: %w", fields[4], err)
	}

	var path string
	if len(fields) > 5 {
		path = strings.Join(fields[5:], " ")
	}

	return Mapping{
		Start:  uintptr(start),
		End:    uintptr(end),
		Perms:  fields[1],
		Offset: offset,
		Dev:    unix.Mkdev(uint32(major), uint32(minor)),
		Inode:  inode,
		Path:   path,
	}, nil
}

// Find returns the mapping containing addr, or nil if no mapping does.
func Find(maps []Mapping, addr uintptr) *Mapping {
	for i := range maps {
		if maps[i].Contains(addr) {
			return &maps[i]
		}
	}
	return nil
}
