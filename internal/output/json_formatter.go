package output

import (
	"encoding/json"
	"fmt"
	"io"

	"phdrs"
)

// JSONFormatter renders objects as an indented JSON array on a single
// writer, one element per object.
type JSONFormatter struct {
	w io.Writer
}

// NewJSONFormatter creates a JSON formatter.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{w: w}
}

type jsonHeader struct {
	Type      string `json:"type"`
	TypeCode  uint32 `json:"type_code"`
	Flags     string `json:"flags"`
	FlagsCode uint32 `json:"flags_code"`
	Offset    uint64 `json:"offset"`
	Vaddr     uint64 `json:"vaddr"`
	Paddr     uint64 `json:"paddr"`
	Filesz    uint64 `json:"filesz"`
	Memsz     uint64 `json:"memsz"`
	Align     uint64 `json:"align"`
}

type jsonObject struct {
	Addr     uint64       `json:"addr"`
	Name     string       `json:"name"`
	Path     string       `json:"path,omitempty"`
	NumPhdrs uint16       `json:"num_phdrs"`
	Phdrs    []jsonHeader `json:"phdrs"`
}

// Write renders every object and its program headers as JSON.
func (f *JSONFormatter) Write(objs []phdrs.Object) error {
	out := make([]jsonObject, 0, len(objs))
	for _, o := range objs {
		jo := jsonObject{
			Addr:     uint64(o.Addr()),
			Name:     o.Name(),
			NumPhdrs: o.NumPhdrs(),
			Phdrs:    make([]jsonHeader, 0, o.NumPhdrs()),
		}
		if path, err := o.Path(); err == nil {
			jo.Path = path
		}
		for p := range o.Phdrs() {
			jo.Phdrs = append(jo.Phdrs, jsonHeader{
				Type:      phdrs.TypeName(p.Type()),
				TypeCode:  p.Type(),
				Flags:     phdrs.FlagString(p.Flags()),
				FlagsCode: p.Flags(),
				Offset:    p.Offset(),
				Vaddr:     p.Vaddr(),
				Paddr:     p.Paddr(),
				Filesz:    p.Filesz(),
				Memsz:     p.Memsz(),
				Align:     p.Align(),
			})
		}
		out = append(out, jo)
	}

	enc := json.NewEncoder(f.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding objects: %w", err)
	}
	return nil
}
