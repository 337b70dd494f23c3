// dump-phdrs prints every object loaded into its own address space together
// with each object's ELF program headers.
package main

import (
	"fmt"
	"log"
	"os"

	"phdrs"
	"phdrs/internal/config"
	"phdrs/internal/filter"
	"phdrs/internal/output"
	"phdrs/internal/procmaps"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	cfg, err := config.ParseArgs(os.Args)
	if err != nil {
		return err
	}

	objs := phdrs.Objects()

	if cfg.Filter != "" {
		objs, err = applyFilter(cfg.Filter, objs)
		if err != nil {
			return err
		}
	}

	formatter, err := newFormatter(cfg)
	if err != nil {
		return err
	}

	return formatter.Write(objs)
}

// applyFilter keeps only the objects the filter expression selects.
func applyFilter(src string, objs []phdrs.Object) ([]phdrs.Object, error) {
	f, err := filter.Compile(src)
	if err != nil {
		return nil, err
	}

	var kept []phdrs.Object
	for _, o := range objs {
		path, err := o.Path()
		if err != nil {
			return nil, fmt.Errorf("resolving path of %s: %w", o, err)
		}
		keep, err := f.Match(o.Name(), path, uint64(o.Addr()), int(o.NumPhdrs()))
		if err != nil {
			return nil, err
		}
		if keep {
			kept = append(kept, o)
		}
	}
	return kept, nil
}

func newFormatter(cfg *config.Config) (output.Formatter, error) {
	switch cfg.Format {
	case config.FormatJSON:
		return output.NewJSONFormatter(os.Stdout), nil
	case config.FormatText:
		maps, err := procmaps.Self()
		if err != nil {
			// Annotations are best effort; the dump works without them.
			log.Printf("reading /proc/self/maps: %v", err)
		}
		return output.NewTextFormatter(os.Stdout, maps), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", cfg.Format)
	}
}
