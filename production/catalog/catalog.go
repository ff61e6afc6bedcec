// Package catalog holds the fixed list of flavors and production machines.
// A Catalog is loaded once at startup and never changes afterwards.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

var ErrInvalidCatalog = errors.New("invalid catalog")

type Machine struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
	Slug string `yaml:"slug"`
}

type Catalog struct {
	flavors  []string
	machines []Machine
	byID     map[int64]int
	flavorOK map[string]struct{}
}

type file struct {
	Flavors  []string  `yaml:"flavors"`
	Machines []Machine `yaml:"machines"`
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog from path, or the embedded default when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %q: %w", path, err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(f.Flavors, f.Machines)
}

// New validates and copies flavors and machines. Machine order is significant:
// it is the tie-break order used when distributing load.
func New(flavors []string, machines []Machine) (*Catalog, error) {
	if len(flavors) == 0 {
		return nil, fmt.Errorf("%w: no flavors", ErrInvalidCatalog)
	}
	if len(machines) == 0 {
		return nil, fmt.Errorf("%w: no machines", ErrInvalidCatalog)
	}

	c := &Catalog{
		flavors:  make([]string, 0, len(flavors)),
		machines: make([]Machine, 0, len(machines)),
		byID:     make(map[int64]int, len(machines)),
		flavorOK: make(map[string]struct{}, len(flavors)),
	}

	for _, fl := range flavors {
		fl = strings.TrimSpace(fl)
		if fl == "" {
			return nil, fmt.Errorf("%w: empty flavor", ErrInvalidCatalog)
		}
		if _, dup := c.flavorOK[fl]; dup {
			return nil, fmt.Errorf("%w: duplicate flavor %q", ErrInvalidCatalog, fl)
		}
		c.flavorOK[fl] = struct{}{}
		c.flavors = append(c.flavors, fl)
	}

	slugs := make(map[string]struct{}, len(machines))
	for _, m := range machines {
		m.Slug = strings.TrimSpace(m.Slug)
		m.Name = strings.TrimSpace(m.Name)
		if m.ID <= 0 {
			return nil, fmt.Errorf("%w: machine id must be positive, got %d", ErrInvalidCatalog, m.ID)
		}
		if _, dup := c.byID[m.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate machine id %d", ErrInvalidCatalog, m.ID)
		}
		if m.Slug == "" {
			return nil, fmt.Errorf("%w: machine %d has no slug", ErrInvalidCatalog, m.ID)
		}
		if _, dup := slugs[m.Slug]; dup {
			return nil, fmt.Errorf("%w: duplicate machine slug %q", ErrInvalidCatalog, m.Slug)
		}
		if m.Name == "" {
			m.Name = m.Slug
		}
		slugs[m.Slug] = struct{}{}
		c.byID[m.ID] = len(c.machines)
		c.machines = append(c.machines, m)
	}

	return c, nil
}

func (c *Catalog) Flavors() []string {
	out := make([]string, len(c.flavors))
	copy(out, c.flavors)
	return out
}

func (c *Catalog) Machines() []Machine {
	out := make([]Machine, len(c.machines))
	copy(out, c.machines)
	return out
}

func (c *Catalog) Machine(id int64) (Machine, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Machine{}, false
	}
	return c.machines[i], true
}

func (c *Catalog) HasFlavor(flavor string) bool {
	_, ok := c.flavorOK[flavor]
	return ok
}

// Snapshot is the plain-text view of the catalog handed to the assistant.
func (c *Catalog) Snapshot() string {
	names := make([]string, 0, len(c.machines))
	for _, m := range c.machines {
		names = append(names, m.Name)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Sabores disponíveis (%d): %s.\n", len(c.flavors), strings.Join(c.flavors, ", "))
	fmt.Fprintf(&sb, "Máquinas: %s.", strings.Join(names, ", "))
	return sb.String()
}
