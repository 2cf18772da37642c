package plan

import (
	"fmt"
	"slices"
)

// Cache is the set of files resident on the disk. Used() never exceeds the
// instance capacity: Load refuses a file that does not fit.
// Files are kept in residency order.
type Cache struct {
	inst     *Instance
	files    []int
	resident []bool
	used     uint64
}

// NewCache returns an empty disk for inst.
func NewCache(inst *Instance) *Cache {
	return &Cache{
		inst:     inst,
		resident: make([]bool, len(inst.Files)),
	}
}

// Clone returns an independent copy.
func (c *Cache) Clone() *Cache {
	return &Cache{
		inst:     c.inst,
		files:    slices.Clone(c.files),
		resident: slices.Clone(c.resident),
		used:     c.used,
	}
}

// Contains reports whether file index f is resident.
func (c *Cache) Contains(f int) bool {
	return c.resident[f]
}

// Files returns the resident file indices in residency order.
// Callers must not modify the returned slice.
func (c *Cache) Files() []int {
	return c.files
}

// Len returns the number of resident files.
func (c *Cache) Len() int {
	return len(c.files)
}

// Used returns the resident bytes.
func (c *Cache) Used() uint64 {
	return c.used
}

// Headroom returns the free bytes.
func (c *Cache) Headroom() uint64 {
	return c.inst.Capacity - c.used
}

// Load makes f resident. Loading a resident file is a no-op.
func (c *Cache) Load(f int) error {
	if c.resident[f] {
		return nil
	}
	size := c.inst.Files[f].Size
	if size > c.Headroom() {
		return fmt.Errorf("loading %q (%d bytes) with %d bytes free: %w",
			c.inst.Files[f].Name, size, c.Headroom(), ErrCapacityExceeded)
	}
	c.resident[f] = true
	c.files = append(c.files, f)
	c.used += size
	return nil
}

// Evict removes f. Evicting a file that is not resident is a no-op.
func (c *Cache) Evict(f int) {
	if !c.resident[f] {
		return
	}
	c.resident[f] = false
	c.used -= c.inst.Files[f].Size
	c.files = slices.DeleteFunc(c.files, func(x int) bool { return x == f })
}

// Missing returns the files of t that are not resident, First before Second.
func (c *Cache) Missing(t Task) []int {
	var missing []int
	if !c.resident[t.First] {
		missing = append(missing, t.First)
	}
	if !c.resident[t.Second] {
		missing = append(missing, t.Second)
	}
	return missing
}

// IsSatisfied reports whether both files of t are resident in c.
func IsSatisfied(c *Cache, t Task) bool {
	return c.Contains(t.First) && c.Contains(t.Second)
}
