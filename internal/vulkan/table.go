package vulkan

import (
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/interpose/chain"
)

// Resolver asks the next link for the address of a named entry point
type Resolver func(name string) chain.ProcAddr

// Table holds the next link's entry point addresses for one instance or device. The
// fixed command list is resolved once at construction, then the table is read-only.
type Table struct {
	entries *swiss.Map[string, chain.ProcAddr]
	resolve Resolver
}

// NewTable resolves every name in commands through resolve. Unsupported entry points are
// kept as null addresses so they are not resolved again.
func NewTable(resolve Resolver, commands []string) *Table {
	table := &Table{
		entries: swiss.NewMap[string, chain.ProcAddr](uint32(len(commands))),
		resolve: resolve,
	}

	for _, name := range commands {
		table.entries.Put(name, resolve(name))
	}

	return table
}

func NewInstanceTable(resolve Resolver) *Table {
	return NewTable(resolve, InstanceCommands)
}

func NewDeviceTable(resolve Resolver) *Table {
	return NewTable(resolve, DeviceCommands)
}

// Lookup returns the address of name. Names outside the resolved command list go straight
// to the next link without being cached.
func (t *Table) Lookup(name string) chain.ProcAddr {
	address, ok := t.entries.Get(name)
	if ok {
		return address
	}

	return t.resolve(name)
}

// Contains reports whether name was part of the resolved command list
func (t *Table) Contains(name string) bool {
	return t.entries.Has(name)
}

// Len is the size of the resolved command list
func (t *Table) Len() int {
	return t.entries.Count()
}

// Supported is the number of resolved entry points that the next link provides
func (t *Table) Supported() int {
	var count int
	t.entries.Iter(func(name string, address chain.ProcAddr) bool {
		if address != chain.NullProcAddr {
			count++
		}
		return false
	})
	return count
}
