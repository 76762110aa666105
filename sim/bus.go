package sim

import (
	"fmt"

	"github.com/mgrbr/vexsoc/debug"
)

// Device is a block of 32-bit registers on the CSR bus. Offsets are in bytes
// relative to the block's base and always word aligned.
type Device interface {
	Load(off uint32) uint32
	Store(off uint32, v uint32)
	Size() uint32
}

type span struct {
	base uint32
	dev  Device
}

// Bus dispatches word accesses to the mapped register blocks, like the
// SoC's CSR bus decoder.
type Bus struct {
	spans []span
}

// Map adds dev's register block at base. Blocks must not overlap.
func (b *Bus) Map(base uint32, dev Device) {
	if debug.Enabled {
		for _, s := range b.spans {
			debug.Assert(base+dev.Size() <= s.base || base >= s.base+s.dev.Size(),
				"sim: overlapping bus mapping")
		}
	}
	b.spans = append(b.spans, span{base, dev})
}

func (b *Bus) Load32(addr uint32) uint32 {
	s := b.find(addr)
	return s.dev.Load(addr - s.base)
}

func (b *Bus) Store32(addr uint32, v uint32) {
	s := b.find(addr)
	s.dev.Store(addr-s.base, v)
}

func (b *Bus) find(addr uint32) *span {
	for i := range b.spans {
		s := &b.spans[i]
		if addr >= s.base && addr < s.base+s.dev.Size() {
			return s
		}
	}
	panic(fmt.Sprintf("sim: unmapped bus address %#08x", addr))
}
