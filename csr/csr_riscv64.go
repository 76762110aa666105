//go:build riscv64

package csr

// HW returns the register file of the executing hart, backed by the
// csrr/csrw/csrrs/csrrc instructions. Only the interrupt related registers
// are wired up, accessing others panics.
func HW() Hart { return hw{} }

type hw struct{}

func (hw) Read(r Reg) uint32 {
	switch r {
	case Mstatus:
		return csrrMstatus()
	case Mie:
		return csrrMie()
	case Mip:
		return csrrMip()
	}
	panic("csr: read of unwired register")
}

func (hw) Write(r Reg, v uint32) {
	switch r {
	case Mstatus:
		csrwMstatus(v)
	case Mie:
		csrwMie(v)
	case Mip:
		csrwMip(v)
	default:
		panic("csr: write of unwired register")
	}
}

func (hw) Set(r Reg, bits uint32) {
	switch r {
	case Mstatus:
		csrsMstatus(bits)
	case Mie:
		csrsMie(bits)
	case Mip:
		csrsMip(bits)
	default:
		panic("csr: set of unwired register")
	}
}

func (hw) Clear(r Reg, bits uint32) {
	switch r {
	case Mstatus:
		csrcMstatus(bits)
	case Mie:
		csrcMie(bits)
	case Mip:
		csrcMip(bits)
	default:
		panic("csr: clear of unwired register")
	}
}

// Implemented in csr_riscv64.s. The csr number is an instruction immediate,
// hence one function per register.

//go:nosplit
func csrrMstatus() uint32

//go:nosplit
func csrrMie() uint32

//go:nosplit
func csrrMip() uint32

//go:nosplit
func csrwMstatus(v uint32)

//go:nosplit
func csrwMie(v uint32)

//go:nosplit
func csrwMip(v uint32)

//go:nosplit
func csrsMstatus(bits uint32)

//go:nosplit
func csrsMie(bits uint32)

//go:nosplit
func csrsMip(bits uint32)

//go:nosplit
func csrcMstatus(bits uint32)

//go:nosplit
func csrcMie(bits uint32)

//go:nosplit
func csrcMip(bits uint32)
