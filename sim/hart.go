// Package sim models the SoC on the host: the hart's register file, the CSR
// bus and the peripherals' register blocks. It backs the package tests and
// allows developing against the exact register ABI without hardware
// attached.
package sim

import "github.com/mgrbr/vexsoc/csr"

// Hart models the machine-mode register file of a single RV32 hart. It
// implements csr.Hart.
//
// Hart is not safe for concurrent use. The real register file has no
// concurrency either, a hart races only with its own interrupt handlers.
type Hart struct {
	mstatus  uint32
	mie      uint32
	mtvec    uint32
	mscratch uint32
	mepc     uint32
	mcause   uint32
	mtval    uint32
	mip      uint32
	hartid   uint32
}

func NewHart(hartid uint32) *Hart {
	return &Hart{hartid: hartid}
}

func (h *Hart) Read(r csr.Reg) uint32 {
	switch r {
	case csr.Mstatus:
		return h.mstatus
	case csr.Mie:
		return h.mie
	case csr.Mtvec:
		return h.mtvec
	case csr.Mscratch:
		return h.mscratch
	case csr.Mepc:
		return h.mepc
	case csr.Mcause:
		return h.mcause
	case csr.Mtval:
		return h.mtval
	case csr.Mip:
		return h.mip
	case csr.Mhartid:
		return h.hartid
	}
	panic("sim: read of unwired csr")
}

func (h *Hart) Write(r csr.Reg, v uint32) {
	switch r {
	case csr.Mstatus:
		h.mstatus = v
	case csr.Mie:
		h.mie = v
	case csr.Mtvec:
		h.mtvec = v
	case csr.Mscratch:
		h.mscratch = v
	case csr.Mepc:
		h.mepc = v &^ 1
	case csr.Mcause:
		h.mcause = v
	case csr.Mtval:
		h.mtval = v
	case csr.Mip:
		h.mip = v
	case csr.Mhartid:
		// read-only
	default:
		panic("sim: write of unwired csr")
	}
}

// Set has csrrs semantics: a single read-modify-write setting only bits.
func (h *Hart) Set(r csr.Reg, bits uint32) {
	h.Write(r, h.Read(r)|bits)
}

// Clear has csrrc semantics: a single read-modify-write clearing only bits.
func (h *Hart) Clear(r csr.Reg, bits uint32) {
	h.Write(r, h.Read(r)&^bits)
}

// RaiseFirq latches the hardware side of a fast interrupt line into mip, as
// a peripheral's event block would.
func (h *Hart) RaiseFirq(line int) {
	h.mip |= firqBit(line)
}

// ClearFirq deasserts a fast interrupt line.
func (h *Hart) ClearFirq(line int) {
	h.mip &^= firqBit(line)
}

// PendingTrap reports whether the hart would take an interrupt trap now:
// the global enable flag is set and an unmasked interrupt is pending. This
// is the hardware AND gate behind the interrupt registers, software never
// computes it on the real core.
func (h *Hart) PendingTrap() bool {
	return h.mstatus&csr.StatusMIE != 0 && h.mie&h.mip != 0
}
