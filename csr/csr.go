// Package csr defines the machine control and status registers of the SoC's
// RISC-V core and an access interface over them.
//
// The register numbers follow the RISC-V privileged specification. Only the
// machine-mode registers actually present on the Minerva/VexRiscv class cores
// generated by LiteX are listed.
package csr

// Reg is the number of a control and status register, as encoded in the
// immediate field of the csrr* instructions.
type Reg uint16

const (
	Mstatus Reg = 0x300
	Misa    Reg = 0x301
	Mie     Reg = 0x304
	Mtvec   Reg = 0x305

	Mscratch Reg = 0x340
	Mepc     Reg = 0x341
	Mcause   Reg = 0x342
	Mtval    Reg = 0x343
	Mip      Reg = 0x344

	Mvendorid Reg = 0xf11
	Marchid   Reg = 0xf12
	Mimpid    Reg = 0xf13
	Mhartid   Reg = 0xf14
)

// mstatus fields
const (
	StatusMIE  uint32 = 1 << 3 // machine interrupt enable
	StatusMPIE uint32 = 1 << 7 // MIE before trap entry
	StatusMPP  uint32 = 3 << 11
)

// Standard interrupt bits, shared by mie and mip. The FIRQ lines of the SoC
// live above these, see the soc package.
const (
	IntSoftware uint32 = 1 << 3
	IntTimer    uint32 = 1 << 7
	IntExternal uint32 = 1 << 11
)

// mcause has the interrupt bit set if the trap was caused by an interrupt.
const CauseInterrupt uint32 = 1 << 31

// Hart provides access to the register file of a single hart. There is
// exactly one register file per hart, bound to the hardware itself. Keep the
// handle explicit instead of a package global, so multi-hart targets can hold
// one per hart.
//
// Set and Clear have csrrs/csrrc semantics: each is a single atomic
// read-modify-write of the register, touching only the given bits. They are
// safe to use from any context, including interrupt handlers.
type Hart interface {
	Read(r Reg) uint32
	Write(r Reg, v uint32)
	Set(r Reg, bits uint32)
	Clear(r Reg, bits uint32)
}
