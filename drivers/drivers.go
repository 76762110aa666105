// Builds upon the csr and irq packages to provide drivers for the SoC's
// peripherals.
package drivers

// Bus is the word access a driver needs to its register block. On hardware
// the registers are plain memory mapped loads and stores, host-side the sim
// package provides the same interface.
type Bus interface {
	Load32(addr uint32) uint32
	Store32(addr uint32, v uint32)
}

// Event block register offsets, shared by all LiteX peripherals that signal
// interrupts: raw levels, latched pending (write 1 to clear) and the enable
// gate for the peripheral's interrupt line.
const (
	EvStatus  = 0x0
	EvPending = 0x4
	EvEnable  = 0x8
)
