// Package irq provides the machine-level interrupt controls of a single
// hart: the global interrupt enable flag in mstatus and the fast interrupt
// (FIRQ) mask and pending windows in mie/mip.
//
// A pending interrupt traps the core only if its mask bit and the global
// enable flag are both set. That gate is wired in hardware, the package only
// exposes its inputs.
package irq

import (
	"github.com/mgrbr/vexsoc/csr"
	"github.com/mgrbr/vexsoc/soc"
)

// Line is a fast interrupt source, numbered from the start of the FIRQ
// window. The SoC's line assignments are in the soc package.
type Line uint8

// Mask returns the line's bit within the FIRQ window.
func (l Line) Mask() uint32 { return 1 << l }

// Controller operates the interrupt registers of one hart. Create one per
// hart, there is no meaningful zero value.
//
// All operations are single register accesses: non-blocking, constant time
// and without failure modes. SetEnabled and the Update* helpers are safe in
// any context, including interrupt handlers.
type Controller struct {
	hart csr.Hart
}

func NewController(hart csr.Hart) *Controller {
	return &Controller{hart: hart}
}

// Enabled reports whether interrupts can trap the core at all.
func (c *Controller) Enabled() bool {
	return c.hart.Read(csr.Mstatus)&csr.StatusMIE != 0
}

// SetEnabled sets or clears the global interrupt enable flag with a single
// csrrs/csrrc. All other mstatus bits are untouched by construction of that
// primitive, no masking in software is involved.
func (c *Controller) SetEnabled(en bool) {
	if en {
		c.hart.Set(csr.Mstatus, csr.StatusMIE)
	} else {
		c.hart.Clear(csr.Mstatus, csr.StatusMIE)
	}
}

// Mask returns the FIRQ enable bitmap. Bits at and above soc.FirqWidth are
// unimplemented and must be ignored by the caller.
func (c *Controller) Mask() uint32 {
	return c.hart.Read(csr.Mie) >> soc.FirqOffset
}

// SetMask replaces the FIRQ enable bitmap with m. It writes the whole mie
// register, so any previously enabled line not set in m becomes masked.
//
// Bits below the FIRQ window are written as zero. On this SoC the standard
// software/timer/external enables are not wired up (all sources are FIRQs),
// so the raw write clobbers nothing. Use UpdateMask to change single lines.
func (c *Controller) SetMask(m uint32) {
	c.hart.Write(csr.Mie, m<<soc.FirqOffset)
}

// Pending returns the FIRQ pending bitmap, a snapshot valid only at the
// instant of the read. Pending bits are latched and cleared by hardware, for
// most peripherals by acknowledging the event in the device's event block.
func (c *Controller) Pending() uint32 {
	return c.hart.Read(csr.Mip) >> soc.FirqOffset
}

// Suspend clears the global enable flag and returns the prior state, for
// scoping a critical section:
//
//	defer c.Resume(c.Suspend())
func (c *Controller) Suspend() (prior bool) {
	prior = c.Enabled()
	c.SetEnabled(false)
	return
}

// Resume restores the global enable flag saved by Suspend.
func (c *Controller) Resume(prior bool) {
	c.SetEnabled(prior)
}

// UpdateMask sets and then clears the given lines in the FIRQ enable bitmap,
// leaving all others as they are. The read-modify-write runs with the global
// enable flag cleared, so an interrupt taken in between cannot lose a
// concurrent mask change. The prior enable state is restored on return.
func (c *Controller) UpdateMask(set, clear uint32) {
	defer c.Resume(c.Suspend())
	c.SetMask(c.Mask()&^clear | set)
}

// Enable unmasks the given lines, preserving the rest of the mask.
func (c *Controller) Enable(lines ...Line) {
	c.UpdateMask(lineMask(lines), 0)
}

// Disable masks the given lines, preserving the rest of the mask.
func (c *Controller) Disable(lines ...Line) {
	c.UpdateMask(0, lineMask(lines))
}

func lineMask(lines []Line) (m uint32) {
	for _, l := range lines {
		m |= l.Mask()
	}
	return
}
