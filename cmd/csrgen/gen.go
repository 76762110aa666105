package main

import (
	"encoding/json"
	"fmt"
	"go/format"
	"io"
	"os"
	"sort"
	"strings"
	"text/template"
)

type memRegion struct {
	Base uint32 `json:"base"`
	Size uint32 `json:"size"`
	Type string `json:"type"`
}

// csrDesc is the subset of LiteX's csr.json consumed here. csr_registers is
// deliberately ignored: individual register offsets are the drivers'
// business and kept in their packages.
type csrDesc struct {
	CSRBases  map[string]uint32    `json:"csr_bases"`
	Constants map[string]any       `json:"constants"`
	Memories  map[string]memRegion `json:"memories"`
}

func parseCSRJSON(path string) (*csrDesc, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	desc := new(csrDesc)
	if err := json.NewDecoder(f).Decode(desc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return desc, nil
}

type constant struct {
	Name, Value string
}

type genData struct {
	Pkg            string
	Name           string
	ClockFrequency int
	FirqOffset     int
	FirqWidth      int
	Interrupts     []constant
	Bases          []constant
	Memories       []constant
}

// generate renders the register map package and writes it gofmt'ed to w.
func generate(w io.Writer, pkg string, desc *csrDesc) error {
	intConst := func(key string, def int) int {
		if v, ok := desc.Constants[key].(float64); ok {
			return int(v)
		}
		return def
	}

	data := genData{
		Pkg:            pkg,
		ClockFrequency: intConst("config_clock_frequency", 0),
		FirqOffset:     intConst("firq_offset", 16),
		FirqWidth:      intConst("firq_width", 16),
	}
	if name, ok := desc.Constants["identifier"].(string); ok {
		data.Name = name
	}

	type lineName struct {
		name string
		line int
	}
	var irqs []lineName
	for key, v := range desc.Constants {
		periph, ok := strings.CutSuffix(key, "_interrupt")
		if !ok {
			continue
		}
		line, ok := v.(float64)
		if !ok {
			return fmt.Errorf("constant %s: not a number", key)
		}
		irqs = append(irqs, lineName{camel(periph) + "Interrupt", int(line)})
	}
	sort.Slice(irqs, func(i, j int) bool { return irqs[i].line < irqs[j].line })
	for _, i := range irqs {
		data.Interrupts = append(data.Interrupts, constant{i.name, fmt.Sprintf("%d", i.line)})
	}

	type addrName struct {
		name string
		addr uint32
	}
	var bases []addrName
	for name, addr := range desc.CSRBases {
		bases = append(bases, addrName{name, addr})
	}
	sort.Slice(bases, func(i, j int) bool { return bases[i].addr < bases[j].addr })
	for _, b := range bases {
		data.Bases = append(data.Bases, constant{
			Name:  camel(b.name) + "Base",
			Value: fmt.Sprintf("%#010x", b.addr),
		})
	}

	var mems []addrName
	for name, m := range desc.Memories {
		mems = append(mems, addrName{name, m.Base})
	}
	sort.Slice(mems, func(i, j int) bool { return mems[i].addr < mems[j].addr })
	for _, m := range mems {
		region := desc.Memories[m.name]
		data.Memories = append(data.Memories,
			constant{camel(m.name) + "Base", fmt.Sprintf("%#010x", region.Base)},
			constant{camel(m.name) + "Size", fmt.Sprintf("%#010x", region.Size)})
	}

	var buf strings.Builder
	if err := socTmpl.Execute(&buf, &data); err != nil {
		return err
	}
	src, err := format.Source([]byte(buf.String()))
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}
	_, err = w.Write(src)
	return err
}

// camel converts a LiteX snake_case name to an exported Go identifier.
func camel(s string) string {
	parts := strings.Split(s, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, "")
}

var socTmpl = template.Must(template.New("soc").Parse(`// Code generated by csrgen; DO NOT EDIT.

// Package {{.Pkg}} holds the register map of the SoC, generated from the LiteX
// csr.json description. Regenerate with:
//
//	csrgen -pkg {{.Pkg}} -o {{.Pkg}}/{{.Pkg}}.go csr.json
package {{.Pkg}}

// Identity
const (
{{- if .Name}}
	Name = "{{.Name}}"
{{- end}}
	ClockFrequency = {{.ClockFrequency}}
)

// Fast interrupts occupy a contiguous window in mie/mip starting at
// FirqOffset. FirqWidth bits are implemented, bits above it read as zero.
const (
	FirqOffset = {{.FirqOffset}}
	FirqWidth  = {{.FirqWidth}}
)
{{- if .Interrupts}}

// Interrupt lines, as bit positions within the FIRQ window.
const (
{{- range .Interrupts}}
	{{.Name}} = {{.Value}}
{{- end}}
)
{{- end}}
{{- if .Bases}}

// Peripheral register block base addresses.
const (
{{- range .Bases}}
	{{.Name}} = {{.Value}}
{{- end}}
)
{{- end}}
{{- if .Memories}}

// Memory regions.
const (
{{- range .Memories}}
	{{.Name}} = {{.Value}}
{{- end}}
)
{{- end}}
`))
