// Csrgen generates the soc package from a LiteX csr.json description.
//
// LiteX emits the SoC's register map (peripheral base addresses, interrupt
// assignments, memory regions, configuration constants) as csr.json during
// the gateware build. This keeps the Go side bit-exact with the bitstream:
// regenerate after every gateware change.
//
// Usage:
//
//	csrgen [-pkg name] [-o file] [-diff] csr.json
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
)

const usageString = `Generate the SoC register map package from a LiteX csr.json.

Usage: %s [flags] <csr.json>

`

var (
	outfile = flag.String("o", "", "write to file instead of stdout")
	pkgname = flag.String("pkg", "soc", "package name of the generated file")
	diff    = flag.Bool("diff", false, "diff against the existing file instead of writing")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.Default().SetFlags(0)
	log.Default().SetPrefix("csrgen: ")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	desc, err := parseCSRJSON(flag.Arg(0))
	if err != nil {
		log.Fatalln(err)
	}

	var buf bytes.Buffer
	if err := generate(&buf, *pkgname, desc); err != nil {
		log.Fatalln(err)
	}

	if *diff {
		if *outfile == "" {
			log.Fatalln("-diff requires -o")
		}
		old, err := os.ReadFile(*outfile)
		if err != nil {
			log.Fatalln(err)
		}
		if !printDiff(old, buf.Bytes()) {
			os.Exit(1)
		}
		return
	}

	if *outfile == "" {
		os.Stdout.Write(buf.Bytes())
		return
	}
	if err := os.WriteFile(*outfile, buf.Bytes(), 0o666); err != nil {
		log.Fatalln(err)
	}
}

// printDiff prints a line diff between the checked in file and the generated
// one. Returns true if they are identical.
func printDiff(old, new []byte) bool {
	if bytes.Equal(old, new) {
		return true
	}
	oldLines := bytes.Split(old, []byte("\n"))
	newLines := bytes.Split(new, []byte("\n"))
	for i := 0; i < len(oldLines) || i < len(newLines); i++ {
		var o, n []byte
		if i < len(oldLines) {
			o = oldLines[i]
		}
		if i < len(newLines) {
			n = newLines[i]
		}
		if bytes.Equal(o, n) {
			continue
		}
		if o != nil {
			color.Red("-%s", o)
		}
		if n != nil {
			color.Green("+%s", n)
		}
	}
	color.Yellow("register map is out of date, rerun csrgen")
	return false
}
