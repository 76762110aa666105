package main

import (
	"bytes"
	"os"
	"testing"
)

// The soc package is checked in. Catch drift between it and csr.json.
func TestGeneratedInSync(t *testing.T) {
	desc, err := parseCSRJSON("../../csr.json")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := generate(&buf, "soc", desc); err != nil {
		t.Fatal(err)
	}

	checkedIn, err := os.ReadFile("../../soc/soc.go")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), checkedIn) {
		t.Error("soc/soc.go is out of date, rerun csrgen")
		t.Logf("generated:\n%s", buf.Bytes())
	}
}

func TestCamel(t *testing.T) {
	for in, want := range map[string]string{
		"uart":       "Uart",
		"timer0":     "Timer0",
		"main_ram":   "MainRam",
		"sdram_dfii": "SdramDfii",
	} {
		if got := camel(in); got != want {
			t.Errorf("camel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGenerateDefaults(t *testing.T) {
	var buf bytes.Buffer
	err := generate(&buf, "soc", &csrDesc{
		Constants: map[string]any{"config_clock_frequency": float64(50000000)},
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"FirqOffset = 16",
		"FirqWidth  = 16",
		"ClockFrequency = 50000000",
	} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("generated output missing %q:\n%s", want, buf.Bytes())
		}
	}
}
