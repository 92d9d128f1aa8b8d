package main

import (
	"flag"
	"io"
	"testing"

	"github.com/gonewx/tubeflow/internal/fluid"
)

func TestExplicitFlags(t *testing.T) {
	fs := flag.NewFlagSet("fluidterm", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Bool("t-junction", false, "")
	fs.Int("fps", 60, "")

	if err := fs.Parse([]string{"--t-junction=false"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	set := explicitFlags(fs)
	if !set["t-junction"] {
		t.Error("t-junction should be reported as set")
	}
	if set["fps"] {
		t.Error("fps was not given and should not be reported")
	}
}

func TestOverrideTJunction(t *testing.T) {
	tests := []struct {
		name      string
		config    bool
		set       map[string]bool
		flagValue bool
		want      bool
	}{
		{"未指定时保留配置开启", true, map[string]bool{}, false, true},
		{"未指定时保留配置关闭", false, map[string]bool{}, false, false},
		{"显式关闭覆盖配置", true, map[string]bool{"t-junction": true}, false, false},
		{"显式开启覆盖配置", false, map[string]bool{"t-junction": true}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := fluid.DefaultParams()
			p.TJunction = tt.config

			got := overrideTJunction(p, tt.set, tt.flagValue)
			if got.TJunction != tt.want {
				t.Errorf("TJunction = %v, want %v", got.TJunction, tt.want)
			}
			if got.TubeLength != p.TubeLength {
				t.Errorf("TubeLength changed to %v", got.TubeLength)
			}
		})
	}
}
