// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"io"
	"reflect"
	"testing"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("indelmap")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestParseArgsDefaults(t *testing.T) {
	opt, err := parse(t, "-s", "seqs.fasta", "-t", "tree.nwk", "-m", "JC69")
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if opt.GapOpen != 2.5 || opt.GapExt != 0.5 {
		t.Errorf("gap defaults = %v/%v, want 2.5/0.5", opt.GapOpen, opt.GapExt)
	}
	if opt.Categories != 4 {
		t.Errorf("categories = %d, want 4", opt.Categories)
	}
	if opt.Rounding != "none" {
		t.Errorf("rounding = %q, want none", opt.Rounding)
	}
	if opt.OutputMSAFile != "msa.fasta" {
		t.Errorf("output file = %q, want msa.fasta", opt.OutputMSAFile)
	}
	if opt.Output != OutputFasta {
		t.Errorf("output format = %q, want fasta", opt.Output)
	}
}

func TestParseArgsLongAndShortAliases(t *testing.T) {
	long, err := parse(t,
		"--seq-file", "s.fa", "--tree-file", "t.nwk", "--model", "gtr",
		"--model-params", "0.25,0.25,0.25,0.25,1,1,1,1,1,1",
		"--gap-open", "3", "--gap-ext", "0.75", "--categories", "2")
	if err != nil {
		t.Fatalf("long: %v", err)
	}
	short, err := parse(t,
		"-s", "s.fa", "-t", "t.nwk", "-m", "gtr",
		"-p", "0.25 0.25 0.25 0.25 1 1 1 1 1 1",
		"-g", "3", "-e", "0.75", "-c", "2")
	if err != nil {
		t.Fatalf("short: %v", err)
	}
	long.explicit, short.explicit = nil, nil
	if !reflect.DeepEqual(long, short) {
		t.Errorf("long/short mismatch:\n%+v\n%+v", long, short)
	}
}

func TestParseArgsExplicit(t *testing.T) {
	opt, err := parse(t, "-s", "s.fa", "-t", "t.nwk", "-m", "jc69", "-g", "3")
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	for name, want := range map[string]bool{
		"seq-file": true, "tree-file": true, "model": true,
		"gap-open": true, "gap-ext": false, "categories": false,
	} {
		if got := opt.Explicit(name); got != want {
			t.Errorf("Explicit(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestParseArgsValidation(t *testing.T) {
	cases := []struct {
		name string
		argv []string
	}{
		{"missing seq", []string{"-t", "t.nwk", "-m", "jc69"}},
		{"missing tree", []string{"-s", "s.fa", "-m", "jc69"}},
		{"missing model", []string{"-s", "s.fa", "-t", "t.nwk"}},
		{"bad gap open", []string{"-s", "s.fa", "-t", "t.nwk", "-m", "jc69", "-g", "0"}},
		{"bad categories", []string{"-s", "s.fa", "-t", "t.nwk", "-m", "jc69", "-c", "0"}},
		{"bad rounding", []string{"-s", "s.fa", "-t", "t.nwk", "-m", "jc69", "--rounding", "two"}},
		{"bad output", []string{"-s", "s.fa", "-t", "t.nwk", "-m", "jc69", "--output", "nexus"}},
		{"bad params", []string{"-s", "s.fa", "-t", "t.nwk", "-m", "k80", "-p", "2,x"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parse(t, tc.argv...); err == nil {
				t.Errorf("expected error for %v", tc.argv)
			}
		})
	}
}

func TestParseArgsConfigDefersValidation(t *testing.T) {
	opt, err := parse(t, "--config", "run.yaml")
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if opt.ConfigFile != "run.yaml" {
		t.Errorf("config file = %q", opt.ConfigFile)
	}
}

func TestParseArgsHelp(t *testing.T) {
	_, err := parse(t, "-h")
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
}

func TestParseArgsVersionSkipsValidation(t *testing.T) {
	opt, err := parse(t, "-v")
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if !opt.Version {
		t.Error("Version not set")
	}
}

func TestParseParams(t *testing.T) {
	got, err := ParseParams("2, 1 0.5")
	if err != nil {
		t.Fatalf("ParseParams: %v", err)
	}
	if want := []float64{2, 1, 0.5}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
	if got, err := ParseParams(""); err != nil || got != nil {
		t.Errorf("empty input: got %v, %v", got, err)
	}
}
