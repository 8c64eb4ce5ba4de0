// internal/config/config_test.go
package config

import (
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"indelmap/internal/cli"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTemp(t, `
seq_file: seqs.fasta
tree_file: tree.nwk
model: hky
model_params: [0.22, 0.26, 0.33, 0.19, 0.5, 1.0]
gap_open: 3.0
gap_ext: 0.75
categories: 2
rounding: zero
output: phylip
scores: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model != "hky" || cfg.Categories != 2 || cfg.Rounding != "zero" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if want := []float64{0.22, 0.26, 0.33, 0.19, 0.5, 1.0}; !reflect.DeepEqual(cfg.ModelParams, want) {
		t.Errorf("params = %v, want %v", cfg.ModelParams, want)
	}
	if cfg.Scores == nil || !*cfg.Scores {
		t.Error("scores not decoded")
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeTemp(t, "modle: jc69\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeTemp(t, "")
	if _, err := Load(path); err != nil {
		t.Fatalf("Load empty: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestApplyFlagsWin(t *testing.T) {
	fs := cli.NewFlagSet("indelmap")
	fs.SetOutput(io.Discard)
	opt, err := cli.ParseArgs(fs, []string{"--config", "x.yaml", "-m", "k80", "-g", "4"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}

	scores := true
	Apply(&opt, Config{
		SeqFile:    "seqs.fasta",
		TreeFile:   "tree.nwk",
		Model:      "jc69",
		GapOpen:    3.0,
		GapExt:     0.75,
		Categories: 2,
		Scores:     &scores,
	})

	if opt.Model != "k80" {
		t.Errorf("explicit --model overridden: %q", opt.Model)
	}
	if opt.GapOpen != 4.0 {
		t.Errorf("explicit --gap-open overridden: %v", opt.GapOpen)
	}
	if opt.SeqFile != "seqs.fasta" || opt.TreeFile != "tree.nwk" {
		t.Errorf("file values not applied: %+v", opt)
	}
	if opt.GapExt != 0.75 || opt.Categories != 2 || !opt.Scores {
		t.Errorf("unset flags not filled from config: %+v", opt)
	}
	if err := opt.Validate(); err != nil {
		t.Errorf("merged options invalid: %v", err)
	}
}
