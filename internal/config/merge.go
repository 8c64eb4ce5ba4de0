// internal/config/merge.go
package config

import "indelmap/internal/cli"

// Apply fills opt with cfg values for every field the user did not set
// explicitly on the command line.
func Apply(opt *cli.Options, cfg Config) {
	if cfg.SeqFile != "" && !opt.Explicit("seq-file") {
		opt.SeqFile = cfg.SeqFile
	}
	if cfg.TreeFile != "" && !opt.Explicit("tree-file") {
		opt.TreeFile = cfg.TreeFile
	}
	if cfg.Model != "" && !opt.Explicit("model") {
		opt.Model = cfg.Model
	}
	if len(cfg.ModelParams) > 0 && !opt.Explicit("model-params") {
		opt.ModelParams = append([]float64(nil), cfg.ModelParams...)
	}
	if cfg.GapOpen != 0 && !opt.Explicit("gap-open") {
		opt.GapOpen = cfg.GapOpen
	}
	if cfg.GapExt != 0 && !opt.Explicit("gap-ext") {
		opt.GapExt = cfg.GapExt
	}
	if cfg.Categories != 0 && !opt.Explicit("categories") {
		opt.Categories = cfg.Categories
	}
	if cfg.Rounding != "" && !opt.Explicit("rounding") {
		opt.Rounding = cfg.Rounding
	}
	if cfg.OutputMSAFile != "" && !opt.Explicit("output-msa-file") {
		opt.OutputMSAFile = cfg.OutputMSAFile
	}
	if cfg.Output != "" && !opt.Explicit("output") {
		opt.Output = cfg.Output
	}
	if cfg.Scores != nil && !opt.Explicit("scores") {
		opt.Scores = *cfg.Scores
	}
}
