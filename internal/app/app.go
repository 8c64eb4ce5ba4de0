// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"indelmap/internal/cli"
	"indelmap/internal/config"
	"indelmap/internal/logging"
	"indelmap/internal/version"
	"indelmap/internal/writers"
	"parsimony/align"
	"parsimony/fasta"
	"parsimony/model"
	"parsimony/newick"
	"parsimony/scoring"
	"parsimony/seqs"
)

// RunContext parses argv, aligns and writes the MSA. Exit codes: 0 ok,
// 2 usage or input error, 3 write error, 130 canceled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("indelmap")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "indelmap version %s\n", version.Version)
		if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	if opts.ConfigFile != "" {
		cfg, err := config.Load(opts.ConfigFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		config.Apply(&opts, cfg)
		if err := opts.Validate(); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	}

	logger := logging.New(stderr, opts.Quiet, opts.Verbose)
	defer func() { _ = logger.Sync() }()

	code := run(parent, &opts, logger, outw)
	if code == 0 && parent.Err() != nil {
		return 130
	}
	return code
}

func run(ctx context.Context, opts *cli.Options, logger *zap.Logger, outw *bufio.Writer) int {
	logger.Info("indelmap run started", zap.String("version", version.Version))

	records, err := fasta.ReadAll(opts.SeqFile)
	if err != nil {
		logger.Error("reading sequences failed", zap.Error(err))
		return 2
	}
	tr, err := newick.ParseFile(opts.TreeFile)
	if err != nil {
		logger.Error("reading guide tree failed", zap.Error(err))
		return 2
	}
	info, err := align.NewInfo(tr, records)
	if err != nil {
		logger.Error("invalid input data", zap.Error(err))
		return 2
	}
	if ctx.Err() != nil {
		return 130
	}

	costs, err := buildCosts(opts, info, logger)
	if err != nil {
		logger.Error("model setup failed", zap.Error(err))
		return 2
	}

	aligner := align.New(align.Config{Costs: costs, Logger: logger})
	alignments, scores := aligner.AlignOnTree(info)
	if ctx.Err() != nil {
		return 130
	}
	total := 0.0
	for _, s := range scores {
		total += s
	}
	logger.Info("alignment finished", zap.Float64("total_score", total))

	msa := align.CompileMSA(info, alignments, nil)
	if code := writeMSA(opts, msa, outw, logger); code != 0 {
		return code
	}

	if opts.Scores {
		if err := writers.WriteScoresTSV(outw, info.Tree, scores); err != nil {
			if writers.IsBrokenPipe(err) {
				return 0
			}
			logger.Error("writing scores failed", zap.Error(err))
			return 3
		}
	}
	logger.Info("indelmap run done")
	return 0
}

func buildCosts(opts *cli.Options, info *align.Info, logger *zap.Logger) (scoring.Costs, error) {
	rounding, ok := model.ParseRounding(strings.ToLower(opts.Rounding))
	if !ok {
		return nil, fmt.Errorf("invalid rounding %q", opts.Rounding)
	}
	times := model.PercentileTimes(info.Tree.BranchLengths(), opts.Categories, rounding)
	gm := scoring.GapMultipliers{Open: opts.GapOpen, Ext: opts.GapExt}
	name := strings.ToLower(opts.Model)

	seqType := seqs.DetectType(rawSeqs(info))
	logger.Info("building scoring model",
		zap.String("model", name),
		zap.Stringer("sequence_type", seqType),
		zap.Float64s("times", times))
	if seqType == seqs.Protein {
		return scoring.NewProteinModel(name, gm, times, false, rounding)
	}
	return scoring.NewDNAModel(name, opts.ModelParams, gm, times, false, rounding)
}

func rawSeqs(info *align.Info) [][]byte {
	out := make([][]byte, len(info.Sequences))
	for i, r := range info.Sequences {
		out[i] = r.Seq
	}
	return out
}

func writeMSA(opts *cli.Options, msa []fasta.Record, outw io.Writer, logger *zap.Logger) int {
	if opts.OutputMSAFile == "-" {
		if err := writers.WriteMSA(opts.Output, outw, msa); err != nil {
			if writers.IsBrokenPipe(err) {
				return 0
			}
			logger.Error("writing alignment failed", zap.Error(err))
			return 3
		}
		return 0
	}
	f, err := os.Create(opts.OutputMSAFile)
	if err != nil {
		logger.Error("creating output file failed", zap.Error(err))
		return 3
	}
	werr := writers.WriteMSA(opts.Output, f, msa)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		logger.Error("writing alignment failed", zap.Error(werr))
		return 3
	}
	logger.Info("alignment written", zap.String("path", opts.OutputMSAFile))
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
