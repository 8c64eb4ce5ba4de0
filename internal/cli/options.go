// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"indelmap/internal/version"
)

// Output formats for the compiled alignment.
const (
	OutputFasta  = "fasta"
	OutputPhylip = "phylip"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	SeqFile  string
	TreeFile string

	// Model
	Model       string
	ModelParams []float64
	GapOpen     float64
	GapExt      float64
	Categories  int
	Rounding    string

	// Output
	OutputMSAFile string
	Output        string
	Scores        bool

	ConfigFile string

	Quiet   bool
	Verbose bool
	Version bool

	explicit map[string]bool
}

// Explicit reports whether the flag was set on the command line (either
// its long or short spelling).
func (o *Options) Explicit(name string) bool { return o.explicit[name] }

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "%s – indel-aware maximum-parsimony multiple sequence alignment\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintln(out, "Input:")
		fmt.Fprintln(out, "  -s, --seq-file string        unaligned FASTA sequences [*]")
		fmt.Fprintln(out, "  -t, --tree-file string       Newick guide tree [*]")
		fmt.Fprintln(out, "      --config string          YAML run configuration")
		fmt.Fprintln(out, "\nModel:")
		fmt.Fprintln(out, "  -m, --model string           substitution model: JC69 | K80 | HKY | GTR | WAG [*]")
		fmt.Fprintln(out, "  -p, --model-params floats    comma-separated model parameters")
		fmt.Fprintln(out, "  -g, --gap-open float         gap open cost multiplier [2.5]")
		fmt.Fprintln(out, "  -e, --gap-ext float          gap extension cost multiplier [0.5]")
		fmt.Fprintln(out, "  -c, --categories int         branch length percentile categories [4]")
		fmt.Fprintln(out, "      --rounding string        cost matrix rounding: none | zero | four [none]")
		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintln(out, "  -o, --output-msa-file string alignment output path, '-' for STDOUT [msa.fasta]")
		fmt.Fprintln(out, "      --output string          alignment format: fasta | phylip [fasta]")
		fmt.Fprintln(out, "      --scores                 print per-node alignment scores as TSV [false]")
		fmt.Fprintln(out, "\nGeneral:")
		fmt.Fprintln(out, "  -q, --quiet                  errors only [false]")
		fmt.Fprintln(out, "      --verbose                debug logging [false]")
		fmt.Fprintln(out, "  -v, --version                print version and exit [false]")
		fmt.Fprintln(out, "  -h, --help                   show this help message [false]")
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	var params string

	fs.StringVar(&opt.SeqFile, "s", "", "unaligned FASTA sequences [*]")
	fs.StringVar(&opt.SeqFile, "seq-file", "", "unaligned FASTA sequences [*]")
	fs.StringVar(&opt.TreeFile, "t", "", "Newick guide tree [*]")
	fs.StringVar(&opt.TreeFile, "tree-file", "", "Newick guide tree [*]")
	fs.StringVar(&opt.ConfigFile, "config", "", "YAML run configuration")

	fs.StringVar(&opt.Model, "m", "", "substitution model: JC69 | K80 | HKY | GTR | WAG [*]")
	fs.StringVar(&opt.Model, "model", "", "substitution model: JC69 | K80 | HKY | GTR | WAG [*]")
	fs.StringVar(&params, "p", "", "comma-separated model parameters")
	fs.StringVar(&params, "model-params", "", "comma-separated model parameters")
	fs.Float64Var(&opt.GapOpen, "g", 2.5, "gap open cost multiplier [2.5]")
	fs.Float64Var(&opt.GapOpen, "gap-open", 2.5, "gap open cost multiplier [2.5]")
	fs.Float64Var(&opt.GapExt, "e", 0.5, "gap extension cost multiplier [0.5]")
	fs.Float64Var(&opt.GapExt, "gap-ext", 0.5, "gap extension cost multiplier [0.5]")
	fs.IntVar(&opt.Categories, "c", 4, "branch length percentile categories [4]")
	fs.IntVar(&opt.Categories, "categories", 4, "branch length percentile categories [4]")
	fs.StringVar(&opt.Rounding, "rounding", "none", "cost matrix rounding: none | zero | four [none]")

	fs.StringVar(&opt.OutputMSAFile, "o", "msa.fasta", "alignment output path, '-' for STDOUT [msa.fasta]")
	fs.StringVar(&opt.OutputMSAFile, "output-msa-file", "msa.fasta", "alignment output path, '-' for STDOUT [msa.fasta]")
	fs.StringVar(&opt.Output, "output", OutputFasta, "alignment format: fasta | phylip [fasta]")
	fs.BoolVar(&opt.Scores, "scores", false, "print per-node alignment scores as TSV [false]")

	fs.BoolVar(&opt.Quiet, "q", false, "errors only (shorthand) [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "errors only [false]")
	fs.BoolVar(&opt.Verbose, "verbose", false, "debug logging [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")
	fs.BoolVar(&help, "help", false, "show this help message [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}

	opt.explicit = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { opt.explicit[canonical(f.Name)] = true })

	if opt.Version {
		return opt, nil
	}

	var err error
	opt.ModelParams, err = ParseParams(params)
	if err != nil {
		return opt, err
	}
	if opt.ConfigFile != "" {
		// validation happens after the config file is merged in
		return opt, nil
	}
	return opt, opt.Validate()
}

// Validate checks option consistency after config merging.
func (o *Options) Validate() error {
	if o.SeqFile == "" {
		return errors.New("--seq-file is required")
	}
	if o.TreeFile == "" {
		return errors.New("--tree-file is required")
	}
	if o.Model == "" {
		return errors.New("--model is required")
	}
	if o.GapOpen <= 0 || o.GapExt <= 0 {
		return errors.New("--gap-open and --gap-ext must be > 0")
	}
	if o.Categories < 1 {
		return errors.New("--categories must be ≥ 1")
	}
	switch strings.ToLower(o.Rounding) {
	case "", "none", "zero", "four":
	default:
		return fmt.Errorf("invalid --rounding %q", o.Rounding)
	}
	if o.Output != OutputFasta && o.Output != OutputPhylip {
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	return nil
}

// ParseParams splits a comma or space separated float list.
func ParseParams(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) == 0 {
		return nil, nil
	}
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid model parameter %q", f)
		}
		out[i] = v
	}
	return out, nil
}

// canonical maps a short flag spelling to its long name so config
// merging only has one name to check.
func canonical(name string) string {
	switch name {
	case "s":
		return "seq-file"
	case "t":
		return "tree-file"
	case "m":
		return "model"
	case "p":
		return "model-params"
	case "g":
		return "gap-open"
	case "e":
		return "gap-ext"
	case "c":
		return "categories"
	case "o":
		return "output-msa-file"
	case "q":
		return "quiet"
	case "v":
		return "version"
	default:
		return name
	}
}
