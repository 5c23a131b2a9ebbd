package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ghodss/yaml"
	"github.com/spf13/pflag"

	"github.com/jeffrom/commitlint/config"
	"github.com/jeffrom/commitlint/runner"
	"github.com/jeffrom/commitlint/vcs/gitcli"
)

var (
	// overridden by go build -X
	Version string
)

// editDefault is the value --edit takes when no file is given.
const editDefault = runner.EditMessageFile

var errNoInput = errors.New("no commit message to check (see --help)")

func main() {
	if err := run(os.Args, config.DefaultTermIO); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(rawArgs []string, termio config.TerminalIO) error {
	cfg := config.NewWithTerminalIO(nil, &termio)

	var help bool
	var version bool
	var cfgFile string
	var from string
	var to string
	var editFile string
	var messages []string
	var readStats bool
	var format string
	var verbose bool
	var quiet bool
	var printConfig bool
	flags := pflag.NewFlagSet("commitlint", pflag.ContinueOnError)
	flags.SetOutput(termio.Stderr)
	flags.BoolVarP(&help, "help", "h", false, "show help")
	flags.BoolVarP(&version, "version", "V", false, "print version and exit")
	flags.StringVarP(&cfgFile, "config", "c", "", "specify config `file`")
	flags.StringVar(&from, "from", "", "check commits after this `rev`")
	flags.StringVar(&to, "to", "", "check commits up to this `rev` (default HEAD)")
	flags.StringVarP(&editFile, "edit", "e", "", "check a commit-msg hook `file` (default $GIT_DIR/COMMIT_EDITMSG)")
	flags.Lookup("edit").NoOptDefVal = editDefault
	flags.StringArrayVarP(&messages, "message", "m", nil, "check commit message `text` (repeatable)")
	flags.BoolVar(&readStats, "stats", false, "print commit type, scope and violation counts for --from..--to")
	flags.StringVar(&format, "format", config.FormatText, "output `format`: text or json")
	flags.BoolVarP(&verbose, "verbose", "v", false, "print additional debugging info")
	flags.BoolVarP(&quiet, "quiet", "q", false, "print as little as necessary")
	flags.BoolVar(&printConfig, "print-config", false, "print the resolved configuration and exit")

	if err := flags.Parse(rawArgs); err != nil {
		return err
	}
	args := flags.Args()
	if len(args) > 0 {
		args = args[1:]
	}

	if help {
		usage(cfg, flags)
		return nil
	}
	if version {
		cfg.Printf("%s", Version)
		return nil
	}

	fileCfg, cfgPath, err := readConfig(cfgFile)
	if err != nil {
		return err
	}
	if fileCfg != nil {
		if err := config.Merge(&cfg, fileCfg); err != nil {
			return err
		}
	}
	if flags.Lookup("verbose").Changed {
		cfg.Verbose = verbose
	}
	if flags.Lookup("quiet").Changed {
		cfg.Quiet = quiet
	}
	if flags.Lookup("format").Changed {
		cfg.Format = format
	}
	if cfg.Verbose {
		b, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		cfg.Debugf("config (%s): %s", configSource(cfgPath), string(b))
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if printConfig {
		b, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cfg.Term.Stdout, "%s", b)
		return nil
	}
	// done setting up config

	git := gitcli.New(cfg, "")
	rnr := runner.New(cfg, git)
	ctx := context.Background()

	if readStats {
		stats, err := rnr.Stats(ctx, from, to)
		if err != nil {
			return err
		}
		return stats.TextSummary(cfg.Term.Stdout)
	}

	var results runner.Results
	switch {
	case flags.Lookup("edit").Changed:
		p := editFile
		if p == editDefault {
			p = ""
			if len(args) > 0 {
				p = args[0]
			}
		}
		results, err = rnr.CheckEditFile(ctx, p)
	case from != "" || to != "":
		results, err = rnr.CheckCommits(ctx, from, to)
	case len(messages) > 0:
		results, err = rnr.CheckMessages(ctx, messages)
	case cfg.Term.StdinPiped():
		results, err = rnr.CheckReadMessage(ctx, cfg.Term.Stdin)
	default:
		return errNoInput
	}

	cf := runner.CheckFailure{}
	if err != nil && !errors.As(err, &cf) {
		return err
	}
	if werr := writeResults(cfg, results); werr != nil {
		cfg.Errorf("failed to write results: %v", werr)
	}
	return err
}

func writeResults(cfg config.Config, results runner.Results) error {
	if cfg.Format == config.FormatJSON {
		return results.WriteJSON(cfg.Term.Stdout)
	}

	errs, warnings := results.Counts()
	if errs+warnings == 0 {
		cfg.Printf("OK")
		return nil
	}
	if errs == 0 && cfg.Quiet {
		return nil
	}
	return results.WriteSummary(cfg.Term.Stdout)
}

// readConfig loads the config file at p, or the nearest .commitlintrc found
// from the working directory upwards.
func readConfig(p string) (*config.Config, string, error) {
	if p != "" {
		cfg, err := config.Load(p)
		return cfg, p, err
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, "", err
	}
	return config.Find(wd)
}

func configSource(p string) string {
	if p == "" {
		return "defaults"
	}
	return p
}

func usage(cfg config.Config, flags *pflag.FlagSet) {
	cfg.Printf(`%s [flags] [file]

Lint commit messages against the Conventional Commits format.

FLAGS
%s

Rules are configured in .commitlintrc.yml, .commitlintrc.yaml or
.commitlintrc.json, searched for from the current directory upwards.

EXAMPLES

# check the message of a commit in progress (commit-msg hook)
$ commitlint --edit "$1"

# check every commit on a branch
$ commitlint --from origin/main --to HEAD

# check a message from stdin
$ git log -1 --format=%%B | commitlint

# check a message directly
$ commitlint -m "feat(parser): support footers"
`, "commitlint", flags.FlagUsages())
}
