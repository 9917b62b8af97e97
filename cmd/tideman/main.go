// Command tideman elects a winner by ranked pairs.
//
// Usage:
//
//	tideman [flags] candidate ...
//	tideman -file election.yaml
//
// Without -file the candidates are taken from the arguments and ballots are
// read interactively: first the number of voters, then one name per rank for
// each voter. The winner's name is printed on stdout.
//
// Exit codes: 1 usage or input error, 2 too many candidates, 3 invalid vote,
// 4 no unique winner.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/tideman/ballot"
	"github.com/katalvlaran/tideman/election"
	"github.com/katalvlaran/tideman/electionfile"
	"github.com/katalvlaran/tideman/lock"
)

// Exit codes.
const (
	exitOK = iota
	exitUsage
	exitTooManyCandidates
	exitInvalidVote
	exitNoWinner
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// config is the parsed command line.
type config struct {
	file       string
	logLevel   string
	logFormat  string
	explain    bool
	candidates []string
}

func parseFlags(args []string, errW io.Writer) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("tideman", flag.ContinueOnError)
	fs.SetOutput(errW)
	fs.StringVar(&cfg.file, "file", "", "election definition file (.yaml, .yml or .hcl)")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	fs.StringVar(&cfg.logFormat, "log-format", "text", "log format: text or json")
	fs.BoolVar(&cfg.explain, "explain", false, "print ranked pairs and the full ranking")
	fs.Usage = func() {
		fmt.Fprintln(errW, "Usage: tideman [flags] [candidate ...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.candidates = fs.Args()

	return cfg, nil
}

// newLogger creates a slog.Logger for the given level and format.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}

	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

func run(args []string, in io.Reader, out, errW io.Writer) int {
	cfg, err := parseFlags(args, errW)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	logger := newLogger(cfg.logLevel, cfg.logFormat, errW)

	var e *election.Election
	switch {
	case cfg.file != "":
		e, err = fromFile(cfg.file, logger)
	case len(cfg.candidates) > 0:
		e, err = interactive(cfg.candidates, in, out, logger)
	default:
		fmt.Fprintln(errW, "Usage: tideman [flags] [candidate ...]")
		return exitUsage
	}
	if err != nil {
		return report(errW, err)
	}

	res, err := e.Resolve()
	if err != nil {
		return report(errW, err)
	}

	fmt.Fprintln(out, res.Winner.Name)
	if cfg.explain {
		explain(out, res)
	}

	return exitOK
}

func fromFile(path string, logger *slog.Logger) (*election.Election, error) {
	def, err := electionfile.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Info("election loaded", "file", path, "candidates", len(def.Candidates), "voters", def.Voters())

	return def.Election(election.WithLogger(logger))
}

// interactive prompts for the number of voters and each voter's ranks.
// A name not on the roster aborts immediately.
func interactive(names []string, in io.Reader, out io.Writer, logger *slog.Logger) (*election.Election, error) {
	e, err := election.New(names, election.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	p := &prompter{scan: bufio.NewScanner(in), out: out}
	voters, err := p.number("Number of voters: ")
	if err != nil {
		return nil, err
	}

	ranking := make([]int, len(names))
	for v := 0; v < voters; v++ {
		for rank := range ranking {
			name, err := p.line(fmt.Sprintf("Rank %d: ", rank+1))
			if err != nil {
				return nil, err
			}
			c, ok := e.Lookup(name)
			if !ok {
				return nil, fmt.Errorf("%w: unknown candidate %q", ballot.ErrInvalidBallot, name)
			}
			ranking[rank] = c.Index
		}
		if err = e.RecordBallot(ranking); err != nil {
			return nil, err
		}
		fmt.Fprintln(out)
	}

	return e, nil
}

// report prints err and maps it to an exit code.
func report(w io.Writer, err error) int {
	switch {
	case errors.Is(err, ballot.ErrTooManyCandidates):
		fmt.Fprintf(w, "Maximum number of candidates is %d\n", ballot.MaxCandidates)
		return exitTooManyCandidates
	case errors.Is(err, ballot.ErrInvalidBallot):
		fmt.Fprintln(w, "Invalid vote.")
		return exitInvalidVote
	case errors.Is(err, lock.ErrNoUniqueWinner):
		fmt.Fprintln(w, "No unique winner:", err)
		return exitNoWinner
	default:
		fmt.Fprintln(w, err)
		return exitUsage
	}
}

func explain(w io.Writer, res *election.Result) {
	locked := make(map[[2]int]bool, len(res.Locked))
	for _, p := range res.Locked {
		locked[[2]int{p.Winner, p.Loser}] = true
	}

	fmt.Fprintf(w, "\nballots: %d\n", res.Ballots)
	for _, p := range res.Pairs {
		state := "skipped"
		if locked[[2]int{p.Winner, p.Loser}] {
			state = "locked"
		}
		fmt.Fprintf(w, "  %-7s %s over %s by %d\n", state, res.Candidates[p.Winner], res.Candidates[p.Loser], p.Margin)
	}

	ranking := make([]string, len(res.Ranking))
	for i, c := range res.Ranking {
		ranking[i] = c.Name
	}
	fmt.Fprintf(w, "ranking: %s\n", strings.Join(ranking, " > "))
}

// prompter reads answers line by line, echoing a prompt before each.
type prompter struct {
	scan *bufio.Scanner
	out  io.Writer
}

func (p *prompter) line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scan.Scan() {
		if err := p.scan.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}

	return strings.TrimSpace(p.scan.Text()), nil
}

// number re-prompts until a non-negative integer is entered.
func (p *prompter) number(prompt string) (int, error) {
	for {
		s, err := p.line(prompt)
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(s); err == nil && n >= 0 {
			return n, nil
		}
	}
}
