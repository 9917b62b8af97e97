// Package electionfile loads complete election definitions (candidates and
// ballots) from YAML or HCL files.
//
// YAML:
//
//	candidates: [Alice, Bob, Charlie]
//	ballots:
//	  - ranking: [Alice, Bob, Charlie]
//	    count: 2
//
// HCL:
//
//	candidates = ["Alice", "Bob", "Charlie"]
//	ballot {
//	  ranking = ["Alice", "Bob", "Charlie"]
//	  count   = 2
//	}
//
// A missing or zero count means a single ballot.
package electionfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tideman/election"
)

var (
	// ErrUnsupportedFormat indicates a file extension other than .yaml, .yml or .hcl.
	ErrUnsupportedFormat = errors.New("electionfile: unsupported format")

	// ErrNoBallots indicates a definition without any ballot group.
	ErrNoBallots = errors.New("electionfile: no ballots")

	// ErrInvalidCount indicates a ballot group with a negative count.
	ErrInvalidCount = errors.New("electionfile: invalid ballot count")
)

// Format names a supported encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// Definition is a complete election: a candidate list and grouped ballots.
type Definition struct {
	Candidates []string `yaml:"candidates"`
	Ballots    []Group  `yaml:"ballots"`
}

// Group is Count identical ballots with the given ranking.
type Group struct {
	Ranking []string `yaml:"ranking"`
	Count   int      `yaml:"count"`
}

// hclDefinition mirrors Definition for gohcl decoding.
type hclDefinition struct {
	Candidates []string    `hcl:"candidates"`
	Ballots    []*hclGroup `hcl:"ballot,block"`
}

type hclGroup struct {
	Ranking []string `hcl:"ranking"`
	Count   int      `hcl:"count,optional"`
}

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Load reads and decodes the definition at path.
func Load(path string) (*Definition, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("electionfile: read %s: %w", path, err)
	}

	return Parse(data, path, format)
}

// Parse decodes data in the given format. filename is used in diagnostics.
func Parse(data []byte, filename string, format Format) (*Definition, error) {
	var (
		def *Definition
		err error
	)
	switch format {
	case FormatYAML:
		def, err = parseYAML(data)
	case FormatHCL:
		def, err = parseHCL(data, filename)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("electionfile: decode %s: %w", filename, err)
	}

	if err = def.validate(); err != nil {
		return nil, fmt.Errorf("electionfile: %s: %w", filename, err)
	}

	return def, nil
}

func parseYAML(data []byte) (*Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		return nil, err
	}

	return &def, nil
}

func parseHCL(data []byte, filename string) (*Definition, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	var raw hclDefinition
	if diags = gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, diags
	}

	def := &Definition{
		Candidates: raw.Candidates,
		Ballots:    make([]Group, 0, len(raw.Ballots)),
	}
	for _, g := range raw.Ballots {
		def.Ballots = append(def.Ballots, Group{Ranking: g.Ranking, Count: g.Count})
	}

	return def, nil
}

// validate checks structure only; candidate and ballot contents are checked
// by the election itself.
func (d *Definition) validate() error {
	if len(d.Ballots) == 0 {
		return ErrNoBallots
	}
	for i, g := range d.Ballots {
		if g.Count < 0 {
			return fmt.Errorf("%w: group %d has count %d", ErrInvalidCount, i+1, g.Count)
		}
	}

	return nil
}

// Voters returns the total number of ballots described.
func (d *Definition) Voters() int {
	total := 0
	for _, g := range d.Ballots {
		total += g.times()
	}

	return total
}

func (g Group) times() int {
	if g.Count == 0 {
		return 1
	}

	return g.Count
}

// Apply casts every ballot of d into e, stopping at the first rejection.
func (d *Definition) Apply(e *election.Election) error {
	for i, g := range d.Ballots {
		for k := 0; k < g.times(); k++ {
			if err := e.Vote(g.Ranking); err != nil {
				return fmt.Errorf("electionfile: ballot group %d: %w", i+1, err)
			}
		}
	}

	return nil
}

// Election builds an election from d's candidates and casts all its ballots.
func (d *Definition) Election(opts ...election.Option) (*election.Election, error) {
	e, err := election.New(d.Candidates, opts...)
	if err != nil {
		return nil, err
	}
	if err = d.Apply(e); err != nil {
		return nil, err
	}

	return e, nil
}
