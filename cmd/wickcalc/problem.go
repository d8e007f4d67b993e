// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wick/cmatrix"
	"github.com/katalvlaran/wick/slater"
)

var (
	// ErrInvalidProblem marks a structurally invalid problem file.
	ErrInvalidProblem = errors.New("wickcalc: invalid problem")

	// ErrUnknownMatrix marks a job naming a matrix that is not defined.
	ErrUnknownMatrix = errors.New("wickcalc: unknown matrix")
)

// Complex is a complex literal in YAML: "1", "-0.5", "2i", "1-2i".
type Complex complex128

// UnmarshalYAML parses a scalar node with strconv.ParseComplex.
func (c *Complex) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: complex entry must be a scalar", node.Line)
	}
	v, err := strconv.ParseComplex(strings.ReplaceAll(node.Value, " ", ""), 128)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = Complex(v)

	return nil
}

// Job is one expectation value to evaluate. With Power set, Operators must
// name exactly one matrix.
type Job struct {
	Name      string   `yaml:"name"`
	Operators []string `yaml:"operators"`
	Power     *int     `yaml:"power,omitempty"`
}

// Problem is the parsed YAML problem file.
type Problem struct {
	Norb         int                    `yaml:"norb"`
	Occupied     slater.Occupation      `yaml:"occupied"`
	RotationSeed *int64                 `yaml:"rotation_seed,omitempty"`
	SpinSummed   bool                   `yaml:"spin_summed"`
	SpinExpand   bool                   `yaml:"spin_expand"`
	Matrices     map[string][][]Complex `yaml:"matrices"`
	Jobs         []Job                  `yaml:"jobs"`
}

// LoadProblem reads and validates a problem file.
func LoadProblem(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read problem: %w", err)
	}

	return ParseProblem(data)
}

// ParseProblem decodes and validates YAML problem data. Unknown keys are
// rejected.
func ParseProblem(data []byte) (*Problem, error) {
	var p Problem
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProblem, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Dim returns the dimension every one-body matrix has after expansion.
func (p *Problem) Dim() int {
	if p.SpinSummed {
		return p.Norb
	}

	return 2 * p.Norb
}

// Validate checks the occupation, job references and matrix shapes.
func (p *Problem) Validate() error {
	if err := p.Occupied.Validate(p.Norb); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}
	if p.SpinSummed && p.SpinExpand {
		return fmt.Errorf("%w: spin_summed and spin_expand are exclusive", ErrInvalidProblem)
	}
	if len(p.Jobs) == 0 {
		return fmt.Errorf("%w: no jobs", ErrInvalidProblem)
	}

	want := p.Dim()
	if p.SpinExpand {
		want = p.Norb
	}
	for name, rows := range p.Matrices {
		if len(rows) != want {
			return fmt.Errorf("%w: matrix %q has %d rows, want %d", ErrInvalidProblem, name, len(rows), want)
		}
		for i, row := range rows {
			if len(row) != want {
				return fmt.Errorf("%w: matrix %q row %d has %d entries, want %d", ErrInvalidProblem, name, i, len(row), want)
			}
		}
	}

	seen := make(map[string]bool, len(p.Jobs))
	for i, job := range p.Jobs {
		if job.Name == "" {
			return fmt.Errorf("%w: job %d has no name", ErrInvalidProblem, i)
		}
		if seen[job.Name] {
			return fmt.Errorf("%w: duplicate job %q", ErrInvalidProblem, job.Name)
		}
		seen[job.Name] = true
		if job.Power != nil && len(job.Operators) != 1 {
			return fmt.Errorf("%w: job %q: power needs exactly one operator", ErrInvalidProblem, job.Name)
		}
		for _, op := range job.Operators {
			if _, ok := p.Matrices[op]; !ok {
				return fmt.Errorf("job %q: %w: %q", job.Name, ErrUnknownMatrix, op)
			}
		}
	}

	return nil
}

// matrices materializes every named matrix, expanded to the spin-orbital
// layout when SpinExpand is set.
func (p *Problem) matrices() (map[string]*cmatrix.Dense, error) {
	out := make(map[string]*cmatrix.Dense, len(p.Matrices))
	for name, rows := range p.Matrices {
		raw := make([][]complex128, len(rows))
		for i, row := range rows {
			raw[i] = make([]complex128, len(row))
			for j, v := range row {
				raw[i][j] = complex128(v)
			}
		}
		m, err := cmatrix.NewFromRows(raw)
		if err != nil {
			return nil, fmt.Errorf("matrix %q: %w", name, err)
		}
		if p.SpinExpand {
			if m, err = slater.ExpandSpin(m); err != nil {
				return nil, fmt.Errorf("matrix %q: %w", name, err)
			}
		}
		out[name] = m
	}

	return out, nil
}
