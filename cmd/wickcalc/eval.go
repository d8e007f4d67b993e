// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/cmplx"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wick/cmatrix"
	"github.com/katalvlaran/wick/fock"
	"github.com/katalvlaran/wick/random"
	"github.com/katalvlaran/wick/slater"
	"github.com/katalvlaran/wick/wick"
)

// ErrVerifySpinSummed is returned when --verify is combined with a
// spin-summed 1-RDM, which has no state vector.
var ErrVerifySpinSummed = errors.New("wickcalc: --verify needs the spin-orbital 1-RDM")

var (
	problemFile string
	verify      bool
	workers     int
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate the jobs of a problem file",
	Long: `Evaluate every job of a YAML problem file with the Wick contraction engine.

With --verify each job is recomputed by explicit operator application on the
determinant's state vector, and the absolute deviation is reported.`,
	Args: cobra.NoArgs,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringVarP(&problemFile, "file", "f", "", "Problem YAML file (required)")
	evalCmd.Flags().BoolVar(&verify, "verify", false, "Cross-check against the state-vector oracle")
	evalCmd.Flags().IntVar(&workers, "workers", runtime.GOMAXPROCS(0), "Maximum concurrent jobs")
	_ = evalCmd.MarkFlagRequired("file")
}

func runEval(cmd *cobra.Command, args []string) error {
	p, err := LoadProblem(problemFile)
	if err != nil {
		return err
	}
	logger.Debug("Problem loaded",
		zap.String("file", problemFile),
		zap.Int("norb", p.Norb),
		zap.Int("jobs", len(p.Jobs)))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := evaluate(ctx, p, evalOptions{verify: verify, workers: workers}, logger)
	if err != nil {
		return err
	}

	return writeResults(cmd.OutOrStdout(), results, verify)
}

type evalOptions struct {
	verify  bool
	workers int
}

// jobResult holds one evaluated job; Oracle is set only under verify.
type jobResult struct {
	Name      string
	Value     complex128
	Oracle    complex128
	Deviation float64
	Elapsed   time.Duration
}

// reference is the determinant shared read-only by all jobs.
type reference struct {
	gamma    *cmatrix.Dense
	matrices map[string]*cmatrix.Dense
	basis    *fock.Basis
	state    []complex128
}

func buildReference(p *Problem, withState bool) (*reference, error) {
	var opts []slater.Option
	if p.RotationSeed != nil {
		u, err := random.Unitary(p.Norb, random.WithSeed(*p.RotationSeed))
		if err != nil {
			return nil, fmt.Errorf("rotation: %w", err)
		}
		opts = append(opts, slater.WithOrbitalRotation(u))
	}
	if p.SpinSummed {
		opts = append(opts, slater.WithSpinSummed())
	}

	ref := &reference{}
	var err error
	if ref.gamma, err = slater.OneRDM(p.Norb, p.Occupied, opts...); err != nil {
		return nil, err
	}
	if ref.matrices, err = p.matrices(); err != nil {
		return nil, err
	}
	if withState {
		if ref.basis, ref.state, err = slater.StateVector(p.Norb, p.Occupied, opts...); err != nil {
			return nil, err
		}
	}

	return ref, nil
}

// evaluate runs every job with at most opts.workers in flight. Results keep
// job order; the first failure cancels the remaining jobs.
func evaluate(ctx context.Context, p *Problem, opts evalOptions, log *zap.Logger) ([]jobResult, error) {
	if opts.verify && p.SpinSummed {
		return nil, ErrVerifySpinSummed
	}
	ref, err := buildReference(p, opts.verify)
	if err != nil {
		return nil, err
	}

	results := make([]jobResult, len(p.Jobs))
	g, gctx := errgroup.WithContext(ctx)
	if opts.workers > 0 {
		g.SetLimit(opts.workers)
	}
	for i, job := range p.Jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			res, err := ref.run(job, opts.verify)
			if err != nil {
				log.Warn("Job failed", zap.String("job", job.Name), zap.Error(err))
				return fmt.Errorf("job %q: %w", job.Name, err)
			}
			res.Elapsed = time.Since(start)
			log.Debug("Job done",
				zap.String("job", job.Name),
				zap.Duration("elapsed", res.Elapsed))
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (r *reference) run(job Job, withOracle bool) (jobResult, error) {
	res := jobResult{Name: job.Name}
	hs := make([]cmatrix.Matrix, len(job.Operators))
	for i, name := range job.Operators {
		hs[i] = r.matrices[name]
	}

	var err error
	if job.Power != nil {
		res.Value, err = wick.PowerExpectation(r.gamma, hs[0], *job.Power)
		if err == nil && withOracle {
			seq := make([]cmatrix.Matrix, *job.Power)
			for i := range seq {
				seq[i] = hs[0]
			}
			hs = seq
		}
	} else {
		res.Value, err = wick.ProductExpectation(r.gamma, hs)
	}
	if err != nil || !withOracle {
		return res, err
	}

	ops := make([]*fock.OneBodyOperator, len(hs))
	for i, h := range hs {
		if ops[i], err = fock.NewOneBodyOperator(h, r.basis); err != nil {
			return res, err
		}
	}
	if res.Oracle, err = fock.Expectation(r.state, ops...); err != nil {
		return res, err
	}
	res.Deviation = cmplx.Abs(res.Value - res.Oracle)

	return res, nil
}

func formatComplex(v complex128) string {
	return fmt.Sprintf("%.12g%+.12gi", real(v), imag(v))
}

// writeResults prints one row per job in job order.
func writeResults(w io.Writer, results []jobResult, withOracle bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if withOracle {
		fmt.Fprintln(tw, "JOB\tVALUE\tORACLE\tDEVIATION")
	} else {
		fmt.Fprintln(tw, "JOB\tVALUE")
	}
	for _, r := range results {
		if withOracle {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%.3g\n", r.Name, formatComplex(r.Value), formatComplex(r.Oracle), r.Deviation)
		} else {
			fmt.Fprintf(tw, "%s\t%s\n", r.Name, formatComplex(r.Value))
		}
	}

	return tw.Flush()
}
