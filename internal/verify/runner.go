/*
Copyright 2014 Workiva, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

 http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package verify checks the list implementations against a reference
// model by replaying randomly generated operation scripts on both and
// comparing every observable result.
package verify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/blastbao/go-arraylist/adt"
	"github.com/blastbao/go-arraylist/internal/config"
	"github.com/blastbao/go-arraylist/list"
)

// Subject is a list under test.
type Subject interface {
	adt.List[any]
	Values() []any
}

// Factory creates a fresh, empty Subject for each script.
type Factory func() Subject

// Target is a named list implementation to check.
type Target struct {
	Name string
	New  Factory
}

var knownTargets = []Target{
	{Name: config.TargetArrayList, New: func() Subject { return list.New[any]() }},
	{Name: config.TargetSafeList, New: func() Subject { return list.NewSafe[any]() }},
}

// Targets resolves a target pattern: an implementation name such as
// "list.SafeList", or "list.*" for every implementation.
func Targets(pattern string) ([]Target, error) {
	if pattern == config.TargetAll {
		return append([]Target(nil), knownTargets...), nil
	}
	for _, t := range knownTargets {
		if t.Name == pattern {
			return []Target{t}, nil
		}
	}
	return nil, fmt.Errorf("unknown target %q", pattern)
}

// traceLen bounds how many preceding ops are kept for a failure report.
const traceLen = 16

type scriptResult struct {
	steps   int
	failure *Failure
}

// Run checks the implementations selected by cfg.Target.
func Run(ctx context.Context, cfg config.Config, logger zerolog.Logger) (*Report, error) {
	targets, err := Targets(cfg.Target)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return RunWith(ctx, cfg, logger, targets...)
}

// RunWith executes cfg.Scripts scripts per target on cfg.Threads workers.
// Every target replays the same seeds.  The returned report is complete
// unless ctx is cancelled, in which case it covers the scripts that ran
// and the context error is returned alongside it.
func RunWith(ctx context.Context, cfg config.Config, logger zerolog.Logger, targets ...Target) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if len(targets) == 0 {
		return nil, errors.New("no targets to check")
	}

	report := &Report{
		RunID:     uuid.NewString(),
		Target:    cfg.Target,
		Profile:   cfg.Profile,
		Seed:      cfg.Seed,
		Threads:   cfg.Threads,
		Scripts:   cfg.Scripts,
		Steps:     cfg.Steps,
		StartedAt: time.Now().UTC(),
	}
	for _, t := range targets {
		report.Checked = append(report.Checked, t.Name)
	}
	logger = logger.With().Str("run_id", report.RunID).Logger()
	logger.Info().
		Str("profile", cfg.Profile).
		Int("threads", cfg.Threads).
		Int("scripts", cfg.Scripts).
		Int("steps", cfg.Steps).
		Int64("seed", cfg.Seed).
		Strs("targets", report.Checked).
		Msg("verification started")

	m := newMetrics()
	results := make([]scriptResult, len(targets)*cfg.Scripts)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Threads)
schedule:
	for ti, target := range targets {
		for i := 0; i < cfg.Scripts; i++ {
			if gctx.Err() != nil {
				break schedule
			}
			slot := ti*cfg.Scripts + i
			g.Go(func() error {
				res, err := runScript(gctx, cfg, i, target, m)
				results[slot] = res
				if res.failure != nil {
					logger.Warn().
						Str("target", target.Name).
						Int("script", i).
						Int("step", res.failure.Step).
						Str("op", res.failure.Op).
						Msg("divergence from model")
				}
				return err
			})
		}
	}
	runErr := g.Wait()
	if runErr == nil {
		runErr = ctx.Err()
	}

	for _, res := range results {
		report.StepsRun += res.steps
		if res.failure != nil {
			report.Failures = append(report.Failures, *res.failure)
		}
	}
	counts, err := m.opCounts()
	if err != nil {
		return nil, fmt.Errorf("gather op counters: %w", err)
	}
	report.Ops = counts
	report.EndedAt = time.Now().UTC()
	report.Verdict = VerdictPass
	if len(report.Failures) > 0 || runErr != nil {
		report.Verdict = VerdictFail
	}

	logger.Info().
		Str("verdict", report.Verdict).
		Int("failures", len(report.Failures)).
		Int("steps_run", report.StepsRun).
		Dur("elapsed", report.EndedAt.Sub(report.StartedAt)).
		Msg("verification finished")
	return report, runErr
}

func runScript(ctx context.Context, cfg config.Config, index int, target Target, m *metrics) (res scriptResult, err error) {
	seed := cfg.Seed + int64(index)
	gen, err := NewGenerator(cfg.Profile, seed)
	if err != nil {
		return res, err
	}

	model := &Model{}
	subject := target.New()
	trace := make([]string, 0, traceLen)
	fail := func(step int, op Op, diff string) {
		res.failure = &Failure{
			Target: target.Name,
			Script: index,
			Seed:   seed,
			Step:   step,
			Op:     op.String(),
			Diff:   diff,
			Trace:  append([]string(nil), trace...),
		}
	}

	for step := 0; step < cfg.Steps; step++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		op := gen.Next(model.Size())
		want := Apply(model, op)
		got, panicked := safeApply(subject, op)
		res.steps++
		if panicked != "" {
			fail(step, op, "panic: "+panicked)
			break
		}
		m.observe(target.Name, op.Kind, got)

		if diff := cmp.Diff(want, got); diff != "" {
			fail(step, op, "outcome (-model +subject):\n"+diff)
			break
		}
		if diff := cmp.Diff(model.Values(), subject.Values()); diff != "" {
			fail(step, op, "contents (-model +subject):\n"+diff)
			break
		}

		if len(trace) == traceLen {
			trace = trace[1:]
		}
		trace = append(trace, op.String())
	}
	m.script(target.Name, res.failure == nil)
	return res, nil
}

func safeApply(l Subject, op Op) (out Outcome, panicked string) {
	defer func() {
		if r := recover(); r != nil {
			panicked = fmt.Sprint(r)
		}
	}()
	return Apply(l, op), ""
}
