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

package verify

import (
	"context"
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/blastbao/go-arraylist/internal/config"
	"github.com/blastbao/go-arraylist/list"
)

func testConfig(profile string) config.Config {
	cfg := config.Default()
	cfg.Profile = profile
	cfg.Scripts = 8
	cfg.Steps = 200
	return cfg
}

// staleSet ignores writes made through Set.
type staleSet struct {
	*list.ArrayList[any]
}

func (s staleSet) Set(index int, _ any) (any, error) {
	return s.ArrayList.Get(index)
}

// panicky blows up on Get.
type panicky struct {
	*list.ArrayList[any]
}

func (panicky) Get(int) (any, error) {
	panic("boom")
}

func TestTargets(t *testing.T) {
	all, err := Targets(config.TargetAll)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, config.TargetArrayList, all[0].Name)
	assert.Equal(t, config.TargetSafeList, all[1].Name)

	safe, err := Targets(config.TargetSafeList)
	require.NoError(t, err)
	require.Len(t, safe, 1)
	_, ok := safe[0].New().(*list.SafeList[any])
	assert.True(t, ok)

	_, err = Targets("list.LinkedList")
	assert.Error(t, err)
}

func TestRunPassesForEveryTarget(t *testing.T) {
	defer goleak.VerifyNone(t)

	for _, profile := range []string{config.ProfileDefault, config.ProfileStronger} {
		t.Run(profile, func(t *testing.T) {
			report, err := Run(context.Background(), testConfig(profile), zerolog.Nop())
			require.NoError(t, err)
			assert.True(t, report.Passed(), "failures: %+v", report.Failures)
			assert.Empty(t, report.Failures)
			assert.Equal(t, []string{config.TargetArrayList, config.TargetSafeList}, report.Checked)
			assert.Equal(t, 2*8*200, report.StepsRun)
			assert.NotEmpty(t, report.RunID)
			assert.Equal(t, profile, report.Profile)

			var total int64
			for _, c := range report.Ops {
				total += c.Count
			}
			assert.EqualValues(t, report.StepsRun, total)
		})
	}
}

func TestRunSafeListOnly(t *testing.T) {
	cfg := testConfig(config.ProfileStronger)
	cfg.Target = config.TargetSafeList

	report, err := Run(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, report.Passed(), "failures: %+v", report.Failures)
	assert.Equal(t, []string{config.TargetSafeList}, report.Checked)
	assert.Equal(t, 8*200, report.StepsRun)
	for _, c := range report.Ops {
		assert.Equal(t, config.TargetSafeList, c.Target)
	}
}

func TestRunStrongerCountsErrorOutcomes(t *testing.T) {
	report, err := Run(context.Background(), testConfig(config.ProfileStronger), zerolog.Nop())
	require.NoError(t, err)

	outcomes := map[string]map[string]bool{}
	for _, c := range report.Ops {
		if outcomes[c.Target] == nil {
			outcomes[c.Target] = map[string]bool{}
		}
		outcomes[c.Target][c.Outcome] = true
	}
	for _, target := range []string{config.TargetArrayList, config.TargetSafeList} {
		for _, class := range []string{ClassOK, ClassOutOfBounds, ClassNoSuchElement, ClassNilItem, ClassNotComparable} {
			assert.True(t, outcomes[target][class], "%s never produced %s", target, class)
		}
	}
}

func TestRunDetectsDivergence(t *testing.T) {
	target := Target{Name: "stale", New: func() Subject { return staleSet{list.New[any]()} }}

	report, err := RunWith(context.Background(), testConfig(config.ProfileDefault), zerolog.Nop(), target)
	require.NoError(t, err)
	require.False(t, report.Passed())
	require.NotEmpty(t, report.Failures)

	f := report.Failures[0]
	assert.Equal(t, "stale", f.Target)
	assert.Contains(t, f.Op, "set(")
	assert.Contains(t, f.Diff, "contents")
	assert.LessOrEqual(t, len(f.Trace), traceLen)
	assert.Equal(t, config.Default().Seed+int64(f.Script), f.Seed)
}

func TestRunRecoversSubjectPanic(t *testing.T) {
	target := Target{Name: "panicky", New: func() Subject { return panicky{list.New[any]()} }}

	report, err := RunWith(context.Background(), testConfig(config.ProfileDefault), zerolog.Nop(), target)
	require.NoError(t, err)
	require.Len(t, report.Failures, 8)
	assert.Contains(t, report.Failures[0].Diff, "panic: boom")
	assert.Contains(t, report.Failures[0].Op, "get(")
}

func TestRunCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := Run(ctx, testConfig(config.ProfileDefault), zerolog.Nop())
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)
	assert.False(t, report.Passed())
}

func TestRunWithoutTargets(t *testing.T) {
	_, err := RunWith(context.Background(), testConfig(config.ProfileDefault), zerolog.Nop())
	assert.Error(t, err)
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(config.ProfileDefault)
	cfg.Threads = 0
	_, err := Run(context.Background(), cfg, zerolog.Nop())
	assert.ErrorContains(t, err, "threads")
}

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()
	report := &Report{
		RunID:     "run-1",
		Profile:   config.ProfileStronger,
		Verdict:   VerdictFail,
		StartedAt: time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
		Ops:       []OpCount{{Kind: "get", Outcome: ClassOK, Count: 3}},
		Failures:  []Failure{{Script: 2, Step: 5, Op: "get(1)", Diff: "x", Trace: []string{"add_last(\"a\")"}}},
	}

	paths, err := WriteReport(dir, []string{config.FormatXML, config.FormatJSON}, false, report)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "report.xml"), filepath.Join(dir, "report.json")}, paths)

	f, err := os.Open(paths[0])
	require.NoError(t, err)
	defer f.Close()
	raw, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Contains(t, string(raw), xml.Header)

	var decoded Report
	require.NoError(t, xml.Unmarshal(raw, &decoded))
	assert.Equal(t, "run-1", decoded.RunID)
	assert.Equal(t, VerdictFail, decoded.Verdict)
	require.Len(t, decoded.Failures, 1)
	assert.Equal(t, []string{"add_last(\"a\")"}, decoded.Failures[0].Trace)
}

func TestWriteReportTimestamped(t *testing.T) {
	dir := t.TempDir()
	report := &Report{StartedAt: time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)}

	paths, err := WriteReport(dir, []string{config.FormatXML}, true, report)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "202403011230", "report.xml")}, paths)
}

func TestWriteReportUnknownFormat(t *testing.T) {
	_, err := WriteReport(t.TempDir(), []string{"HTML"}, false, &Report{})
	assert.ErrorContains(t, err, "HTML")
}
