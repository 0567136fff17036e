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
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/renameio/v2"

	"github.com/blastbao/go-arraylist/internal/config"
)

// Verdicts.
const (
	VerdictPass = "pass"
	VerdictFail = "fail"
)

// timestampLayout names report subdirectories when timestamped reports
// are enabled.
const timestampLayout = "200601021504"

// Report summarises a verification run.
type Report struct {
	XMLName   xml.Name  `xml:"listverify" json:"-"`
	RunID     string    `xml:"run_id,attr" json:"run_id"`
	Target    string    `xml:"target,attr" json:"target"`
	Checked   []string  `xml:"checked>target" json:"checked"`
	Profile   string    `xml:"profile,attr" json:"profile"`
	Seed      int64     `xml:"seed,attr" json:"seed"`
	Threads   int       `xml:"threads,attr" json:"threads"`
	Scripts   int       `xml:"scripts,attr" json:"scripts"`
	Steps     int       `xml:"steps,attr" json:"steps"`
	StepsRun  int       `xml:"steps_run,attr" json:"steps_run"`
	Verdict   string    `xml:"verdict,attr" json:"verdict"`
	StartedAt time.Time `xml:"started_at" json:"started_at"`
	EndedAt   time.Time `xml:"ended_at" json:"ended_at"`
	Ops       []OpCount `xml:"ops>op" json:"ops"`
	Failures  []Failure `xml:"failures>failure" json:"failures"`
}

// Failure records the first divergence seen in a script.  Seed and Trace
// are enough to replay it.
type Failure struct {
	Target string   `xml:"target,attr" json:"target"`
	Script int      `xml:"script,attr" json:"script"`
	Seed   int64    `xml:"seed,attr" json:"seed"`
	Step   int      `xml:"step,attr" json:"step"`
	Op     string   `xml:"op,attr" json:"op"`
	Diff   string   `xml:"diff" json:"diff"`
	Trace  []string `xml:"trace>op" json:"trace"`
}

// Passed reports whether the run found no divergence.
func (r *Report) Passed() bool {
	return r.Verdict == VerdictPass
}

// ReportDir returns the directory a report is written to.
func ReportDir(dir string, timestamped bool, r *Report) string {
	if timestamped {
		return filepath.Join(dir, r.StartedAt.UTC().Format(timestampLayout))
	}
	return dir
}

// WriteReport writes r in every requested format and returns the paths
// written.  Existing reports are replaced atomically.
func WriteReport(dir string, formats []string, timestamped bool, r *Report) ([]string, error) {
	dir = ReportDir(dir, timestamped, r)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}

	var paths []string
	for _, format := range formats {
		var (
			name   string
			encode func(io.Writer) error
		)
		switch format {
		case config.FormatXML:
			name, encode = "report.xml", r.encodeXML
		case config.FormatJSON:
			name, encode = "report.json", r.encodeJSON
		default:
			return paths, fmt.Errorf("unknown report format %q", format)
		}
		path := filepath.Join(dir, name)
		if err := writeAtomic(path, encode); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (r *Report) encodeXML(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(r); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func (r *Report) encodeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func writeAtomic(path string, encode func(io.Writer) error) error {
	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create pending %s: %w", filepath.Base(path), err)
	}
	defer func() {
		_ = pending.Cleanup()
	}()

	if err := encode(pending); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
