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
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// OpCount is the number of times an op finished with a given outcome
// class.
type OpCount struct {
	Target  string `xml:"target,attr" json:"target"`
	Kind    string `xml:"kind,attr" json:"kind"`
	Outcome string `xml:"outcome,attr" json:"outcome"`
	Count   int64  `xml:"count,attr" json:"count"`
}

// metrics keeps per-run counters in a private registry so concurrent runs
// never share state.
type metrics struct {
	reg     *prometheus.Registry
	ops     *prometheus.CounterVec
	scripts *prometheus.CounterVec
}

func newMetrics() *metrics {
	m := &metrics{
		reg: prometheus.NewRegistry(),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "listverify",
			Name:      "ops_total",
			Help:      "List operations applied to the list under test, by outcome class.",
		}, []string{"target", "op", "outcome"}),
		scripts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "listverify",
			Name:      "scripts_total",
			Help:      "Scripts executed, by result.",
		}, []string{"target", "result"}),
	}
	m.reg.MustRegister(m.ops, m.scripts)
	return m
}

func (m *metrics) observe(target string, kind OpKind, out Outcome) {
	m.ops.WithLabelValues(target, string(kind), out.Class).Inc()
}

func (m *metrics) script(target string, passed bool) {
	result := "pass"
	if !passed {
		result = "fail"
	}
	m.scripts.WithLabelValues(target, result).Inc()
}

// opCounts flattens the ops counter, sorted by target, op and outcome.
func (m *metrics) opCounts() ([]OpCount, error) {
	families, err := m.reg.Gather()
	if err != nil {
		return nil, err
	}
	var counts []OpCount
	for _, mf := range families {
		if mf.GetName() != "listverify_ops_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			counts = append(counts, OpCount{
				Target:  label(metric, "target"),
				Kind:    label(metric, "op"),
				Outcome: label(metric, "outcome"),
				Count:   int64(metric.GetCounter().GetValue()),
			})
		}
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Target != counts[j].Target {
			return counts[i].Target < counts[j].Target
		}
		if counts[i].Kind != counts[j].Kind {
			return counts[i].Kind < counts[j].Kind
		}
		return counts[i].Outcome < counts[j].Outcome
	})
	return counts, nil
}

func label(metric *dto.Metric, name string) string {
	for _, lp := range metric.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}
