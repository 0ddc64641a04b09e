// Copyright 2024 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

package metrics

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z_:][a-zA-Z0-9_:]*$`)
	labelRe = regexp.MustCompile(`^([a-zA-Z_][a-zA-Z0-9_]*)="((?:[^"\\]|\\.)*)"$`)
)

// set is a collection of metrics registered in a single prometheus registry.
type set struct {
	mu       sync.Mutex
	registry *prometheus.Registry
	metrics  map[string]prometheus.Collector
}

var defaultSet = newSet()

func newSet() *set {
	return &set{
		registry: prometheus.NewRegistry(),
		metrics:  map[string]prometheus.Collector{},
	}
}

// parseMetric splits `foo{bar="baz",aaa="b"}` into its name and labels.
func parseMetric(s string) (string, prometheus.Labels, error) {
	n := strings.IndexByte(s, '{')
	if n < 0 {
		if !nameRe.MatchString(s) {
			return "", nil, fmt.Errorf("invalid metric name %q", s)
		}
		return s, nil, nil
	}
	name := s[:n]
	if !nameRe.MatchString(name) || !strings.HasSuffix(s, "}") {
		return "", nil, fmt.Errorf("invalid metric name %q", s)
	}
	labels := prometheus.Labels{}
	body := s[n+1 : len(s)-1]
	if body == "" {
		return name, labels, nil
	}
	for _, pair := range strings.Split(body, ",") {
		m := labelRe.FindStringSubmatch(strings.TrimSpace(pair))
		if m == nil {
			return "", nil, fmt.Errorf("invalid label %q in metric %q", pair, s)
		}
		labels[m[1]] = m[2]
	}
	return name, labels, nil
}

func (s *set) getOrCreate(name string, create func(opts prometheus.Opts) prometheus.Collector) (prometheus.Collector, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.metrics[name]; ok {
		return c, nil
	}
	metricName, labels, err := parseMetric(name)
	if err != nil {
		return nil, err
	}
	c := create(prometheus.Opts{Name: metricName, Help: metricName, ConstLabels: labels})
	if err := s.registry.Register(c); err != nil {
		return nil, err
	}
	s.metrics[name] = c
	return c, nil
}

func (s *set) GetOrCreateCounter(name string) (prometheus.Counter, error) {
	c, err := s.getOrCreate(name, func(opts prometheus.Opts) prometheus.Collector {
		return prometheus.NewCounter(prometheus.CounterOpts(opts))
	})
	if err != nil {
		return nil, err
	}
	counter, ok := c.(prometheus.Counter)
	if !ok {
		return nil, fmt.Errorf("metric %q is not a counter", name)
	}
	return counter, nil
}

func (s *set) GetOrCreateGauge(name string) (prometheus.Gauge, error) {
	c, err := s.getOrCreate(name, func(opts prometheus.Opts) prometheus.Collector {
		return prometheus.NewGauge(prometheus.GaugeOpts(opts))
	})
	if err != nil {
		return nil, err
	}
	gauge, ok := c.(prometheus.Gauge)
	if !ok {
		return nil, fmt.Errorf("metric %q is not a gauge", name)
	}
	return gauge, nil
}
