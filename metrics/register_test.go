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
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestParseMetric(t *testing.T) {
	name, labels, err := parseMetric("foo")
	require.NoError(t, err)
	require.Equal(t, "foo", name)
	require.Nil(t, labels)

	name, labels, err = parseMetric(`foo{bar="baz",aaa="b"}`)
	require.NoError(t, err)
	require.Equal(t, "foo", name)
	require.Equal(t, prometheus.Labels{"bar": "baz", "aaa": "b"}, labels)

	for _, bad := range []string{"", "1foo", `foo{bar=baz}`, `foo{bar="baz"`, "foo-bar"} {
		_, _, err = parseMetric(bad)
		require.Error(t, err, bad)
	}
}

func TestGetOrCreateCounter(t *testing.T) {
	c := GetOrCreateCounter(`test_counter{kind="a"}`)
	c.Inc()
	c.AddInt(2)
	c.AddUint64(3)
	require.Equal(t, uint64(6), c.GetValueUint64())

	// same name returns the same underlying counter
	again := GetOrCreateCounter(`test_counter{kind="a"}`)
	require.Equal(t, float64(6), again.GetValue())

	other := GetOrCreateCounter(`test_counter{kind="b"}`)
	require.Zero(t, other.GetValue())
}

func TestGetOrCreateGauge(t *testing.T) {
	g := GetOrCreateGauge("test_gauge")
	g.SetInt(7)
	require.Equal(t, uint64(7), g.GetValueUint64())
	g.SetUint32(3)
	require.Equal(t, float64(3), g.GetValue())

	GetOrCreateCounter("test_not_a_gauge")
	require.Panics(t, func() { GetOrCreateGauge("test_not_a_gauge") })
}

func TestHandler(t *testing.T) {
	GetOrCreateCounter("test_handler_total").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "test_handler_total 1")
}
