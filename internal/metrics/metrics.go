/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operation outcomes recorded against the operations counter.
const (
	OutcomeOK       = "ok"
	OutcomeDeclined = "declined"
	OutcomeError    = "error"
)

// Collector tracks ledger operation counts on its own registry. A nil
// *Collector is valid and records nothing, so callers never need to guard.
type Collector struct {
	registry        *prometheus.Registry
	operationsTotal *prometheus.CounterVec
	usersGauge      prometheus.Gauge
	accountsGauge   prometheus.Gauge
}

func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	return &Collector{
		registry: registry,
		operationsTotal: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "demobank_operations_total",
			Help: "Ledger operations by operation name and outcome",
		}, []string{"operation", "outcome"}),
		usersGauge: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "demobank_users",
			Help: "Number of registered users",
		}),
		accountsGauge: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "demobank_accounts",
			Help: "Number of open accounts",
		}),
	}
}

func (c *Collector) RecordOperation(operation, outcome string) {
	if c == nil {
		return
	}
	c.operationsTotal.WithLabelValues(operation, outcome).Inc()
}

func (c *Collector) SetEntityCounts(users, accounts int) {
	if c == nil {
		return
	}
	c.usersGauge.Set(float64(users))
	c.accountsGauge.Set(float64(accounts))
}

// Handler serves the collector's registry for scraping.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
