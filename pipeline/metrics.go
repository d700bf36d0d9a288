// SPDX-License-Identifier: MIT
// Package: percolate/pipeline
//
// metrics.go - prometheus collectors for sweep runs.

package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	stageSample  = "sample"
	stageAnalyze = "analyze"
)

var (
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "percolate",
		Name:      "runs_total",
		Help:      "Total sweep runs by outcome",
	}, []string{"status"})

	instancesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "percolate",
		Name:      "instances_total",
		Help:      "Total ensemble instances completed per stage",
	}, []string{"stage"})

	instanceFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "percolate",
		Name:      "instance_failures_total",
		Help:      "Total failed ensemble instances by failure policy",
	}, []string{"policy"})

	stageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "percolate",
		Name:      "stage_duration_seconds",
		Help:      "Per-instance duration of each pipeline stage",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 18), // 0.1ms to ~13s
	}, []string{"stage"})
)
