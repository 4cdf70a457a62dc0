package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/scopedlog/v1/logger"
	"github.com/Aleph-Alpha/scopedlog/v1/redact"
)

func newTestMetrics() *Metrics {
	return NewMetrics(Config{
		Address:                 DefaultMetricsAddress,
		ServiceName:             "metrics-test",
		EnableDefaultCollectors: false,
	})
}

func TestBuiltinCountersTrackLevelsAndStrategies(t *testing.T) {
	m := newTestMetrics()

	m.IncrementRecords("info")
	m.IncrementRecords("info")
	m.IncrementRecords("error")
	m.IncrementRedactions("mask")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.recordsEmitted.WithLabelValues("info")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.recordsEmitted.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fieldsRedacted.WithLabelValues("mask")))
}

func TestRedactionObserverCountsEachRedactedField(t *testing.T) {
	m := newTestMetrics()

	policy := redact.MustNewPolicy(
		[]string{"password", "api_key"},
		map[string]redact.Strategy{"api_key": redact.MaskLast(4)},
		redact.Mask(),
	).WithObserver(m.RedactionObserver())

	policy.Redact(map[string]interface{}{
		"password": "p1",
		"api_key":  "sk-1234567890",
		"note":     "ok",
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.fieldsRedacted.WithLabelValues("mask")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fieldsRedacted.WithLabelValues("mask-last-4")))
}

func TestLoggerEmitsFeedRecordCounter(t *testing.T) {
	m := newTestMetrics()

	log, _ := logger.NewTestLogger(logger.Config{Metrics: m})
	log.Info("one", nil, nil)
	log.Info("two", nil, nil)
	log.Error("boom", nil, nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.recordsEmitted.WithLabelValues("info")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.recordsEmitted.WithLabelValues("error")))
}

func TestRecordRequestDurationObservesHandlerLabel(t *testing.T) {
	m := newTestMetrics()

	m.RecordRequestDuration(time.Now().Add(-10*time.Millisecond), "ingest-document")

	count := testutil.CollectAndCount(m.requestDuration, "request_duration_seconds")
	assert.Equal(t, 1, count)
}

func TestCreateCounterRegistersWithRegistry(t *testing.T) {
	m := newTestMetrics()

	c := m.CreateCounter("cache_evictions_total", "Total cache evictions", []string{"reason"})
	c.WithLabelValues("ttl").Inc()

	families, err := m.Registry.Gather()
	require.NoError(t, err)

	found := false
	for _, mf := range families {
		if mf.GetName() == "cache_evictions_total" {
			found = true
		}
	}
	assert.True(t, found, "dynamically created metrics appear in the registry")
	assert.Equal(t, 1.0, testutil.ToFloat64(c.WithLabelValues("ttl")))
}

func TestServiceLabelIsAppliedToBuiltins(t *testing.T) {
	m := newTestMetrics()
	m.IncrementRecords("info")

	families, err := m.Registry.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != "log_records_total" {
			continue
		}
		require.NotEmpty(t, mf.GetMetric())
		labels := map[string]string{}
		for _, lp := range mf.GetMetric()[0].GetLabel() {
			labels[lp.GetName()] = lp.GetValue()
		}
		assert.Equal(t, "metrics-test", labels["service"])
		return
	}
	t.Fatalf("log_records_total not found in registry")
}
