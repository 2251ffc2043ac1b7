package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type fakePoolStats struct {
	total, idle, acquired int32
}

func (s fakePoolStats) TotalConns() int32    { return s.total }
func (s fakePoolStats) IdleConns() int32     { return s.idle }
func (s fakePoolStats) AcquiredConns() int32 { return s.acquired }

type fakeProvider struct {
	stats fakePoolStats
}

func (p *fakeProvider) Stat() PoolStats { return p.stats }

func TestObserveIngestRun(t *testing.T) {
	before := testutil.ToFloat64(IngestRunsTotal.WithLabelValues("published"))

	ObserveIngestRun("published", 1.5)

	after := testutil.ToFloat64(IngestRunsTotal.WithLabelValues("published"))
	assert.Equal(t, before+1, after)
}

func TestObservePublished(t *testing.T) {
	postsBefore := testutil.ToFloat64(PostsPublishedTotal.WithLabelValues("AI"))
	tweetsBefore := testutil.ToFloat64(TweetsTotal.WithLabelValues("failed"))

	ObservePublished("AI", "failed")

	assert.Equal(t, postsBefore+1, testutil.ToFloat64(PostsPublishedTotal.WithLabelValues("AI")))
	assert.Equal(t, tweetsBefore+1, testutil.ToFloat64(TweetsTotal.WithLabelValues("failed")))
}

func TestObserveImageRehost(t *testing.T) {
	rehostedBefore := testutil.ToFloat64(ImageRehostTotal.WithLabelValues("rehosted"))
	fallbackBefore := testutil.ToFloat64(ImageRehostTotal.WithLabelValues("fallback"))

	ObserveImageRehost(true)
	ObserveImageRehost(false)

	assert.Equal(t, rehostedBefore+1, testutil.ToFloat64(ImageRehostTotal.WithLabelValues("rehosted")))
	assert.Equal(t, fallbackBefore+1, testutil.ToFloat64(ImageRehostTotal.WithLabelValues("fallback")))
}

func TestPoolStatsCollector(t *testing.T) {
	provider := &fakeProvider{stats: fakePoolStats{total: 10, idle: 7, acquired: 3}}
	collector := NewPoolStatsCollectorWithProvider(provider)

	collector.Start(50 * time.Millisecond)
	defer collector.Stop()

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("total")) == 10 &&
			testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("idle")) == 7 &&
			testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("in_use")) == 3
	}, time.Second, 10*time.Millisecond)
}
