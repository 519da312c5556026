package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lead-sync/internal/domain"
)

func TestObserveLeads(t *testing.T) {
	r := NewRun()
	r.ObserveLeads([]domain.Lead{
		{Kind: domain.KindCall, Status: domain.StatusQuoted},
		{Kind: domain.KindCall, Status: domain.StatusQuoted},
		{Kind: domain.KindForm, Status: domain.StatusNew},
	})

	assert.Equal(t, 2.0, testutil.ToFloat64(r.leads.WithLabelValues("call", "quoted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.leads.WithLabelValues("form", "new")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.leads.WithLabelValues("form", "lost")))
	assert.Equal(t, 12, testutil.CollectAndCount(r.leads))
}

func TestWriteTextfile(t *testing.T) {
	r := NewRun()
	r.ObservePage()
	r.ObservePage()
	r.ObserveLeads(nil)
	r.Finish(1500*time.Millisecond, time.Unix(1700000000, 0))

	path := filepath.Join(t.TempDir(), "textfile", "leadsync.prom")
	require.NoError(t, r.WriteTextfile(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(b)

	assert.Contains(t, out, "leadsync_pages_fetched 2\n")
	assert.Contains(t, out, "leadsync_run_duration_seconds 1.5\n")
	assert.Contains(t, out, "leadsync_last_success_timestamp_seconds 1.7e+09\n")
	assert.Contains(t, out, `leadsync_leads{kind="call",status="new"} 0`)
}
