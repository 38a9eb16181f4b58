package jobs_test

import (
	"testing"

	"github.com/mitrasinergi/sales-api/internal/jobs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestScheduler_AddJobTracksNames(t *testing.T) {
	s := jobs.NewScheduler(zap.NewNop())

	require.NoError(t, s.AddJob("pid_sequence_sync", "@every 1h", func() {}))
	require.NoError(t, s.AddJob("nightly_report", "0 3 * * *", func() {}))

	assert.ElementsMatch(t, []string{"pid_sequence_sync", "nightly_report"}, s.GetJobNames())
}

func TestScheduler_RejectsDuplicateJobName(t *testing.T) {
	s := jobs.NewScheduler(zap.NewNop())

	require.NoError(t, s.AddJob("pid_sequence_sync", "@every 1h", func() {}))
	err := s.AddJob("pid_sequence_sync", "@every 2h", func() {})

	require.Error(t, err)
	assert.Equal(t, []string{"pid_sequence_sync"}, s.GetJobNames())
}

func TestScheduler_RejectsInvalidCronExpression(t *testing.T) {
	s := jobs.NewScheduler(zap.NewNop())

	err := s.AddJob("broken", "not a cron expr", func() {})

	require.Error(t, err)
	assert.Empty(t, s.GetJobNames())
}
