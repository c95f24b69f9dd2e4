package cron

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunsJobImmediatelyOnStart(t *testing.T) {
	ran := make(chan struct{}, 1)
	s := NewScheduler(Job{
		Name:     "startup_job",
		Interval: time.Hour,
		Run: func(ctx context.Context) error {
			select {
			case ran <- struct{}{}:
			default:
			}
			return nil
		},
	})

	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
}

func TestScheduler_StopHaltsJobs(t *testing.T) {
	var runs int32
	s := NewScheduler(Job{
		Name:     "counting_job",
		Interval: 10 * time.Millisecond,
		Run: func(ctx context.Context) error {
			atomic.AddInt32(&runs, 1)
			return nil
		},
	})

	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	stopped := atomic.LoadInt32(&runs)
	assert.GreaterOrEqual(t, stopped, int32(1))

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stopped, atomic.LoadInt32(&runs))
}
