package cron

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeCleaner struct {
	days  []int
	err   error
	calls int
}

func (f *fakeCleaner) CleanupOldLogs(days int) (int64, error) {
	f.days = append(f.days, days)
	return 2, f.err
}

func (f *fakeCleaner) PurgeExpired() (int64, error) {
	f.calls++
	return 1, f.err
}

func TestRunCleanup(t *testing.T) {
	f := &fakeCleaner{}
	RunCleanup(f, f, 90)
	assert.Equal(t, []int{90}, f.days)
	assert.Equal(t, 1, f.calls)
}

func TestRunCleanupRetentionDisabled(t *testing.T) {
	f := &fakeCleaner{}
	RunCleanup(f, f, 0)
	assert.Empty(t, f.days)
	assert.Equal(t, 1, f.calls)
}

func TestRunCleanupContinuesAfterFailure(t *testing.T) {
	f := &fakeCleaner{err: errors.New("db down")}
	RunCleanup(f, f, 30)
	assert.Equal(t, []int{30}, f.days)
	assert.Equal(t, 1, f.calls)
}
