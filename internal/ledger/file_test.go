package ledger

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) *FileLedger {
	t.Helper()
	return NewFileLedger(t.TempDir(), time.UTC)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCreditCreatesEntry(t *testing.T) {
	led := newTestLedger(t)

	err := led.Credit(day(2026, 8, 30), "Writing", 90)
	require.NoError(t, err)

	entries, err := led.Query(day(2026, 8, 30))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Writing", entries[0].TaskName)
	assert.Equal(t, 90.0, entries[0].Seconds)
}

func TestCreditMergesIntoExistingEntry(t *testing.T) {
	led := newTestLedger(t)

	require.NoError(t, led.Credit(day(2026, 8, 30), "Writing", 90))
	require.NoError(t, led.Credit(day(2026, 8, 30), "Writing", 30))

	entries, err := led.Query(day(2026, 8, 30))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 120.0, entries[0].Seconds)
}

func TestCreditNormalizesInstantToDay(t *testing.T) {
	led := newTestLedger(t)

	at := time.Date(2026, 8, 30, 17, 42, 11, 0, time.UTC)
	require.NoError(t, led.Credit(at, "Writing", 10))

	entries, err := led.Query(day(2026, 8, 30))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Day.Equal(day(2026, 8, 30)))
}

func TestCreditClampsAtMaxDaySeconds(t *testing.T) {
	led := newTestLedger(t)

	require.NoError(t, led.Credit(day(2026, 8, 30), "Writing", MaxDaySeconds-10))
	require.NoError(t, led.Credit(day(2026, 8, 30), "Writing", 100))

	entries, err := led.Query(day(2026, 8, 30))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, float64(MaxDaySeconds), entries[0].Seconds)
}

func TestCreditRejectsNegative(t *testing.T) {
	led := newTestLedger(t)

	err := led.Credit(day(2026, 8, 30), "Writing", -1)
	assert.ErrorIs(t, err, ErrNegativeCredit)

	entries, err := led.Query(day(2026, 8, 30))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCreditZeroIsNoop(t *testing.T) {
	led := newTestLedger(t)

	require.NoError(t, led.Credit(day(2026, 8, 30), "Writing", 0))

	entries, err := led.Query(day(2026, 8, 30))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestConcurrentCreditsBothReflected(t *testing.T) {
	led := newTestLedger(t)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, led.Credit(day(2026, 8, 30), "Writing", 5))
		}()
	}
	wg.Wait()

	entries, err := led.Query(day(2026, 8, 30))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 10.0, entries[0].Seconds)
}

func TestQueryEmptyDay(t *testing.T) {
	led := newTestLedger(t)

	entries, err := led.Query(day(2026, 8, 30))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestQueryOrdersEntriesByTaskName(t *testing.T) {
	led := newTestLedger(t)

	require.NoError(t, led.Credit(day(2026, 8, 30), "Writing", 1))
	require.NoError(t, led.Credit(day(2026, 8, 30), "Admin", 2))
	require.NoError(t, led.Credit(day(2026, 8, 30), "Meetings", 3))

	entries, err := led.Query(day(2026, 8, 30))
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Admin", entries[0].TaskName)
	assert.Equal(t, "Meetings", entries[1].TaskName)
	assert.Equal(t, "Writing", entries[2].TaskName)
}

func TestQueryRangeSpansMonths(t *testing.T) {
	led := newTestLedger(t)

	require.NoError(t, led.Credit(day(2026, 8, 31), "Writing", 100))
	require.NoError(t, led.Credit(day(2026, 9, 1), "Writing", 200))
	require.NoError(t, led.Credit(day(2026, 9, 2), "Admin", 300))

	entries, err := led.QueryRange(day(2026, 8, 31), day(2026, 9, 2))
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.True(t, entries[0].Day.Equal(day(2026, 8, 31)))
	assert.True(t, entries[1].Day.Equal(day(2026, 9, 1)))
	assert.True(t, entries[2].Day.Equal(day(2026, 9, 2)))
}

func TestQueryRangeInclusiveBounds(t *testing.T) {
	led := newTestLedger(t)

	require.NoError(t, led.Credit(day(2026, 8, 29), "Writing", 1))
	require.NoError(t, led.Credit(day(2026, 8, 30), "Writing", 2))
	require.NoError(t, led.Credit(day(2026, 8, 31), "Writing", 3))

	entries, err := led.QueryRange(day(2026, 8, 30), day(2026, 8, 30))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 2.0, entries[0].Seconds)
}

func TestReloadFromDisk(t *testing.T) {
	dir := t.TempDir()

	first := NewFileLedger(dir, time.UTC)
	require.NoError(t, first.Credit(day(2026, 8, 30), "Writing", 42))

	// A fresh ledger over the same directory must see the persisted data.
	second := NewFileLedger(dir, time.UTC)
	entries, err := second.Query(day(2026, 8, 30))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 42.0, entries[0].Seconds)
}

func TestInvalidateDropsCache(t *testing.T) {
	dir := t.TempDir()

	a := NewFileLedger(dir, time.UTC)
	b := NewFileLedger(dir, time.UTC)

	require.NoError(t, a.Credit(day(2026, 8, 30), "Writing", 10))

	// b cached the empty month on first read.
	entries, err := b.Query(day(2026, 8, 30))
	require.NoError(t, err)
	require.Empty(t, entries)

	// a writes more; b only sees it after invalidation.
	require.NoError(t, a.Credit(day(2026, 8, 30), "Writing", 10))
	b.Invalidate()

	entries, err = b.Query(day(2026, 8, 30))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 20.0, entries[0].Seconds)
}

func TestCreditFailedWriteLeavesCacheUntouched(t *testing.T) {
	// Point the ledger at a regular file so directory creation fails.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	led := NewFileLedger(blocker, time.UTC)

	err := led.Credit(day(2026, 8, 30), "Writing", 10)
	require.Error(t, err)

	entries, qerr := led.Query(day(2026, 8, 30))
	require.NoError(t, qerr)
	assert.Empty(t, entries)
}
