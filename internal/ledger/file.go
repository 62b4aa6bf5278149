package ledger

import (
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/daytally-io/daytally/internal/clock"
	"github.com/daytally-io/daytally/internal/config"
	"github.com/daytally-io/daytally/internal/models"
)

const (
	monthKeyLayout = "2006-01"
	dayKeyLayout   = "2006-01-02"
)

// monthFile is the on-disk schema of one ledger month
// (~/.daytally/ledger/2026-08.yaml): day key -> task name -> seconds.
type monthFile struct {
	Version int                           `yaml:"version"`
	Days    map[string]map[string]float64 `yaml:"days"`
}

// FileLedger is a Ledger backed by per-month YAML files. Months are loaded
// lazily and cached; every write goes to disk atomically before the cache
// commits, so a failed write leaves both disk and cache untouched.
type FileLedger struct {
	dir string
	loc *time.Location

	mu     sync.Mutex
	months map[string]*monthFile
}

// NewFileLedger creates a ledger rooted at dir, keying days in loc.
func NewFileLedger(dir string, loc *time.Location) *FileLedger {
	return &FileLedger{
		dir:    dir,
		loc:    loc,
		months: make(map[string]*monthFile),
	}
}

// Credit merges seconds into the (day, taskName) entry, clamping the total
// to MaxDaySeconds.
func (l *FileLedger) Credit(day time.Time, taskName string, seconds float64) error {
	if seconds < 0 {
		return ErrNegativeCredit
	}
	if seconds == 0 {
		return nil
	}

	day = clock.DayStart(day, l.loc)
	dayKey := day.Format(dayKeyLayout)
	monthKey := day.Format(monthKeyLayout)

	l.mu.Lock()
	defer l.mu.Unlock()

	m, err := l.loadMonthLocked(monthKey)
	if err != nil {
		return err
	}

	tasks := m.Days[dayKey]
	if tasks == nil {
		tasks = make(map[string]float64)
	}
	prev, had := tasks[taskName]
	total := prev + seconds
	if total > MaxDaySeconds {
		total = MaxDaySeconds
	}
	tasks[taskName] = total
	m.Days[dayKey] = tasks

	if err := config.SaveYAML(l.monthPath(monthKey), m); err != nil {
		// Roll back the cache so a retry re-credits the full amount.
		if had {
			tasks[taskName] = prev
		} else {
			delete(tasks, taskName)
			if len(tasks) == 0 {
				delete(m.Days, dayKey)
			}
		}
		return err
	}
	return nil
}

// Query returns the entries for a single calendar day, ordered by task name.
func (l *FileLedger) Query(day time.Time) ([]models.Entry, error) {
	day = clock.DayStart(day, l.loc)

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.dayEntriesLocked(day)
}

// QueryRange returns entries between start and end inclusive, ordered by day
// then task name.
func (l *FileLedger) QueryRange(start, end time.Time) ([]models.Entry, error) {
	start = clock.DayStart(start, l.loc)
	end = clock.DayStart(end, l.loc)

	l.mu.Lock()
	defer l.mu.Unlock()

	var entries []models.Entry
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		dayEntries, err := l.dayEntriesLocked(day)
		if err != nil {
			return nil, err
		}
		entries = append(entries, dayEntries...)
	}
	return entries, nil
}

// Invalidate drops the in-memory month cache. The next read reloads from
// disk; used when another process rewrites ledger files.
func (l *FileLedger) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.months = make(map[string]*monthFile)
}

func (l *FileLedger) dayEntriesLocked(day time.Time) ([]models.Entry, error) {
	m, err := l.loadMonthLocked(day.Format(monthKeyLayout))
	if err != nil {
		return nil, err
	}

	tasks := m.Days[day.Format(dayKeyLayout)]
	if len(tasks) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(tasks))
	for name := range tasks {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]models.Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, models.Entry{
			Day:      day,
			TaskName: name,
			Seconds:  tasks[name],
		})
	}
	return entries, nil
}

func (l *FileLedger) loadMonthLocked(monthKey string) (*monthFile, error) {
	if m, ok := l.months[monthKey]; ok {
		return m, nil
	}

	m := &monthFile{Version: 1, Days: make(map[string]map[string]float64)}
	path := l.monthPath(monthKey)
	if config.FileExists(path) {
		if err := config.LoadYAML(path, m); err != nil {
			return nil, err
		}
		if m.Days == nil {
			m.Days = make(map[string]map[string]float64)
		}
	}
	l.months[monthKey] = m
	return m, nil
}

func (l *FileLedger) monthPath(monthKey string) string {
	return filepath.Join(l.dir, monthKey+".yaml")
}
