// Package progress tracks completion of a fixed amount of work, logging as
// updates arrive.
package progress

import (
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go.uber.org/atomic"
)

// Updater accumulates completed work units toward a known total. It is safe
// for concurrent use.
type Updater struct {
	logger log.Logger
	label  string
	total  int64

	completed atomic.Int64
	// last completion percentage we logged at, in units of logInterval
	lastLoggedBucket atomic.Int64
}

// Percentage points between log lines.
const logInterval = 10

func NewUpdater(logger log.Logger, label string, total int64) *Updater {
	return &Updater{logger: logger, label: label, total: total}
}

// Update records delta more completed units.
func (u *Updater) Update(delta int64) {
	if delta == 0 {
		return
	}
	completed := u.completed.Add(delta)
	if u.total <= 0 {
		return
	}
	bucket := completed * 100 / u.total / logInterval
	if bucket > u.lastLoggedBucket.Load() {
		u.lastLoggedBucket.Store(bucket)
		level.Debug(u.logger).Log("msg", "progress", "label", u.label, "complete", u.String())
	}
}

func (u *Updater) Done() bool {
	return u.completed.Load() >= u.total
}

func (u *Updater) Completed() int64 {
	return u.completed.Load()
}

func (u *Updater) Total() int64 {
	return u.total
}

func (u *Updater) String() string {
	return fmt.Sprintf("%d / %d", u.completed.Load(), u.total)
}
