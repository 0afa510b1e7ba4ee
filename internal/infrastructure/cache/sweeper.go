package cache

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// Sweepable is a store whose expired entries can be purged in bulk.
type Sweepable interface {
	Sweep() int
}

// Sweeper purges expired entries of a store on a fixed interval.
type Sweeper struct {
	scheduler *gocron.Scheduler
}

// NewSweeper schedules store.Sweep every interval. The job starts with Start.
func NewSweeper(name string, store Sweepable, interval time.Duration, logger logrus.FieldLogger) (*Sweeper, error) {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	s.WaitForScheduleAll()
	_, err := s.Every(interval).Tag(name).Do(func() {
		if n := store.Sweep(); n > 0 {
			logger.WithFields(logrus.Fields{"cache": name, "evicted": n}).Debug("swept expired cache entries")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule %s sweeper: %w", name, err)
	}
	return &Sweeper{scheduler: s}, nil
}

func (s *Sweeper) Start() { s.scheduler.StartAsync() }

func (s *Sweeper) Stop() { s.scheduler.Stop() }
