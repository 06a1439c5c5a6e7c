// Package ticker drives a session in real time. It is a time.Ticker that can
// be paused without losing its channel, so a paused session resumes on the
// same schedule.
package ticker

import (
	"sync/atomic"
	"time"

	"github.com/sasha-s/go-deadlock"
)

// Marathon-style simulations run at thirty ticks a second.
const DEFAULT_RATE = 30

type Ticker struct {
	C <-chan time.Time // The channel on which the ticks are delivered.

	mutex  deadlock.Mutex
	pause  chan bool
	paused atomic.Bool
	stop   chan struct{}
	ticker *time.Ticker
}

// Period is the time between ticks at the given rate.
func Period(ticksPerSecond int) time.Duration {
	if ticksPerSecond <= 0 {
		ticksPerSecond = DEFAULT_RATE
	}
	return time.Second / time.Duration(ticksPerSecond)
}

func New(d time.Duration) *Ticker {
	c := make(chan time.Time)
	t := &Ticker{
		C:      c,
		pause:  make(chan bool),
		stop:   make(chan struct{}),
		ticker: time.NewTicker(d),
	}

	go t.run(c)

	return t
}

func (t *Ticker) run(c chan<- time.Time) {
	defer close(t.stop)

	for {
		select {
		case now := <-t.ticker.C:
			select {
			case c <- now:
			case shouldPause := <-t.pause:
				if shouldPause && !t.wait() {
					return
				}
			case <-t.stop:
				return
			}
		case shouldPause := <-t.pause:
			if shouldPause && !t.wait() {
				return
			}
		case <-t.stop:
			return
		}
	}
}

// wait blocks until resumed. It returns false if the ticker was stopped
// instead.
func (t *Ticker) wait() bool {
	for {
		select {
		case shouldPause := <-t.pause:
			if !shouldPause {
				return true
			}
		case <-t.stop:
			return false
		}
	}
}

func (t *Ticker) Pause() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.stop != nil {
		t.pause <- true
		t.paused.Store(true)
	}
}

func (t *Ticker) Paused() bool {
	return t.paused.Load()
}

func (t *Ticker) Resume() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.stop != nil {
		t.pause <- false
		t.paused.Store(false)
	}
}

func (t *Ticker) Stop() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.stop != nil {
		t.stop <- struct{}{}
		<-t.stop
		t.stop = nil
		t.ticker.Stop()
	}
}

func (t *Ticker) Stopped() bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.stop == nil
}
