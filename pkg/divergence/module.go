// Package divergence catches a simulation that stops being deterministic.
//
// The first pass through a session records where every player's body ended
// up after each update. Later passes over the same inputs compare against
// that record and report the first place they disagree.
package divergence

import (
	"time"

	"github.com/cfoust/lockstep/pkg/fixed"
	"github.com/cfoust/lockstep/pkg/io"
	"github.com/cfoust/lockstep/pkg/physics"

	"github.com/cespare/xxhash/v2"
	opt "github.com/repeale/fp-go/option"
	"github.com/rs/zerolog/log"
	"github.com/sasha-s/go-deadlock"
	"golang.org/x/time/rate"
)

const SAVED_POINT_COUNT = 8192

type Sample struct {
	Location fixed.WorldPoint3D
	Facing   fixed.Angle
}

type Divergence struct {
	Pass     int
	Index    int
	Player   int16
	Expected Sample
	Actual   Sample
}

type Checker struct {
	mutex deadlock.Mutex

	samples []Sample
	count   int
	pass    int
	first   opt.Option[Divergence]

	// every pass of a long run can diverge; don't flood the log
	limiter *rate.Limiter
}

var _ physics.Observer = (*Checker)(nil)

func New() *Checker {
	return &Checker{
		samples: make([]Sample, 0, SAVED_POINT_COUNT),
		pass:    1,
		first:   opt.None[Divergence](),
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// Begin starts another pass over the recording. Call it whenever the
// simulation is restarted from the beginning.
func (c *Checker) Begin() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.count > 0 {
		c.pass++
	}
	c.count = 0
	c.first = opt.None[Divergence]()
}

func (c *Checker) Observe(player *physics.Player) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.count >= SAVED_POINT_COUNT {
		return
	}

	sample := Sample{
		Location: player.Body.Location,
		Facing:   player.Body.Facing,
	}

	index := c.count
	c.count++

	if c.pass == 1 {
		c.samples = append(c.samples, sample)
		return
	}

	if index >= len(c.samples) || !opt.IsNone(c.first) {
		return
	}

	expected := c.samples[index]
	if expected == sample {
		return
	}

	c.first = opt.Some(Divergence{
		Pass:     c.pass,
		Index:    index,
		Player:   player.Index,
		Expected: expected,
		Actual:   sample,
	})

	if c.limiter.Allow() {
		log.Warn().
			Int("pass", c.pass).
			Int("index", index).
			Int16("player", player.Index).
			Interface("expected", expected).
			Interface("actual", sample).
			Msg("simulation diverged")
	}
}

// First returns the first divergence seen in the current pass.
func (c *Checker) First() opt.Option[Divergence] {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.first
}

func (c *Checker) Pass() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.pass
}

// Digest hashes the recorded samples.
func (c *Checker) Digest() uint64 {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	buffer := io.Buffer{}
	for _, sample := range c.samples {
		if err := io.Marshal(&buffer, sample); err != nil {
			log.Panic().Err(err).Msg("could not encode sample")
		}
	}
	return xxhash.Sum64(buffer)
}
