package hlc

import (
	"cmp"
	"fmt"
	"math"
)

// Clock is a Hybrid Logical Clock over a physical time Source.
//
// last is the greatest timestamp the clock has issued or observed and never
// decreases. Clock is not safe for concurrent use, see SyncClock.
type Clock[T Time[T, D], D cmp.Ordered] struct {
	source  Source[T]
	last    Timestamp[T]
	maxDiff D
	bounded bool
	logger  Logger
}

// NewClock creates a clock seeded with the current reading of source and no
// drift bound.
func NewClock[T Time[T, D], D cmp.Ordered](source Source[T]) (*Clock[T, D], error) {
	c := &Clock[T, D]{
		source: source,
		logger: NewNullLogger(),
	}

	pt, err := c.read()
	if err != nil {
		return nil, err
	}
	c.last = Timestamp[T]{Time: pt}

	return c, nil
}

// WithMaxDiff makes Observe reject remote timestamps whose time is more than
// bound ahead of the local physical time.
func (c *Clock[T, D]) WithMaxDiff(bound D) *Clock[T, D] {
	c.maxDiff = bound
	c.bounded = true
	return c
}

// WithLogger sets the logger used to report rejected and overflowing timestamps.
func (c *Clock[T, D]) WithLogger(logger Logger) *Clock[T, D] {
	if logger == nil {
		logger = NewNullLogger()
	}
	c.logger = logger
	return c
}

// Source gives direct access to the wrapped source, e.g. to move a ManualClock.
func (c *Clock[T, D]) Source() Source[T] {
	return c.source
}

// Last returns the greatest timestamp issued or observed so far.
func (c *Clock[T, D]) Last() Timestamp[T] {
	return c.last
}

// MaxDiff returns the drift bound and whether one is set.
func (c *Clock[T, D]) MaxDiff() (D, bool) {
	return c.maxDiff, c.bounded
}

// Now returns a new timestamp greater than every timestamp previously issued
// or observed by this clock.
func (c *Clock[T, D]) Now() (Timestamp[T], error) {
	pt, err := c.read()
	if err != nil {
		return Timestamp[T]{}, err
	}

	next := Timestamp[T]{Time: pt}
	if c.last.Time.Compare(pt) >= 0 {
		if c.last.Count == math.MaxUint16 {
			c.logger.Field("last", c.last).Errorf("logical counter exhausted")
			return Timestamp[T]{}, fmt.Errorf("%w: at %s", ErrClockOverflow, c.last)
		}
		if c.last.Time.Compare(pt) > 0 {
			c.logger.Field("last", c.last).Field("physical", pt).Debugf("physical time behind last timestamp")
		}
		next = Timestamp[T]{Time: c.last.Time, Count: c.last.Count + 1}
	}

	c.last = next
	return next, nil
}

// Observe merges a timestamp received from another process. It does not
// produce an event of its own, call Now afterwards to stamp the receive.
//
// If a drift bound is set and remote is further ahead of the local physical
// time than the bound, ErrOffsetTooGreat is returned and the clock is unchanged.
// Remote timestamps in the past are always accepted.
func (c *Clock[T, D]) Observe(remote Timestamp[T]) error {
	pt, err := c.read()
	if err != nil {
		return err
	}

	if c.bounded && remote.Time.Compare(pt) > 0 {
		ahead, err := remote.Time.Sub(pt)
		if err != nil {
			return err
		}
		if ahead > c.maxDiff {
			c.logger.Field("remote", remote).Field("physical", pt).Field("offset", ahead).Warnf("rejecting remote timestamp")
			return fmt.Errorf("%w: %s is %v ahead of %v, max %v", ErrOffsetTooGreat, remote, ahead, pt, c.maxDiff)
		}
	}

	c.last = merge(c.last, remote)
	return nil
}

// Receive observes remote and then returns a new timestamp for the receive
// event, which is always after remote.
func (c *Clock[T, D]) Receive(remote Timestamp[T]) (Timestamp[T], error) {
	if err := c.Observe(remote); err != nil {
		return Timestamp[T]{}, err
	}
	return c.Now()
}

func (c *Clock[T, D]) read() (T, error) {
	pt, err := c.source.Now()
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrSourceRead, err)
	}
	return pt, nil
}

// merge takes the later time, on a tie the larger count wins. The winning
// count is kept as is, the increment happens on the next Now.
func merge[T Comparer[T]](local, remote Timestamp[T]) Timestamp[T] {
	switch c := local.Time.Compare(remote.Time); {
	case c > 0:
		return local
	case c < 0:
		return remote
	default:
		return Timestamp[T]{Time: local.Time, Count: max(local.Count, remote.Count)}
	}
}
