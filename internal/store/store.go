// Package store holds the visualizer's only mutable state: the four slider
// values. Every write is clamped to the slider bounds, snapped to the slider
// step, and followed by a synchronous recompute that subscribers observe.
package store

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/GoSim-25-26J-441/cobb-douglas/internal/production"
	"github.com/GoSim-25-26J-441/cobb-douglas/pkg/logger"
)

var ErrUnknownSlider = errors.New("unknown slider")

// Store owns the live parameters and the snapshot derived from them.
type Store struct {
	mu       sync.RWMutex
	sliders  []Slider
	defaults production.Params
	snapshot production.Snapshot
	log      *slog.Logger

	subMu  sync.Mutex
	nextID int
	subs   map[int]func(production.Snapshot)
}

// New creates a store starting at defaults, clamped to the slider bounds.
func New(defaults production.Params, domain production.Domain) (*Store, error) {
	s := &Store{
		sliders: DefaultSliders(),
		log:     logger.With("component", "store"),
		subs:    make(map[int]func(production.Snapshot)),
	}
	s.defaults = s.clampAll(defaults)
	if s.defaults != defaults {
		logger.Warn("defaults clamped to slider bounds", "requested", defaults, "using", s.defaults)
	}

	snap, err := production.Recompute(s.defaults, domain)
	if err != nil {
		return nil, fmt.Errorf("initial recompute: %w", err)
	}
	s.snapshot = snap
	return s, nil
}

// Sliders returns the slider definitions in display order.
func (s *Store) Sliders() []Slider {
	out := make([]Slider, len(s.sliders))
	copy(out, s.sliders)
	return out
}

// Slider looks up one slider definition.
func (s *Store) Slider(id SliderID) (Slider, error) {
	for _, sl := range s.sliders {
		if sl.ID == id {
			return sl, nil
		}
	}
	return Slider{}, fmt.Errorf("%w: %s", ErrUnknownSlider, id)
}

// Params returns the live parameters.
func (s *Store) Params() production.Params {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Params
}

// Defaults returns the parameters Reset restores.
func (s *Store) Defaults() production.Params {
	return s.defaults
}

// Snapshot returns the data derived from the live parameters.
func (s *Store) Snapshot() production.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Value returns the current value of one slider.
func (s *Store) Value(id SliderID) (float64, error) {
	if _, err := s.Slider(id); err != nil {
		return 0, err
	}
	p := s.Params()
	return id.In(p), nil
}

// Set writes one slider. The value is clamped and snapped before use.
func (s *Store) Set(id SliderID, value float64) (production.Snapshot, error) {
	sl, err := s.Slider(id)
	if err != nil {
		return production.Snapshot{}, err
	}
	return s.update(sl, func(float64) float64 { return value })
}

// Nudge moves a slider by steps slider steps (negative moves down).
func (s *Store) Nudge(id SliderID, steps int) (production.Snapshot, error) {
	sl, err := s.Slider(id)
	if err != nil {
		return production.Snapshot{}, err
	}
	return s.update(sl, func(cur float64) float64 {
		return cur + float64(steps)*sl.Step
	})
}

// update applies next to the slider's current value as one read-modify-write
// under the state lock.
func (s *Store) update(sl Slider, next func(cur float64) float64) (production.Snapshot, error) {
	id := sl.ID

	s.mu.Lock()
	p := s.snapshot.Params
	before := id.In(p)
	p = id.set(p, sl.Clamp(next(before)))
	if p == s.snapshot.Params {
		snap := s.snapshot
		s.mu.Unlock()
		return snap, nil
	}
	snap, err := production.Refresh(s.snapshot, p)
	if err != nil {
		s.mu.Unlock()
		return production.Snapshot{}, fmt.Errorf("recompute after %s change: %w", id, err)
	}
	s.snapshot = snap
	s.mu.Unlock()

	s.log.Debug("slider changed", "slider", string(id), "from", before, "to", id.In(p))
	s.notify(snap)
	return snap, nil
}

// Reset restores the defaults.
func (s *Store) Reset() (production.Snapshot, error) {
	s.mu.Lock()
	if s.snapshot.Params == s.defaults {
		snap := s.snapshot
		s.mu.Unlock()
		return snap, nil
	}
	snap, err := production.Refresh(s.snapshot, s.defaults)
	if err != nil {
		s.mu.Unlock()
		return production.Snapshot{}, fmt.Errorf("recompute after reset: %w", err)
	}
	s.snapshot = snap
	s.mu.Unlock()

	s.log.Debug("parameters reset")
	s.notify(snap)
	return snap, nil
}

// Subscribe registers fn to run after every change. The returned function
// removes the subscription.
func (s *Store) Subscribe(fn func(production.Snapshot)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// notify runs subscribers in registration order, outside the state lock.
func (s *Store) notify(snap production.Snapshot) {
	s.subMu.Lock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(production.Snapshot), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.subs[id])
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

func (s *Store) clampAll(p production.Params) production.Params {
	for _, sl := range s.sliders {
		p = sl.ID.set(p, sl.Clamp(sl.ID.In(p)))
	}
	return p
}
