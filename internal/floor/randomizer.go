package floor

import "time"

// RandomizerConfig controls the highlight sweep.
type RandomizerConfig struct {
	Duration    time.Duration // Total sweep time
	MinInterval time.Duration // Step interval at the start of the sweep
	MaxInterval time.Duration // Step interval at the end of the sweep
}

// DefaultRandomizerConfig returns the standard 5s sweep slowing from 200ms to 600ms.
func DefaultRandomizerConfig() RandomizerConfig {
	return RandomizerConfig{
		Duration:    5 * time.Second,
		MinInterval: 200 * time.Millisecond,
		MaxInterval: 600 * time.Millisecond,
	}
}

// Randomizer sweeps a highlight across the cells in row-major order,
// slowing down on an ease-out curve until the duration runs out.
type Randomizer struct {
	cfg         RandomizerConfig
	cells       int
	elapsed     time.Duration
	sinceStep   time.Duration
	highlighted int
	finished    bool
	steps       int
}

// NewRandomizer starts a sweep over cells cells with the highlight on start.
func NewRandomizer(cfg RandomizerConfig, cells, start int) *Randomizer {
	if cells < 1 {
		cells = 1
	}
	return &Randomizer{
		cfg:         cfg,
		cells:       cells,
		highlighted: ((start % cells) + cells) % cells,
	}
}

// Interval returns the step interval at the current elapsed time.
// interval(t) = min + (max-min) * (t/T)^2
func (r *Randomizer) Interval() time.Duration {
	return intervalAt(r.cfg, r.elapsed)
}

func intervalAt(cfg RandomizerConfig, elapsed time.Duration) time.Duration {
	progress := 1.0
	if cfg.Duration > 0 {
		progress = float64(elapsed) / float64(cfg.Duration)
	}
	progress = max(0, min(1, progress))
	span := float64(cfg.MaxInterval - cfg.MinInterval)
	return cfg.MinInterval + time.Duration(span*progress*progress)
}

// Step advances the sweep by delta. It returns true once the sweep has finished.
func (r *Randomizer) Step(delta time.Duration) bool {
	if r.finished {
		return true
	}
	if delta < 0 {
		delta = 0
	}

	r.elapsed += delta
	if r.elapsed >= r.cfg.Duration {
		r.finished = true
		return true
	}

	r.sinceStep += delta
	if r.sinceStep >= r.Interval() {
		r.sinceStep = 0
		r.highlighted = (r.highlighted + 1) % r.cells
		r.steps++
	}
	return false
}

// Highlighted returns the index currently lit.
func (r *Randomizer) Highlighted() int {
	return r.highlighted
}

// Elapsed returns the time spent sweeping so far.
func (r *Randomizer) Elapsed() time.Duration {
	return r.elapsed
}

// Steps returns how many times the highlight has moved.
func (r *Randomizer) Steps() int {
	return r.steps
}
