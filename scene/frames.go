package scene

// Frames double-buffers a Database between a simulation and a renderer.
// The simulation mutates Current while the renderer reads Last; Advance
// publishes Current as the new Last. Neither side ever sees the other's
// changes, and the position hierarchy is only copied when Current is first
// mutated after an Advance.
type Frames struct {
	last    *Database
	current *Database
	count   uint64
}

// NewFrames starts double-buffering db. Frames takes ownership of db.
func NewFrames(db *Database) *Frames {
	return &Frames{
		last:    db.Clone(),
		current: db,
	}
}

// Current returns the database being built for the next frame.
func (f *Frames) Current() *Database { return f.current }

// Last returns the database published by the most recent Advance. It must
// be treated as read-only.
func (f *Frames) Last() *Database { return f.last }

// Count returns how many times Advance has been called.
func (f *Frames) Count() uint64 { return f.count }

// Advance publishes the current database as the last frame and starts a new
// current frame from a snapshot of it. Any read view previously obtained
// from Last stays valid but is no longer updated.
func (f *Frames) Advance() {
	f.last.Release()
	f.last = f.current
	f.current = f.current.Clone()
	f.count++
}
