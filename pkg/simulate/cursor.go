package simulate

// Cursor walks an existing trace step by step. The index lives in the
// cursor, not the trace, so several cursors can navigate the same trace
// independently and navigation never re-runs the simulation.
type Cursor struct {
	trace *Trace
	index int
}

// NewCursor positions a cursor at step 0 of the trace.
func NewCursor(trace *Trace) *Cursor {
	return &Cursor{trace: trace}
}

// Current returns the configuration under the cursor.
func (c *Cursor) Current() Config {
	return c.trace.Configs[c.index]
}

// Index returns the current step index.
func (c *Cursor) Index() int { return c.index }

// Len returns the trace length.
func (c *Cursor) Len() int { return c.trace.Len() }

// Next advances one step. At the last configuration it stays put and
// reports false.
func (c *Cursor) Next() bool {
	if c.index >= c.trace.Len()-1 {
		return false
	}
	c.index++
	return true
}

// Prev steps back. At step 0 it stays put and reports false.
func (c *Cursor) Prev() bool {
	if c.index <= 0 {
		return false
	}
	c.index--
	return true
}

// Reset moves the cursor back to step 0.
func (c *Cursor) Reset() {
	c.index = 0
}
