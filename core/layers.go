package core

// LayerCursor bounds how many layers of a sliced print are drawn.
//
// Current ranges over [1, Max+1]. Max+1 draws every layer alike; Max draws
// the last layer highlighted. How those two differ on screen is up to the
// renderer; the cursor only carries the number.
type LayerCursor struct {
	Current int
	Max     int
}

// NewLayerCursor returns a cursor showing all of maxLayers.
func NewLayerCursor(maxLayers int) *LayerCursor {
	c := &LayerCursor{}
	c.Reset(maxLayers)
	return c
}

// Reset adopts a new layer count and shows everything.
func (c *LayerCursor) Reset(maxLayers int) {
	if maxLayers < 0 {
		maxLayers = 0
	}
	c.Max = maxLayers
	c.Current = maxLayers + 1
}

func (c *LayerCursor) StepUp() {
	c.Current = min(c.Max+1, c.Current+1)
}

func (c *LayerCursor) StepDown() {
	c.Current = max(1, c.Current-1)
}

// SetCurrent jumps to n, clamped into range.
func (c *LayerCursor) SetCurrent(n int) {
	c.Current = max(1, min(c.Max+1, n))
}

// ShowsAll reports whether every layer is drawn uniformly.
func (c *LayerCursor) ShowsAll() bool {
	return c.Current == c.Max+1
}

// HighlightsLast reports whether the topmost drawn layer is the model's
// final layer, drawn distinctly.
func (c *LayerCursor) HighlightsLast() bool {
	return c.Current == c.Max
}
