package audio

import "sync"

// cueCache stores pre-generated float buffers
type cueCache struct {
	mu    sync.RWMutex
	store [cueCount]floatBuffer
	ready [cueCount]bool
}

func newCueCache() *cueCache {
	return &cueCache{}
}

// get returns cached buffer or generates on demand
func (c *cueCache) get(cue Cue) floatBuffer {
	if cue < 0 || cue >= cueCount {
		return nil
	}

	c.mu.RLock()
	if c.ready[cue] {
		buf := c.store[cue]
		c.mu.RUnlock()
		return buf
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.ready[cue] {
		return c.store[cue]
	}

	buf := generateCue(cue)
	c.store[cue] = buf
	c.ready[cue] = true
	return buf
}

// preload generates every cue so the first hit does not stall the loop
func (c *cueCache) preload() {
	for cue := Cue(0); cue < cueCount; cue++ {
		c.get(cue)
	}
}
