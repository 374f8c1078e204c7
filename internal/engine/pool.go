package engine

import (
	"image"
	"sync"
)

// framePool recycles frame canvases between the compositing workers
// and the writer. Overlay frames are large and short-lived, reuse
// keeps the GC out of the per-frame path.
type framePool struct {
	pools map[string]*sync.Pool
	mu    sync.RWMutex
}

func newFramePool() *framePool {
	return &framePool{pools: make(map[string]*sync.Pool)}
}

func (p *framePool) Get(rect image.Rectangle) *image.RGBA {
	key := rect.String()
	p.mu.RLock()
	pool, exists := p.pools[key]
	p.mu.RUnlock()

	if !exists {
		p.mu.Lock()
		pool, exists = p.pools[key]
		if !exists {
			pool = &sync.Pool{
				New: func() interface{} {
					return image.NewRGBA(rect)
				},
			}
			p.pools[key] = pool
		}
		p.mu.Unlock()
	}

	return pool.Get().(*image.RGBA)
}

func (p *framePool) Put(img *image.RGBA) {
	if img == nil {
		return
	}
	key := img.Rect.String()
	p.mu.RLock()
	pool, exists := p.pools[key]
	p.mu.RUnlock()

	if exists {
		pool.Put(img)
	}
}
