package chart

import (
	"fmt"
	"sync"

	"github.com/usabbag/rainparis/internal/modules/panel/types"
)

// Surface is where a chart gets mounted.
type Surface interface {
	Create(cfg Config) (Handle, error)
}

// Handle is one live chart instance.
type Handle interface {
	Destroy()
}

// Renderer keeps at most one live chart on its surface.
type Renderer struct {
	mu      sync.Mutex
	surface Surface
	theme   Theme
	current Handle
}

func NewRenderer(surface Surface, theme Theme) *Renderer {
	return &Renderer{surface: surface, theme: theme}
}

// Render replaces the live chart with one showing series. An empty series
// draws an empty plot.
func (r *Renderer) Render(series []types.ChartPoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current != nil {
		r.current.Destroy()
		r.current = nil
	}

	h, err := r.surface.Create(BuildConfig(series, r.theme))
	if err != nil {
		return fmt.Errorf("create chart: %w", err)
	}
	r.current = h
	return nil
}

// Close destroys the live chart, if any.
func (r *Renderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current != nil {
		r.current.Destroy()
		r.current = nil
	}
}

func (r *Renderer) Theme() Theme {
	return r.theme
}
