package views

import (
	"html/template"
	"sync"

	"github.com/usabbag/rainparis/internal/modules/panel/chart"
	"github.com/usabbag/rainparis/internal/modules/panel/types"
)

// Snapshot is the panel's display state, rendered into HTML on each request.
// It is both the panel's view and the chart's mount point.
type Snapshot struct {
	mu       sync.Mutex
	elements []types.DistrictElement
	byID     map[types.DistrictID]types.DistrictElement

	loading     bool
	loadingText string
	location    string
	temperature int
	summary     string
	lastUpdated string

	chartSVG    template.HTML
	chartPoints int
	chartGen    uint64
	liveCharts  int
}

// NewSnapshot returns a snapshot in its loading state offering elements for selection.
func NewSnapshot(elements []types.DistrictElement) *Snapshot {
	byID := make(map[types.DistrictID]types.DistrictElement, len(elements))
	for _, el := range elements {
		byID[el.ID] = el
	}
	return &Snapshot{
		elements:    append([]types.DistrictElement(nil), elements...),
		byID:        byID,
		loading:     true,
		loadingText: types.LoadingMessage,
	}
}

func (s *Snapshot) LookupDistrict(id types.DistrictID) (types.DistrictElement, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	el, ok := s.byID[id]
	return el, ok
}

// Elements returns the selectable districts in display order.
func (s *Snapshot) Elements() []types.DistrictElement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.DistrictElement(nil), s.elements...)
}

func (s *Snapshot) SetLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

func (s *Snapshot) SetLoadingText(text string) {
	s.mu.Lock()
	s.loadingText = text
	s.mu.Unlock()
}

func (s *Snapshot) SetLocation(label string) {
	s.mu.Lock()
	s.location = label
	s.mu.Unlock()
}

func (s *Snapshot) SetTemperature(degrees int) {
	s.mu.Lock()
	s.temperature = degrees
	s.mu.Unlock()
}

func (s *Snapshot) SetSummary(summary string) {
	s.mu.Lock()
	s.summary = summary
	s.mu.Unlock()
}

func (s *Snapshot) SetLastUpdated(text string) {
	s.mu.Lock()
	s.lastUpdated = text
	s.mu.Unlock()
}

// Create draws cfg and mounts it as the current chart.
func (s *Snapshot) Create(cfg chart.Config) (chart.Handle, error) {
	svg, err := chart.DrawSVG(cfg)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.chartGen++
	s.chartSVG = template.HTML(svg)
	s.chartPoints = cfg.Points()
	s.liveCharts++
	return &chartHandle{snapshot: s, gen: s.chartGen}, nil
}

// LiveCharts reports how many chart instances have not been destroyed.
func (s *Snapshot) LiveCharts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.liveCharts
}

// Data copies the current state into a view model.
func (s *Snapshot) Data() *PanelData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &PanelData{
		Loading:     s.loading,
		LoadingText: s.loadingText,
		Pending:     s.loading && s.loadingText != types.FailureMessage,
		Location:    s.location,
		Temperature: s.temperature,
		Summary:     s.summary,
		LastUpdated: s.lastUpdated,
		Chart:       s.chartSVG,
		ChartPoints: s.chartPoints,
	}
}

type chartHandle struct {
	snapshot  *Snapshot
	gen       uint64
	destroyed bool
}

// Destroy unmounts the chart. Destroying twice is a no-op.
func (h *chartHandle) Destroy() {
	s := h.snapshot
	s.mu.Lock()
	defer s.mu.Unlock()
	if h.destroyed {
		return
	}
	h.destroyed = true
	s.liveCharts--
	if s.chartGen == h.gen {
		s.chartSVG = ""
		s.chartPoints = 0
	}
}
