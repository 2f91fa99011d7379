// Package service holds the weather panel: it turns a district selection into
// a weather request and renders the result through a view and a chart.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/usabbag/rainparis/internal/modules/panel/client"
	"github.com/usabbag/rainparis/internal/modules/panel/types"
)

var (
	ErrInvalidDistrict = errors.New("invalid district id")
	ErrClosed          = errors.New("panel closed")

	// ErrSuperseded is returned when a newer selection began before this one finished.
	ErrSuperseded = errors.New("selection superseded by a newer one")
)

type Fetcher interface {
	FetchWeather(ctx context.Context, id types.DistrictID) (types.WeatherResponse, error)
}

// DistrictLookup finds the selectable element for a district, if the UI has one.
type DistrictLookup interface {
	LookupDistrict(id types.DistrictID) (types.DistrictElement, bool)
}

// View is the panel's display. SetLoading(true) hides the content region and
// SetLoading(false) reveals it.
type View interface {
	DistrictLookup
	SetLoading(loading bool)
	SetLoadingText(text string)
	SetLocation(label string)
	SetTemperature(degrees int)
	SetSummary(summary string)
	SetLastUpdated(text string)
}

type ChartRenderer interface {
	Render(series []types.ChartPoint) error
	Close()
}

type Panel struct {
	fetcher Fetcher
	view    View
	chart   ChartRenderer
	logger  *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	state  types.PanelState
	closed bool
}

func NewPanel(fetcher Fetcher, view View, chart ChartRenderer, logger *slog.Logger) *Panel {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Panel{
		fetcher: fetcher,
		view:    view,
		chart:   chart,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// State returns a copy of the current selection state.
func (p *Panel) State() types.PanelState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// SelectDistrict shows the weather for id and blocks until the response is
// rendered or has failed. Failures are shown in the loading region and returned.
// Close cancels the request and waits for it.
func (p *Panel) SelectDistrict(ctx context.Context, id types.DistrictID) error {
	seq, err := p.begin(id)
	if err != nil {
		return err
	}
	defer p.wg.Done()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(p.ctx, cancel)
	defer stop()

	return p.load(ctx, id, seq)
}

// Select starts a selection and returns once the panel shows its loading
// state. The request completes in the background.
func (p *Panel) Select(id types.DistrictID) error {
	seq, err := p.begin(id)
	if err != nil {
		return err
	}

	go func() {
		defer p.wg.Done()
		_ = p.load(p.ctx, id, seq)
	}()
	return nil
}

// Close cancels in-flight selections and waits for them before destroying the chart.
func (p *Panel) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	p.cancel()
	p.wg.Wait()
	p.chart.Close()
}

// begin records the selection and shows the loading state. The caller owns
// one p.wg slot on success, registered before the panel can close.
func (p *Panel) begin(id types.DistrictID) (uint64, error) {
	if !id.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDistrict, id)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return 0, ErrClosed
	}
	p.wg.Add(1)

	p.state.Sequence++
	p.state.CurrentDistrict = id
	p.state.HasSelection = true
	p.state.Loading = true
	p.state.Failed = false

	p.view.SetLoadingText(types.LoadingMessage)
	p.view.SetLoading(true)

	p.logger.Debug("district selected", "district", id, "seq", p.state.Sequence)
	return p.state.Sequence, nil
}

func (p *Panel) load(ctx context.Context, id types.DistrictID, seq uint64) error {
	data, err := p.fetcher.FetchWeather(ctx, id)
	if err == nil && data.Error != "" {
		err = &client.ReportedError{Message: data.Error}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if seq != p.state.Sequence {
		p.logger.Debug("discarding stale weather response",
			"district", id,
			"seq", seq,
			"latest", p.state.Sequence,
		)
		return ErrSuperseded
	}

	if err != nil {
		p.fail(id, err)
		return err
	}

	p.view.SetLocation(ResolveDistrictLabel(p.view, id))
	p.view.SetTemperature(RoundTemperature(data.Temperature))
	p.view.SetSummary(data.Summary)
	if err := p.chart.Render(data.ChartData); err != nil {
		p.fail(id, err)
		return err
	}
	p.view.SetLastUpdated(types.UpdatedJustNow)

	p.state.Loading = false
	p.view.SetLoading(false)

	p.logger.Info("weather panel updated",
		"district", id,
		"temperature", data.Temperature,
		"points", len(data.ChartData),
	)
	return nil
}

// fail keeps the content hidden and puts the failure text in the loading region.
// Callers hold p.mu.
func (p *Panel) fail(id types.DistrictID, err error) {
	p.state.Failed = true
	p.view.SetLoadingText(types.FailureMessage)
	p.logger.Error("failed to load weather",
		"district", id,
		"kind", client.Kind(err),
		"error", err,
	)
}
