package controller

import (
	"net/http"

	"github.com/usabbag/rainparis/internal/modules/panel/types"
	"github.com/usabbag/rainparis/internal/modules/panel/views"
)

// Selector is the part of the panel the controller drives.
type Selector interface {
	Select(id types.DistrictID) error
	State() types.PanelState
}

// Display supplies what the templates render.
type Display interface {
	Data() *views.PanelData
	Elements() []types.DistrictElement
}

type PanelController interface {
	RegisterRoutes(mux *http.ServeMux)
}

type panelControllerImpl struct {
	panel   Selector
	display Display
	theme   string
}

func NewPanelController(panel Selector, display Display, theme string) PanelController {
	return &panelControllerImpl{panel: panel, display: display, theme: theme}
}

func (c *panelControllerImpl) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", c.handleIndex)
	mux.HandleFunc("POST /select/{id}", c.handleSelect)
	mux.HandleFunc("GET /panel", c.handlePanelPartial)
	mux.HandleFunc("GET /api/panel", c.handlePanelState)
	mux.HandleFunc("GET /api/districts", c.handleDistricts)
}
