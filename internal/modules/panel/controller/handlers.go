package controller

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/usabbag/rainparis/internal/modules/panel/service"
	"github.com/usabbag/rainparis/internal/modules/panel/types"
	"github.com/usabbag/rainparis/internal/modules/panel/views"
	"github.com/usabbag/rainparis/internal/utils"
)

type panelStateResponse struct {
	State types.PanelState `json:"state"`
	View  panelView        `json:"view"`
}

type panelView struct {
	Loading     bool   `json:"loading"`
	LoadingText string `json:"loadingText"`
	Location    string `json:"location"`
	Temperature int    `json:"temperature"`
	Summary     string `json:"summary"`
	LastUpdated string `json:"lastUpdated"`
	ChartPoints int    `json:"chartPoints"`
}

func (c *panelControllerImpl) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := &views.PageData{
		Theme:     c.theme,
		Districts: c.display.Elements(),
		Panel:     c.display.Data(),
	}
	var buf bytes.Buffer
	if err := views.RenderPage(&buf, data); err != nil {
		slog.Error("index template render failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to render page")
		return
	}
	writeHTML(w, buf.Bytes())
}

func (c *panelControllerImpl) handleSelect(w http.ResponseWriter, r *http.Request) {
	id, err := parseDistrictID(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := c.panel.Select(id); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDistrict):
			utils.WriteError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrClosed):
			utils.WriteError(w, http.StatusServiceUnavailable, "panel is shutting down")
		default:
			slog.Error("select failed", "district", id, "error", err)
			utils.WriteError(w, http.StatusInternalServerError, "failed to select district")
		}
		return
	}
	c.renderPanel(w)
}

func (c *panelControllerImpl) handlePanelPartial(w http.ResponseWriter, r *http.Request) {
	c.renderPanel(w)
}

func (c *panelControllerImpl) handlePanelState(w http.ResponseWriter, r *http.Request) {
	d := c.display.Data()
	utils.WriteJSON(w, http.StatusOK, panelStateResponse{
		State: c.panel.State(),
		View: panelView{
			Loading:     d.Loading,
			LoadingText: d.LoadingText,
			Location:    d.Location,
			Temperature: d.Temperature,
			Summary:     d.Summary,
			LastUpdated: d.LastUpdated,
			ChartPoints: d.ChartPoints,
		},
	})
}

func (c *panelControllerImpl) handleDistricts(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, c.display.Elements())
}

func (c *panelControllerImpl) renderPanel(w http.ResponseWriter) {
	var buf bytes.Buffer
	if err := views.RenderPanelPartial(&buf, c.display.Data()); err != nil {
		slog.Error("panel partial render failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to render")
		return
	}
	writeHTML(w, buf.Bytes())
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(body); err != nil {
		slog.Error("write response failed", "error", err)
	}
}
