package panel

import (
	"net/http"

	"github.com/usabbag/rainparis/internal/modules/panel/controller"
	"github.com/usabbag/rainparis/internal/modules/panel/service"
	"github.com/usabbag/rainparis/internal/modules/panel/views"
)

func RegisterFeature(mux *http.ServeMux, panel *service.Panel, snapshot *views.Snapshot, theme string) {
	panelController := controller.NewPanelController(panel, snapshot, theme)
	panelController.RegisterRoutes(mux)
}
