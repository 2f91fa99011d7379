package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/usabbag/rainparis/internal/config"
	httpapi "github.com/usabbag/rainparis/internal/httpapi"
	panel "github.com/usabbag/rainparis/internal/modules/panel"
	"github.com/usabbag/rainparis/internal/modules/panel/chart"
	"github.com/usabbag/rainparis/internal/modules/panel/client"
	"github.com/usabbag/rainparis/internal/modules/panel/districts"
	"github.com/usabbag/rainparis/internal/modules/panel/service"
	"github.com/usabbag/rainparis/internal/modules/panel/types"
	panelviews "github.com/usabbag/rainparis/internal/modules/panel/views"
)

func Run(ctx context.Context, cfg config.Config, version string) error {
	slog.Info("config loaded",
		"appEnv", cfg.AppEnv,
		"logLevel", cfg.LogLevel.String(),
		"httpAddr", cfg.HTTPAddr,
		"weatherAPIBaseURL", cfg.WeatherAPIBaseURL,
		"weatherAPITimeout", cfg.WeatherAPITimeout,
		"panelTheme", cfg.PanelTheme,
		"defaultDistrict", cfg.DefaultDistrict,
	)

	if err := panelviews.LoadTemplates(); err != nil {
		return err
	}

	theme, err := chart.ThemeByName(cfg.PanelTheme)
	if err != nil {
		return err
	}

	weatherClient, err := client.New(cfg.WeatherAPIBaseURL, client.WithTimeout(cfg.WeatherAPITimeout))
	if err != nil {
		return err
	}

	snapshot := panelviews.NewSnapshot(districts.Elements())
	renderer := chart.NewRenderer(snapshot, theme)
	weatherPanel := service.NewPanel(weatherClient, snapshot, renderer, slog.Default())
	defer func() {
		slog.Info("panel closing")
		weatherPanel.Close()
	}()

	if err := weatherPanel.Select(types.DistrictID(cfg.DefaultDistrict)); err != nil {
		return err
	}

	mux := httpapi.NewMux(version)
	panel.RegisterFeature(mux, weatherPanel, snapshot, theme.Name)

	srv := httpapi.NewServer(cfg, mux)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http listening", "addr", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	slog.Info("http shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	err = <-errCh
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return ctx.Err()
}
