package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/osse101/PanelKit_Go/internal/config"
	"github.com/osse101/PanelKit_Go/internal/domain"
	"github.com/osse101/PanelKit_Go/internal/head"
	"github.com/osse101/PanelKit_Go/internal/logger"
	"github.com/osse101/PanelKit_Go/internal/metrics"
	"github.com/osse101/PanelKit_Go/internal/panel"
	"github.com/osse101/PanelKit_Go/internal/render"
	"github.com/osse101/PanelKit_Go/internal/template"
)

var (
	metricsAddr = flag.String("metrics-addr", "", "Serve Prometheus metrics on this address and block (e.g. :9090)")
	clickSlot   = flag.Int("click", -1, "Simulate a left click on this slot before printing")
)

// slotView is the printed rendering of one occupied slot
type slotView struct {
	Slot      int              `json:"slot"`
	Material  domain.Material  `json:"material"`
	Amount    int              `json:"amount"`
	Glow      bool             `json:"glow"`
	Invisible bool             `json:"invisible"`
	Meta      *domain.ItemMeta `json:"meta,omitempty"`
}

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	initLogger(cfg)
	for _, w := range config.Warnings(cfg) {
		slog.Warn(w)
	}

	if err := run(cfg); err != nil {
		slog.Error("panel demo failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	markers := render.ForEnvironment(cfg.Environment, cfg.RenderMarkers)

	loader, err := template.NewLoader()
	if err != nil {
		return err
	}
	templates, err := loader.Load(cfg.TemplatePath)
	if err != nil {
		return err
	}

	menu, err := panel.NewMenu(templates.Description, len(templates.Items))
	if err != nil {
		return err
	}

	heads := head.NewGetter(head.OfflineResolver{}, cfg.HeadCacheSize, cfg.HeadCacheTTL)
	for slot, def := range templates.Items {
		item := def.Builder().
			WithClickHandler(toggleGlow()).
			Build(panel.WithMarkers(markers))
		if err := heads.Apply(ctx, item); err != nil {
			slog.Warn("player head not resolved", "key", def.Key, "error", err)
		}
		if err := menu.SetItem(slot, item); err != nil {
			return err
		}
	}

	if *clickSlot >= 0 {
		user := domain.User{ID: "console", Username: "console"}
		if _, err := menu.Click(ctx, user, domain.ClickLeft, *clickSlot); err != nil {
			return err
		}
	}

	if err := printMenu(menu); err != nil {
		return err
	}

	if *metricsAddr != "" {
		slog.Info("serving metrics", "addr", *metricsAddr)
		if err := http.ListenAndServe(*metricsAddr, metrics.Handler()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}
	return nil
}

// toggleGlow flips the clicked item's glow and cancels the click
func toggleGlow() panel.ClickHandler {
	return panel.ClickHandlerFunc(func(p panel.Panel, _ domain.User, _ domain.ClickType, slot int) bool {
		if item, ok := p.Item(slot); ok {
			item.SetGlow(!item.Glow())
		}
		return true
	})
}

func printMenu(menu *panel.Menu) error {
	var views []slotView
	for slot := 0; slot < menu.Size(); slot++ {
		item, ok := menu.Item(slot)
		if !ok {
			continue
		}
		view := slotView{
			Slot:      slot,
			Material:  item.Icon().Material,
			Amount:    item.Icon().Amount,
			Glow:      item.Glow(),
			Invisible: item.Invisible(),
		}
		if meta, ok := item.Meta(); ok {
			view.Meta = &meta
		}
		views = append(views, view)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{"panel": menu.Name(), "slots": views})
}
