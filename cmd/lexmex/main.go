package main

import (
	"context"
	"os"

	"github.com/lexmex/lexmex-mcp/internal/config"
	"github.com/lexmex/lexmex-mcp/internal/docgen"
	"github.com/lexmex/lexmex-mcp/internal/dof"
	"github.com/lexmex/lexmex-mcp/internal/legal"
	"github.com/lexmex/lexmex-mcp/internal/library"
	"github.com/lexmex/lexmex-mcp/internal/logger"
	"github.com/lexmex/lexmex-mcp/internal/mcp"
	"github.com/lexmex/lexmex-mcp/internal/reason"
	"github.com/lexmex/lexmex-mcp/internal/tools"
	"github.com/lexmex/lexmex-mcp/internal/tools/analysis"
	"github.com/lexmex/lexmex-mcp/internal/tools/drafting"
	"github.com/lexmex/lexmex-mcp/internal/tools/gazette"
	"github.com/lexmex/lexmex-mcp/pkg/version"
)

func main() {
	cfg := config.Load()
	initLogger(cfg)

	log := logger.ForComponent("main")
	log.Info("starting lexmex", "version", version.Version)

	lib := library.New()
	if dir := cfg.Templates.OverlayDir; dir != "" {
		if _, err := os.Stat(dir); err == nil {
			loaded, err := library.LoadOverlay(lib, dir)
			if err != nil {
				log.Error("failed to load template overlay", "error", err)
				os.Exit(1)
			}
			log.Info("loaded template overlay", "dir", dir, "skeletons", loaded)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Templates.WatchOverlay {
		go func() {
			if err := library.WatchOverlay(ctx, cfg.Templates.OverlayDir); err != nil && ctx.Err() == nil {
				log.Warn("overlay watcher stopped", "error", err)
			}
		}()
	}

	service := legal.NewService(
		legal.WithRenderer(docgen.NewEngine(lib)),
		legal.WithEvaluator(reason.NewEvaluator(lib)),
	)

	clientOpts := []dof.ClientOption{
		dof.WithBaseURL(cfg.DOF.BaseURL),
		dof.WithTimeout(cfg.DOF.Timeout),
		dof.WithMaxRetries(cfg.DOF.MaxRetries),
	}
	if cfg.DOF.UserAgent != "" {
		clientOpts = append(clientOpts, dof.WithUserAgent(cfg.DOF.UserAgent))
	}
	client := dof.NewClient(clientOpts...)

	var cache *dof.Cache
	if cfg.Cache.Enabled {
		var err error
		cache, err = dof.NewCache(cfg.Cache.Path)
		if err != nil {
			log.Warn("publication cache unavailable, continuing without it", "error", err)
			cache = nil
		} else {
			defer cache.Close()
		}
	}

	if cache != nil && cfg.DOF.PrefetchCount > 0 {
		go func() {
			stored, err := client.PrefetchLatest(ctx, cache, cfg.DOF.PrefetchCount)
			if err != nil {
				log.Warn("prefetch of latest publications failed", "error", err)
				return
			}
			log.Info("prefetched latest publications", "stored", stored)
		}()
	}

	registry := tools.NewRegistry()
	register := func(set []tools.Tool) {
		for _, tool := range set {
			if err := registry.Register(tool); err != nil {
				log.Error("failed to register tool", "tool", tool.Name(), "error", err)
				os.Exit(1)
			}
		}
	}
	register(drafting.GetTools(service))
	register(analysis.GetTools(service))
	register(gazette.GetTools(client, cache))
	register([]tools.Tool{tools.NewHealthTool()})

	log.Info("serving stdio", "tools", len(registry.Names()))

	server := mcp.NewServer(registry)
	if err := server.ProcessStream(os.Stdin, os.Stdout); err != nil {
		log.Error("stream processing failed", "error", err)
		os.Exit(1)
	}
}

func initLogger(cfg *config.Config) {
	logCfg := logger.DefaultConfig()
	logCfg.Format = cfg.LogFormat
	logCfg.Level = logger.ParseLevel(cfg.LogLevel)

	// stdout is the protocol channel; logs go to stderr only.
	logCfg.Output = os.Stderr
	logger.Init(logCfg)
}
