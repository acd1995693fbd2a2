package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/edgebar/edgebar/bar"
	"github.com/edgebar/edgebar/config"
	"github.com/edgebar/edgebar/ipc"
	"github.com/edgebar/edgebar/panels"
	"github.com/edgebar/edgebar/panels/clock"
	"github.com/edgebar/edgebar/panels/custom"
	"github.com/edgebar/edgebar/panels/watchfile"
	"github.com/edgebar/edgebar/xwindow"
)

var (
	configPath string
	monitor    string
	logLevel   string
	barName    string
)

var rootCmd = &cobra.Command{
	Use:   "edgebar",
	Short: "An X11 status bar",
	Long: `edgebar draws a status bar on an X11 display from a TOML config
file describing a set of panels arranged into left, center, and right
regions.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the bar's TOML config file (required)")
	_ = rootCmd.MarkFlagRequired("config")
	rootCmd.Flags().StringVar(&monitor, "monitor", "", "screen to place the bar on, overriding the config's top-level \"monitor\"; a zero-based X11 screen index, or empty for the display's default screen")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "logrus level (trace/debug/info/warn/error), overriding the default of info")
	rootCmd.Flags().StringVar(&barName, "bar-name", "", "overrides the config's top-level \"name\", used for the window title and IPC socket path")
}

// Execute runs the root command. Called once by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log := logrus.StandardLogger()

	if logLevel != "" {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			log.WithError(err).Error("parsing --log-level")
			return err
		}
		log.SetLevel(level)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.WithError(err).Error("loading config")
		return err
	}

	name := cfg.Bar.Name
	if barName != "" {
		name = barName
	}
	monitorName := cfg.Bar.Monitor
	if monitor != "" {
		monitorName = monitor
	}

	bg, err := cfg.Background()
	if err != nil {
		log.WithError(err).Error("parsing background color")
		return err
	}

	surface, err := xwindow.New(name, monitorName, 0, 0, 0, cfg.Bar.Height, bg, cfg.Bar.Transparent)
	if err != nil {
		log.WithError(err).Fatal("creating window")
	}
	defer surface.Close()

	registry := panels.NewRegistry()
	clock.RegisterClock(registry)
	custom.RegisterCustom(registry)
	watchfile.RegisterWatchFile(registry)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var ipcRequests chan bar.IPCRequest
	var listener *ipc.Listener
	if cfg.Bar.IPC {
		sockPath := socketPath(name)
		listener, err = ipc.Listen(sockPath, log)
		if err != nil {
			log.WithError(err).Warn("ipc: initialization failed, continuing with IPC disabled")
		} else {
			ipcRequests = make(chan bar.IPCRequest)
			go listener.Serve(ipcRequests)
			defer listener.Close()
		}
	}

	b, err := bar.NewBar(
		bar.NameOpt(name),
		bar.SurfaceOpt(surface),
		bar.MarginsOpt(cfg.Bar.Margins),
		bar.BackgroundOpt(bg),
		bar.TransparentOpt(cfg.Bar.Transparent),
		bar.ReverseScrollOpt(cfg.Bar.ReverseScroll),
		bar.IPCOpt(ipcRequests),
		bar.LogOpt(log),
	)
	if err != nil {
		log.WithError(err).Error("constructing bar")
		return err
	}

	attrs := cfg.Attrs()
	if err := registerRegion(ctx, b, registry, bar.Left, cfg, cfg.Left, attrs, cfg.Bar.Height, surface, log); err != nil {
		return err
	}
	if err := registerRegion(ctx, b, registry, bar.Center, cfg, cfg.Center, attrs, cfg.Bar.Height, surface, log); err != nil {
		return err
	}
	if err := registerRegion(ctx, b, registry, bar.Right, cfg, cfg.Right, attrs, cfg.Bar.Height, surface, log); err != nil {
		return err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info("received shutdown signal")
		cancel()
	}()

	runErr := b.Run(ctx)
	b.Shutdown(1 * time.Second)

	if runErr != nil && runErr != context.Canceled {
		log.WithError(runErr).Error("bar main loop exited with an error")
		return runErr
	}
	return nil
}

// registerRegion parses and starts every panel configured for one region,
// wiring each producer's stream into the bar.
func registerRegion(
	ctx context.Context,
	b *bar.Bar,
	registry *panels.Registry,
	region bar.Region,
	cfg *config.Config,
	configs []config.PanelConfig,
	attrs config.GlobalAttrs,
	height int32,
	measure bar.TextMeasurer,
	log *logrus.Logger,
) error {
	for _, pc := range configs {
		factory, err := registry.Lookup(pc.Type)
		if err != nil {
			log.WithError(err).WithField("panel", pc.Name).Error("no factory for panel type")
			continue
		}

		parsed, err := factory.Parse(pc.Name, pc.Table, cfg)
		if err != nil {
			log.WithError(err).WithField("panel", pc.Name).Error("parsing panel config")
			continue
		}

		name, visible := parsed.Props()
		panel := &bar.Panel{Name: name, Visible: visible}
		idx := b.AddPanel(region, panel)

		stream, endpoint, err := parsed.Run(ctx, attrs, height, measure)
		if err != nil {
			log.WithError(err).WithField("panel", name).Error("starting panel")
			continue
		}
		panel.Endpoint = endpoint
		b.RegisterPanelStream(ctx, region, idx, stream)
	}
	return nil
}

func socketPath(name string) string {
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, fmt.Sprintf("edgebar-%s.sock", name))
}
