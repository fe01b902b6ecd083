package commands

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/canvasql/canvasql/internal/config"
	"github.com/canvasql/canvasql/internal/ui"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Port      int
	NoBrowser bool
	Watch     bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the designer UI",
		Long: `Start a local web server providing the schema designer canvas.

The designer provides:
- Drag-and-drop table and relationship editing
- Live SQL preview per dialect
- Canned query preview with sample rows
- Whole-schema .sql export`,
		Example: `  # Start on the default port
  canvasql serve

  # Start on a custom port without opening a browser
  canvasql serve --port 3000 --no-browser`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Port, "port", 0, "Port to serve on (default: 8765)")
	cmd.Flags().BoolVar(&opts.NoBrowser, "no-browser", false, "Don't auto-open browser")
	cmd.Flags().BoolVar(&opts.Watch, "watch", true, "Reload when the project file changes")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	port := cfg.Server.Port
	if opts.Port != 0 {
		port = opts.Port
	}

	watch := cfg.Server.Watch
	if cmd.Flags().Changed("watch") {
		watch = opts.Watch
	}

	store, err := loadStore(cfg, logger)
	if err != nil {
		return err
	}

	server := ui.NewServer(ui.Config{
		Store:         store,
		Port:          port,
		Watch:         watch,
		SessionSecret: sessionSecret(cfg),
		ProjectFile:   cfg.ProjectFile,
		Logger:        logger,
	})

	if !opts.NoBrowser {
		url := fmt.Sprintf("http://localhost:%d", port)
		go openBrowser(url)
	}

	fmt.Printf("Starting designer on http://localhost:%d\n", port)
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Serve(ctx)
}

func sessionSecret(cfg *config.Config) string {
	if cfg.Server.SessionSecret != "" {
		return cfg.Server.SessionSecret
	}
	// Default secret for local development only
	return "canvasql-dev-secret-change-in-production" //nolint:gosec
}

// openBrowser opens the default browser to the specified URL.
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url) //nolint:noctx
	case "linux":
		cmd = exec.Command("xdg-open", url) //nolint:noctx
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url) //nolint:noctx
	default:
		return
	}

	_ = cmd.Start()
}
