package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/canvasql/canvasql/internal/config"
	"github.com/canvasql/canvasql/internal/remote/githost"
	"github.com/canvasql/canvasql/internal/remote/pgprobe"
	"github.com/canvasql/canvasql/internal/remote/supabase"
)

const probeTimeout = 10 * time.Second

// probeResult is the outcome of one connectivity check.
type probeResult struct {
	Name   string
	Detail string
	Err    error
}

// NewProbeCommand creates the probe command.
func NewProbeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "probe [supabase|postgres|githost]",
		Short: "Check remote connectivity",
		Long: `Probe the configured remote backends and report reachability.

Each configured backend gets a single connectivity check. Failures are
reported, never retried. With no argument every configured backend is
probed.`,
		Example: `  # Probe everything configured
  canvasql probe

  # Probe only the Postgres remote store
  canvasql probe postgres`,
		ValidArgs: []string{"supabase", "postgres", "githost"},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE:      runProbe,
	}
}

func runProbe(cmd *cobra.Command, args []string) error {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	only := ""
	if len(args) == 1 {
		only = args[0]
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), probeTimeout)
	defer cancel()

	var results []probeResult
	if only == "" || only == "supabase" {
		if sb := cfg.Remote.Supabase; sb.URL != "" {
			err := supabase.New(sb.URL, sb.AnonKey).Probe(ctx)
			results = append(results, probeResult{Name: "supabase", Detail: sb.URL, Err: err})
		} else if only == "supabase" {
			return fmt.Errorf("supabase is not configured (remote.supabase)")
		}
	}
	if only == "" || only == "postgres" {
		if pg := cfg.Remote.Postgres; pg.DSN != "" {
			err := pgprobe.Probe(ctx, pg.DSN)
			results = append(results, probeResult{Name: "postgres", Detail: "remote store", Err: err})
		} else if only == "postgres" {
			return fmt.Errorf("postgres is not configured (remote.postgres)")
		}
	}
	if only == "" || only == "githost" {
		if gh := cfg.Remote.GitHost; gh.Token != "" && gh.Owner != "" && gh.Repo != "" {
			detail := fmt.Sprintf("%s/%s:%s", gh.Owner, gh.Repo, gh.Path)
			_, err := githost.New(gh.Token, gh.Owner, gh.Repo, gh.Branch).Get(ctx, gh.Path)
			if errors.Is(err, githost.ErrNotFound) {
				// Reachable and authorized, the project just has not
				// been pushed yet
				err = nil
				detail += " (absent)"
			}
			results = append(results, probeResult{Name: "githost", Detail: detail, Err: err})
		} else if only == "githost" {
			return fmt.Errorf("git host is not configured (remote.githost)")
		}
	}

	if len(results) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No remote backends configured")
		return nil
	}

	failed := 0
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"Backend", "Target", "Status"})
	for _, res := range results {
		status := "ok"
		if res.Err != nil {
			status = res.Err.Error()
			failed++
			logger.Debug("probe failed", "backend", res.Name, "error", res.Err)
		}
		t.AppendRow(table.Row{res.Name, res.Detail, status})
	}
	t.Render()

	if failed > 0 {
		return fmt.Errorf("%d of %d probes failed", failed, len(results))
	}
	return nil
}
