package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/imamik/intersight-sp/internal/config"
	"github.com/imamik/intersight-sp/internal/platform/intersight"
	"github.com/imamik/intersight-sp/internal/provisioning"
	"github.com/imamik/intersight-sp/internal/provisioning/directory"
	"github.com/imamik/intersight-sp/internal/provisioning/profile"
	"github.com/imamik/intersight-sp/internal/report"
	"github.com/imamik/intersight-sp/internal/ui/confirm"
)

// CreateOptions holds the create command flags.
type CreateOptions struct {
	ConfigPath  string
	ReportPath  string
	MetricsPath string
}

// Create handles the create command.
//
//  1. Loads and validates the inventory
//  2. Creates the logger and the Intersight client (no remote calls yet)
//  3. Checks the inventory as a whole (duplicate WWPNs, profile names)
//  4. Shows the plan and asks for confirmation, globally and per profile
//  5. Resolves the organization, SAN connectivity policy and template
//  6. Provisions every profile in order, stopping at the first error
//  7. Prints a summary and writes the optional report and metrics files
func Create(ctx context.Context, settings *config.Settings, opts CreateOptions) error {
	cfg, err := loadInventory(opts.ConfigPath)
	if err != nil {
		return err
	}

	runID := newRunID()
	logger, closeLogger, err := newLogger(settings, stderr)
	if err != nil {
		return err
	}
	defer closeLogger()
	logger = logger.With(zap.String("run_id", runID))

	metrics := intersight.NewMetrics()
	client, err := newClient(settings, metrics)
	if err != nil {
		return err
	}

	pctx := provisioning.NewContext(ctx, cfg, client, provisioning.NewLogObserver(logger))
	if err := provisioning.NewValidationPhase().Provision(pctx); err != nil {
		return err
	}

	presenter := confirm.NewPresenter(stdout, newPrompter())
	if err := presenter.Confirm(ctx, cfg); err != nil {
		return err
	}

	logger.Info("Provisioning server profiles",
		zap.Int("profiles", len(cfg.ServerProfiles)),
		zap.Int("reservations", cfg.ReservationCount()),
		zap.String("endpoint", settings.Endpoint),
	)

	runErr := provisioning.NewPipeline(
		directory.NewResolver(),
		profile.NewProvisioner(),
	).Run(pctx)

	renderSummary(stdout, cfg, pctx.State, runErr)

	if opts.ReportPath != "" {
		meta := report.Meta{RunID: runID, Endpoint: settings.Endpoint}
		if err := report.Build(meta, cfg, pctx.State, runErr).Write(opts.ReportPath); err != nil {
			logger.Error("Failed to write report", zap.Error(err))
		} else {
			logger.Info("Report written", zap.String("path", opts.ReportPath))
		}
	}
	writeMetrics(logger, metrics, opts.MetricsPath)

	if runErr != nil {
		return fmt.Errorf("provisioning failed: %w", runErr)
	}
	return nil
}

func writeMetrics(logger *zap.Logger, metrics *intersight.Metrics, path string) {
	if path == "" {
		return
	}
	if err := metrics.WriteToTextfile(path); err != nil {
		logger.Error("Failed to write metrics", zap.Error(err))
		return
	}
	logger.Debug("Metrics written", zap.String("path", path))
}
