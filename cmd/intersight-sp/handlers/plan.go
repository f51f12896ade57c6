package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/imamik/intersight-sp/internal/config"
	"github.com/imamik/intersight-sp/internal/platform/intersight"
	"github.com/imamik/intersight-sp/internal/provisioning"
	"github.com/imamik/intersight-sp/internal/provisioning/directory"
	"github.com/imamik/intersight-sp/internal/ui/confirm"
)

// PlanOptions holds the plan command flags.
type PlanOptions struct {
	ConfigPath string
}

// Plan handles the plan command. It renders the inventory and resolves
// every name it contains, including pools, without modifying anything.
func Plan(ctx context.Context, settings *config.Settings, opts PlanOptions) error {
	cfg, err := loadInventory(opts.ConfigPath)
	if err != nil {
		return err
	}

	logger, closeLogger, err := newLogger(settings, stderr)
	if err != nil {
		return err
	}
	defer closeLogger()
	logger = logger.With(zap.String("run_id", newRunID()))

	client, err := newClient(settings, intersight.NewMetrics())
	if err != nil {
		return err
	}

	confirm.NewPresenter(stdout, nil).Render(cfg)

	pctx := provisioning.NewContext(ctx, cfg, client, provisioning.NewLogObserver(logger))
	if err := provisioning.RunPhases(pctx, []provisioning.Phase{
		provisioning.NewValidationPhase(),
		directory.NewPlanResolver(),
	}); err != nil {
		renderCredentialHint(stdout, err)
		return fmt.Errorf("plan failed: %w", err)
	}

	renderResolved(stdout, cfg, pctx.State)
	return nil
}
