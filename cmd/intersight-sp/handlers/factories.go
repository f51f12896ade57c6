package handlers

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/imamik/intersight-sp/internal/config"
	"github.com/imamik/intersight-sp/internal/platform/intersight"
	"github.com/imamik/intersight-sp/internal/ui/confirm"
	"github.com/imamik/intersight-sp/internal/util/logging"
)

// Factory function variables - can be replaced in tests.
var (
	// loadInventory reads and validates the inventory file.
	loadInventory = config.LoadFile

	// newLogger builds the run logger from settings.
	newLogger = func(s *config.Settings, w io.Writer) (*zap.Logger, func(), error) {
		return logging.New(logging.Options{Level: s.LogLevel, Format: s.LogFormat, File: s.LogFile}, w)
	}

	// newClient creates the Intersight client used for all remote calls.
	newClient = func(s *config.Settings, metrics *intersight.Metrics) (intersight.Manager, error) {
		key, err := intersight.LoadSigningKey(s.SecretKeyPath)
		if err != nil {
			return nil, err
		}
		client, err := intersight.NewRealClient(s.KeyID, key,
			intersight.WithEndpoint(s.Endpoint),
			intersight.WithTimeout(s.RequestTimeout),
			intersight.WithMetrics(metrics),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Intersight client: %w", err)
		}
		return client, nil
	}

	// newPrompter returns the prompt used for confirmations.
	newPrompter = func() confirm.Prompter {
		return confirm.NewPrompter(os.Stdin, os.Stdout)
	}

	// newRunID returns a unique identifier for a run.
	newRunID = uuid.NewString

	// stdout receives tables and summaries; logs go to stderr.
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)
