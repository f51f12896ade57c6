package handlers

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	zapobserver "go.uber.org/zap/zaptest/observer"

	"github.com/imamik/intersight-sp/internal/config"
	"github.com/imamik/intersight-sp/internal/platform/intersight"
	"github.com/imamik/intersight-sp/internal/provisioning/profile"
	"github.com/imamik/intersight-sp/internal/ui/confirm"
)

func TestCreate_Success(t *testing.T) {
	env := setupHandlerTest(t, "y\ny\ny\n")

	err := Create(context.Background(), testSettings(), CreateOptions{})

	require.NoError(t, err)
	assert.Equal(t, 3, env.prompter.asked, "one global and one per profile")
	assert.Equal(t, 2, env.client.CountCalls("CloneProfileFromTemplate"))
	assert.Equal(t, 4, env.client.CountCalls("CreateWWPNReservation"))
	assert.Equal(t, 4, env.client.CountCalls("SetSanConnectivityPolicyProfiles"))
	assert.Equal(t, 2, env.client.CountCalls("AttachProfileToTemplate"))

	out := env.out.String()
	assert.Contains(t, out, "Global parameters")
	assert.Contains(t, out, "profile-esx-02")
	assert.Contains(t, out, "2 server profiles provisioned")
	assert.Equal(t, "reservation-20:00:00:25:B5:BB:00:02", env.cfg.ServerProfiles[1].Reservations[1].ReservationMoid)
}

func TestCreate_PromptsBeforeRemoteCalls(t *testing.T) {
	env := setupHandlerTest(t, "y\ny\ny\n")

	var callsAtLastPrompt = -1
	inner := env.prompter
	newPrompter = func() confirm.Prompter {
		return promptFunc(func(ctx context.Context, q string) (bool, error) {
			callsAtLastPrompt = len(env.client.Calls)
			return inner.Confirm(ctx, q)
		})
	}

	require.NoError(t, Create(context.Background(), testSettings(), CreateOptions{}))
	assert.Equal(t, 0, callsAtLastPrompt)
}

func TestCreate_DeclineGlobal(t *testing.T) {
	env := setupHandlerTest(t, "n\n")

	err := Create(context.Background(), testSettings(), CreateOptions{})

	require.ErrorIs(t, err, confirm.ErrDeclined)
	assert.Equal(t, 1, env.prompter.asked)
	requireNoRemoteCalls(t, env.client)
}

func TestCreate_DeclineProfile(t *testing.T) {
	env := setupHandlerTest(t, "y\ny\nn\n")

	err := Create(context.Background(), testSettings(), CreateOptions{})

	require.ErrorIs(t, err, confirm.ErrDeclined)
	assert.Equal(t, 3, env.prompter.asked)
	requireNoRemoteCalls(t, env.client)
}

func TestCreate_EmptyInputDeclines(t *testing.T) {
	env := setupHandlerTest(t, "")

	err := Create(context.Background(), testSettings(), CreateOptions{})

	require.ErrorIs(t, err, confirm.ErrDeclined)
	requireNoRemoteCalls(t, env.client)
}

func TestCreate_FailureStopsAndReports(t *testing.T) {
	env := setupHandlerTest(t, "y\ny\ny\n")
	env.client.CloneProfileFromTemplateFunc = func(_ context.Context, _, _, name string) (string, error) {
		if name == "esx-02" {
			return "", errors.New("clone failed with status 400")
		}
		return "sp-" + name, nil
	}
	dir := t.TempDir()
	reportPath := filepath.Join(dir, "report.yaml")
	metricsPath := filepath.Join(dir, "metrics.prom")

	err := Create(context.Background(), testSettings(), CreateOptions{ReportPath: reportPath, MetricsPath: metricsPath})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "provisioning failed")
	var stepErr *profile.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, "esx-02", stepErr.Profile)
	assert.Equal(t, profile.StepClone, stepErr.Step)

	assert.Equal(t, 2, env.client.CountCalls("CloneProfileFromTemplate"))
	assert.Equal(t, 1, env.client.CountCalls("AttachProfileToTemplate"))

	out := env.out.String()
	assert.Contains(t, out, "sp-esx-01")
	assert.Contains(t, out, "Run stopped")

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "run_id: run-test")
	assert.Contains(t, string(data), "status: failed")
	assert.Contains(t, string(data), "failed_step: clone")
	assert.FileExists(t, metricsPath)
}

func TestCreate_PolicyNotFound(t *testing.T) {
	env := setupHandlerTest(t, "y\ny\ny\n")
	env.client.ListMoidsByNameFunc = func(_ context.Context, kind intersight.ResourceKind, name string) ([]string, error) {
		if kind == intersight.KindSanConnectivityPolicy {
			return nil, nil
		}
		return []string{name}, nil
	}

	err := Create(context.Background(), testSettings(), CreateOptions{})

	require.Error(t, err)
	assert.True(t, intersight.IsNotFound(err))
	assert.Zero(t, env.client.CountCalls("CloneProfileFromTemplate"))
}

func TestCreate_InventoryError(t *testing.T) {
	env := setupHandlerTest(t, "y\n")
	loadInventory = func(string) (*config.InventoryConfig, error) {
		return nil, errors.New("inventory validation failed: organization is required")
	}

	err := Create(context.Background(), testSettings(), CreateOptions{})

	require.Error(t, err)
	assert.Zero(t, env.prompter.asked)
	requireNoRemoteCalls(t, env.client)
}

func TestCreate_ClientError(t *testing.T) {
	env := setupHandlerTest(t, "y\n")
	newClient = func(*config.Settings, *intersight.Metrics) (intersight.Manager, error) {
		return nil, errors.New("failed to read secret key file")
	}

	err := Create(context.Background(), testSettings(), CreateOptions{})

	require.Error(t, err)
	assert.Zero(t, env.prompter.asked, "credentials are checked before asking")
}

func TestCreate_LoggerError(t *testing.T) {
	env := setupHandlerTest(t, "y\n")
	newLogger = func(*config.Settings, io.Writer) (*zap.Logger, func(), error) {
		return nil, nil, errors.New("invalid log level")
	}

	err := Create(context.Background(), testSettings(), CreateOptions{})

	require.Error(t, err)
	assert.Zero(t, env.prompter.asked)
}

func TestDefaultNewClient_MissingKey(t *testing.T) {
	settings := testSettings()
	settings.SecretKeyPath = filepath.Join(t.TempDir(), "missing.pem")

	_, err := newClient(settings, intersight.NewMetrics())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read secret key file")
}

func TestDefaultNewLogger(t *testing.T) {
	logger, closeFn, err := newLogger(testSettings(), io.Discard)
	require.NoError(t, err)
	require.NotNil(t, logger)
	closeFn()
}

// promptFunc adapts a function to confirm.Prompter.
type promptFunc func(ctx context.Context, question string) (bool, error)

func (f promptFunc) Confirm(ctx context.Context, question string) (bool, error) {
	return f(ctx, question)
}

func TestCreate_ValidationBeforePrompt(t *testing.T) {
	env := setupHandlerTest(t, "y\ny\ny\n")
	env.cfg.ServerProfiles[1].Reservations[0].WWPN = env.cfg.ServerProfiles[0].Reservations[0].WWPN

	err := Create(context.Background(), testSettings(), CreateOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already requested by")
	assert.Zero(t, env.prompter.asked)
	requireNoRemoteCalls(t, env.client)
}

func TestCreate_NoPipelineLogsBeforeConfirmation(t *testing.T) {
	env := setupHandlerTest(t, "n\n")
	core, logs := zapobserver.New(zap.DebugLevel)
	newLogger = func(*config.Settings, io.Writer) (*zap.Logger, func(), error) {
		return zap.New(core), func() {}, nil
	}

	err := Create(context.Background(), testSettings(), CreateOptions{})

	require.ErrorIs(t, err, confirm.ErrDeclined)
	assert.Zero(t, logs.FilterMessageSnippet("Starting provisioning").Len())
	assert.Zero(t, logs.FilterMessageSnippet("Provisioning completed").Len())
	requireNoRemoteCalls(t, env.client)
}

func TestCreate_UnauthorizedHint(t *testing.T) {
	env := setupHandlerTest(t, "y\ny\ny\n")
	env.client.ListMoidsByNameFunc = func(context.Context, intersight.ResourceKind, string) ([]string, error) {
		return nil, &intersight.APIError{Method: "GET", Path: "/organization/Organizations", StatusCode: 401}
	}

	err := Create(context.Background(), testSettings(), CreateOptions{})

	require.Error(t, err)
	assert.True(t, intersight.IsUnauthorized(err))
	assert.Contains(t, env.out.String(), "Check the API key ID (INTERSIGHT_KEY_ID)")
}

func TestCreate_NoHintForOtherFailures(t *testing.T) {
	env := setupHandlerTest(t, "y\ny\ny\n")
	env.client.CloneProfileFromTemplateFunc = func(context.Context, string, string, string) (string, error) {
		return "", &intersight.APIError{Method: "POST", Path: "/bulk/MoCloners", StatusCode: 400}
	}

	require.Error(t, Create(context.Background(), testSettings(), CreateOptions{}))
	assert.NotContains(t, env.out.String(), "INTERSIGHT_KEY_ID")
}
