package handlers

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/imamik/intersight-sp/internal/config"
	"github.com/imamik/intersight-sp/internal/platform/intersight"
	"github.com/imamik/intersight-sp/internal/ui/confirm"
)

func testInventory() *config.InventoryConfig {
	return &config.InventoryConfig{
		Organization:          "default",
		SanConnectivityPolicy: "san-a-b",
		ServerProfileTemplate: "esx-template",
		ServerProfiles: []config.ProfileRequest{
			{Name: "esx-01", Reservations: []config.ReservationRequest{
				{VHBAName: "vhba-a", WWPN: "20:00:00:25:B5:AA:00:01", Pool: "wwpn-a"},
				{VHBAName: "vhba-b", WWPN: "20:00:00:25:B5:BB:00:01", Pool: "wwpn-b"},
			}},
			{Name: "esx-02", Reservations: []config.ReservationRequest{
				{VHBAName: "vhba-a", WWPN: "20:00:00:25:B5:AA:00:02", Pool: "wwpn-a"},
				{VHBAName: "vhba-b", WWPN: "20:00:00:25:B5:BB:00:02", Pool: "wwpn-b"},
			}},
		},
	}
}

func testSettings() *config.Settings {
	return &config.Settings{
		KeyID:          "key/1",
		SecretKeyPath:  "/keys/secret.pem",
		Endpoint:       config.DefaultEndpoint,
		RequestTimeout: config.DefaultRequestTimeout,
		LogLevel:       "info",
		LogFormat:      "console",
	}
}

// countingPrompter wraps a line prompter and counts the questions asked.
type countingPrompter struct {
	inner *confirm.LinePrompter
	asked int
}

func (c *countingPrompter) Confirm(ctx context.Context, question string) (bool, error) {
	c.asked++
	return c.inner.Confirm(ctx, question)
}

type handlerEnv struct {
	out      *bytes.Buffer
	client   *intersight.MockClient
	prompter *countingPrompter
	cfg      *config.InventoryConfig
}

// setupHandlerTest replaces the factory variables and restores them when the
// test ends. Tests using it must not run in parallel.
func setupHandlerTest(t *testing.T, answers string) *handlerEnv {
	t.Helper()

	origLoad, origLogger, origClient := loadInventory, newLogger, newClient
	origPrompter, origRunID, origStdout, origStderr := newPrompter, newRunID, stdout, stderr
	t.Cleanup(func() {
		loadInventory, newLogger, newClient = origLoad, origLogger, origClient
		newPrompter, newRunID, stdout, stderr = origPrompter, origRunID, origStdout, origStderr
	})

	env := &handlerEnv{
		out:      &bytes.Buffer{},
		client:   &intersight.MockClient{},
		prompter: &countingPrompter{inner: confirm.NewLinePrompter(strings.NewReader(answers), io.Discard)},
		cfg:      testInventory(),
	}

	loadInventory = func(string) (*config.InventoryConfig, error) { return env.cfg, nil }
	newLogger = func(*config.Settings, io.Writer) (*zap.Logger, func(), error) {
		return zap.NewNop(), func() {}, nil
	}
	newClient = func(*config.Settings, *intersight.Metrics) (intersight.Manager, error) { return env.client, nil }
	newPrompter = func() confirm.Prompter { return env.prompter }
	newRunID = func() string { return "run-test" }
	stdout = env.out
	stderr = io.Discard

	return env
}

func requireNoRemoteCalls(t *testing.T, client *intersight.MockClient) {
	t.Helper()
	require.Empty(t, client.Calls, "expected no remote calls, got %v", client.CallNames())
}
