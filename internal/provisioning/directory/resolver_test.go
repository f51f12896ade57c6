package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	zapobserver "go.uber.org/zap/zaptest/observer"

	"github.com/imamik/intersight-sp/internal/config"
	"github.com/imamik/intersight-sp/internal/platform/intersight"
	"github.com/imamik/intersight-sp/internal/provisioning"
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
			}},
		},
	}
}

func createTestContext(t *testing.T, client *intersight.MockClient) (*provisioning.Context, *zapobserver.ObservedLogs) {
	t.Helper()
	core, logs := zapobserver.New(zapcore.DebugLevel)
	observer := provisioning.NewLogObserver(zap.New(core))
	return provisioning.NewContext(context.Background(), testInventory(), client, observer), logs
}

func TestResolver_Name(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "directory", NewResolver().Name())
	assert.Equal(t, "directory", NewPlanResolver().Name())
}

func TestResolver_Provision(t *testing.T) {
	t.Parallel()
	client := &intersight.MockClient{}
	ctx, _ := createTestContext(t, client)

	require.NoError(t, NewResolver().Provision(ctx))

	assert.Equal(t, "organization/Organizations/default", ctx.State.OrganizationMoid)
	assert.Equal(t, "vnic/SanConnectivityPolicies/san-a-b", ctx.State.PolicyMoid)
	assert.Equal(t, "server/ProfileTemplates/esx-template", ctx.State.TemplateMoid)
	assert.True(t, ctx.State.Resolved())
	assert.Empty(t, ctx.State.PoolMoids)
	assert.Equal(t, 3, client.CountCalls("ListMoidsByName"))
}

func TestPlanResolver_ResolvesPools(t *testing.T) {
	t.Parallel()
	client := &intersight.MockClient{}
	ctx, _ := createTestContext(t, client)

	require.NoError(t, NewPlanResolver().Provision(ctx))

	assert.Equal(t, map[string]string{
		"wwpn-a": "fcpool/Pools/wwpn-a",
		"wwpn-b": "fcpool/Pools/wwpn-b",
	}, ctx.State.PoolMoids)
	// Three shared objects plus each distinct pool once.
	assert.Equal(t, 5, client.CountCalls("ListMoidsByName"))
	assert.Zero(t, client.CountCalls("CreateWWPNReservation"))
}

func TestResolver_PolicyNotFound(t *testing.T) {
	t.Parallel()
	client := &intersight.MockClient{
		ListMoidsByNameFunc: func(_ context.Context, kind intersight.ResourceKind, name string) ([]string, error) {
			if kind == intersight.KindSanConnectivityPolicy {
				return nil, nil
			}
			return []string{name + "-moid"}, nil
		},
	}
	ctx, _ := createTestContext(t, client)

	err := NewResolver().Provision(ctx)

	require.Error(t, err)
	var nf *intersight.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, intersight.KindSanConnectivityPolicy, nf.Kind)
	assert.Equal(t, "san-a-b", nf.Name)
	assert.True(t, intersight.IsNotFound(err))
	assert.Equal(t, `SAN connectivity policy "san-a-b" not found`, err.Error())

	assert.Equal(t, "default-moid", ctx.State.OrganizationMoid)
	assert.Empty(t, ctx.State.PolicyMoid)
	assert.Empty(t, ctx.State.TemplateMoid, "template lookup must not run after a miss")
}

func TestLookup_Ambiguous(t *testing.T) {
	t.Parallel()
	client := &intersight.MockClient{
		ListMoidsByNameFunc: func(_ context.Context, _ intersight.ResourceKind, _ string) ([]string, error) {
			return []string{"first", "second"}, nil
		},
	}
	ctx, logs := createTestContext(t, client)

	moid, err := Lookup(ctx, intersight.KindFCPool, "wwpn-a")

	require.NoError(t, err)
	assert.Equal(t, "first", moid)

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Message, `2 objects of type WWPN pool named "wwpn-a"`)
}

func TestLookup_ClientError(t *testing.T) {
	t.Parallel()
	apiErr := &intersight.APIError{StatusCode: 401, Message: "bad signature"}
	client := &intersight.MockClient{
		ListMoidsByNameFunc: func(_ context.Context, _ intersight.ResourceKind, _ string) ([]string, error) {
			return nil, apiErr
		},
	}
	ctx, _ := createTestContext(t, client)

	_, err := Lookup(ctx, intersight.KindOrganization, "default")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apiErr))
	assert.True(t, intersight.IsUnauthorized(err))
	assert.Contains(t, err.Error(), `failed to resolve organization "default"`)
}

func TestLookup_PassesMoidThrough(t *testing.T) {
	t.Parallel()
	opaque := "  5F1A/ODD moid?  "
	client := &intersight.MockClient{
		ListMoidsByNameFunc: func(_ context.Context, _ intersight.ResourceKind, _ string) ([]string, error) {
			return []string{opaque}, nil
		},
	}
	ctx, _ := createTestContext(t, client)

	moid, err := Lookup(ctx, intersight.KindProfileTemplate, "esx-template")

	require.NoError(t, err)
	assert.Equal(t, opaque, moid)
}
