package confirm

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/intersight-sp/internal/config"
)

// scriptedPrompter answers questions from a fixed list and records them.
type scriptedPrompter struct {
	answers   []bool
	err       error
	questions []string
}

func (s *scriptedPrompter) Confirm(_ context.Context, question string) (bool, error) {
	s.questions = append(s.questions, question)
	if s.err != nil {
		return false, s.err
	}
	if len(s.answers) == 0 {
		return false, nil
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func testInventory() *config.InventoryConfig {
	return &config.InventoryConfig{
		Organization:          "default",
		SanConnectivityPolicy: "san-a-b",
		ServerProfileTemplate: "esx-template",
		ServerProfiles: []config.ProfileRequest{
			{Name: "esx-01", Reservations: []config.ReservationRequest{
				{VHBAName: "vhba-a", WWPN: "20:00:00:25:B5:AA:00:01", Pool: "wwpn-a"},
			}},
			{Name: "esx-02"},
		},
	}
}

func TestPresenter_Confirm_AllYes(t *testing.T) {
	t.Parallel()
	prompter := &scriptedPrompter{answers: []bool{true, true, true}}
	var out bytes.Buffer

	err := NewPresenter(&out, prompter).Confirm(context.Background(), testInventory())

	require.NoError(t, err)
	assert.Equal(t, []string{
		"Proceed with these global parameters?",
		"Provision server profile esx-01?",
		"Provision server profile esx-02?",
	}, prompter.questions)
}

func TestPresenter_Confirm_DeclineGlobal(t *testing.T) {
	t.Parallel()
	prompter := &scriptedPrompter{answers: []bool{false}}
	var out bytes.Buffer

	err := NewPresenter(&out, prompter).Confirm(context.Background(), testInventory())

	require.ErrorIs(t, err, ErrDeclined)
	assert.Len(t, prompter.questions, 1, "no per-profile prompt after a global decline")
	assert.NotContains(t, out.String(), "esx-01")
}

func TestPresenter_Confirm_DeclineSecondProfile(t *testing.T) {
	t.Parallel()
	prompter := &scriptedPrompter{answers: []bool{true, true, false}}

	err := NewPresenter(&bytes.Buffer{}, prompter).Confirm(context.Background(), testInventory())

	require.ErrorIs(t, err, ErrDeclined)
	assert.Len(t, prompter.questions, 3)
}

func TestPresenter_Confirm_PromptError(t *testing.T) {
	t.Parallel()
	boom := errors.New("tty closed")
	prompter := &scriptedPrompter{err: boom}

	err := NewPresenter(&bytes.Buffer{}, prompter).Confirm(context.Background(), testInventory())

	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrDeclined)
}

func TestPresenter_Render(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer

	NewPresenter(&out, &scriptedPrompter{}).Render(testInventory())

	text := out.String()
	for _, want := range []string{
		"Global parameters",
		"default",
		"san-a-b",
		"esx-template",
		"Server profile esx-01",
		"vhba-a",
		"20:00:00:25:B5:AA:00:01",
		"wwpn-a",
		"Server profile esx-02",
		"no WWPN reservations",
	} {
		assert.Contains(t, text, want)
	}
}
