package confirm

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/imamik/intersight-sp/internal/config"
)

// Presenter shows the inventory and collects the operator's approval.
type Presenter struct {
	out      io.Writer
	prompter Prompter
}

// NewPresenter creates a presenter writing to out and asking via prompter.
func NewPresenter(out io.Writer, prompter Prompter) *Presenter {
	return &Presenter{out: out, prompter: prompter}
}

// Confirm shows the global parameters and asks once, then shows and asks
// for every profile in inventory order. It returns ErrDeclined on the first
// answer that is not yes.
func (p *Presenter) Confirm(ctx context.Context, cfg *config.InventoryConfig) error {
	p.renderGlobal(cfg)
	if err := p.ask(ctx, "Proceed with these global parameters?"); err != nil {
		return err
	}

	for _, profile := range cfg.ServerProfiles {
		p.renderProfile(profile)
		if err := p.ask(ctx, fmt.Sprintf("Provision server profile %s?", profile.Name)); err != nil {
			return err
		}
	}
	return nil
}

// Render shows the whole inventory without asking anything.
func (p *Presenter) Render(cfg *config.InventoryConfig) {
	p.renderGlobal(cfg)
	for _, profile := range cfg.ServerProfiles {
		p.renderProfile(profile)
	}
}

func (p *Presenter) ask(ctx context.Context, question string) error {
	ok, err := p.prompter.Confirm(ctx, question)
	if err != nil {
		return err
	}
	if !ok {
		return ErrDeclined
	}
	return nil
}

func (p *Presenter) renderGlobal(cfg *config.InventoryConfig) {
	fmt.Fprintln(p.out, titleStyle.Render("Global parameters"))
	fmt.Fprintln(p.out, NewTable("Parameter", "Value").
		Row("Organization", cfg.Organization).
		Row("SAN connectivity policy", cfg.SanConnectivityPolicy).
		Row("Server profile template", cfg.ServerProfileTemplate).
		Row("Server profiles", fmt.Sprint(len(cfg.ServerProfiles))).
		Row("WWPN reservations", fmt.Sprint(cfg.ReservationCount())).
		Render())
}

func (p *Presenter) renderProfile(profile config.ProfileRequest) {
	fmt.Fprintln(p.out, sectionStyle.Render("Server profile "+profile.Name))
	if len(profile.Reservations) == 0 {
		fmt.Fprintln(p.out, DimStyle.Render("no WWPN reservations"))
		return
	}

	t := NewTable("vHBA", "WWPN", "Pool")
	for _, r := range profile.Reservations {
		t.Row(r.VHBAName, r.WWPN, r.Pool)
	}
	fmt.Fprintln(p.out, t.Render())
}

// NewTable returns a table with the shared header and border styling.
func NewTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}
