package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/mintdrop-org/mintdrop-cli/internal/usecase"
)

// CheckRenderer renders holder check results as a table
type CheckRenderer struct {
	out io.Writer
}

// NewCheckRenderer creates a new check renderer
func NewCheckRenderer(out io.Writer) *CheckRenderer {
	return &CheckRenderer{out: out}
}

// RenderChecks renders one row per checked address. Ad-hoc checks carry no
// score column because the address did not come from the recipients file.
func (r *CheckRenderer) RenderChecks(result *usecase.CheckHoldersResult) error {
	if len(result.Checks) == 0 {
		fmt.Fprintln(r.out, "No addresses to check")
		return nil
	}

	fmt.Fprintln(r.out)
	t := newTable(r.out)
	if result.AdHoc {
		t.AppendHeader(table.Row{"Address", "Balance", "Status"})
	} else {
		t.AppendHeader(table.Row{"Address", "Score", "Balance", "Status"})
	}

	for _, check := range result.Checks {
		if result.AdHoc {
			t.AppendRow(table.Row{check.Recipient.Address, balanceCell(check), statusCell(check)})
		} else {
			t.AppendRow(table.Row{
				check.Recipient.Address,
				fmt.Sprintf("%g", check.Recipient.Score),
				balanceCell(check),
				statusCell(check),
			})
		}
	}
	t.Render()

	wouldMint := lo.CountBy(result.Checks, func(c usecase.HolderCheck) bool {
		return c.WouldMint()
	})

	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "%d of %d address(es) would receive a mint\n", wouldMint, len(result.Checks))
	return nil
}

func balanceCell(check usecase.HolderCheck) string {
	if check.Err != "" {
		return "-"
	}
	return fmt.Sprintf("%d", check.Balance)
}

func statusCell(check usecase.HolderCheck) string {
	switch {
	case check.Err != "":
		return color.New(color.FgRed).Sprintf("error: %s", check.Err)
	case check.Balance == 0:
		return color.New(color.FgGreen).Sprint("would mint")
	case check.Balance == 1:
		return color.New(color.FgCyan).Sprint("already holds")
	default:
		return color.New(color.FgYellow).Sprint("holds multiple")
	}
}
