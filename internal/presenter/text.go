package presenter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/vaultpass/accountgen/internal/crypto"
	"github.com/vaultpass/accountgen/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	busyStyle   = lipgloss.NewStyle().Faint(true)
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// Text draws result sets as a table on Out and notifications on Err.
type Text struct {
	Out io.Writer
	Err io.Writer
}

func (p Text) Render(items []model.GeneratedItem) {
	rows := make([][]string, len(items))
	for i, item := range items {
		strength := crypto.StrengthOf(len(item.Password))
		rows[i] = []string{strconv.Itoa(i + 1), item.Username, item.Password, strength.Label()}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "用户名", "密码", "强度").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	fmt.Fprintln(p.Out, t.String())
}

func (p Text) SetBusy(busy bool) {
	if busy && p.Err != nil {
		fmt.Fprintln(p.Err, busyStyle.Render("生成中..."))
	}
}

func (p Text) Notify(n model.Notification) {
	if p.Err == nil {
		return
	}
	fmt.Fprintln(p.Err, noticeStyle.Render(n.Title+": "+n.Description))
}
