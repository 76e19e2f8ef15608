package export

import (
	"strings"

	"github.com/vaultpass/accountgen/internal/model"
)

const (
	CSVFilename    = "accounts.csv"
	CSVContentType = "text/csv"
	csvHeader      = "Username,Password"
)

// ClipboardText renders items as "用户名: <username> | 密码: <password>" lines.
func ClipboardText(items []model.GeneratedItem) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "用户名: " + item.Username + " | 密码: " + item.Password
	}
	return strings.Join(lines, "\n")
}

// CSV renders items under a Username,Password header. Values are written
// unquoted, so a value holding a comma shifts its row.
func CSV(items []model.GeneratedItem) string {
	lines := make([]string, 0, len(items)+1)
	lines = append(lines, csvHeader)
	for _, item := range items {
		lines = append(lines, item.Username+","+item.Password)
	}
	return strings.Join(lines, "\n")
}
