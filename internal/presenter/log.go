// Package presenter implements the display side of batch generation:
// rendering result sets, the busy indicator and transient notifications.
package presenter

import (
	"log/slog"

	"github.com/vaultpass/accountgen/internal/model"
)

// Log reports presentation events through slog. It backs the HTTP server,
// where the browser renders the result set itself.
type Log struct {
	Logger *slog.Logger
}

func (p Log) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

func (p Log) Render(items []model.GeneratedItem) {
	p.logger().Info("batch ready", "items", len(items))
}

func (p Log) SetBusy(busy bool) {
	p.logger().Debug("generator busy state changed", "busy", busy)
}

func (p Log) Notify(n model.Notification) {
	p.logger().Info(n.Title, "description", n.Description, "item_id", n.ItemID, "role", n.Role, "duration", n.Duration)
}
