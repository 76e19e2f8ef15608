package export

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vaultpass/accountgen/internal/model"
)

// DefaultCopiedFor is how long copy confirmations stay visible.
const DefaultCopiedFor = 2 * time.Second

var (
	ErrUnknownRole = errors.New("unknown field role")
	ErrNoSaver     = errors.New("no file saver configured")
)

// Exporter copies and saves result sets through its ports and reports each
// completed action to the notifier.
type Exporter struct {
	clipboard Clipboard
	saver     Saver
	notifier  Notifier

	// CopiedFor is the display duration attached to notifications.
	CopiedFor time.Duration
}

// NewExporter creates a new Exporter. A nil notifier drops notifications.
func NewExporter(cb Clipboard, saver Saver, notifier Notifier) *Exporter {
	return &Exporter{
		clipboard: cb,
		saver:     saver,
		notifier:  notifier,
		CopiedFor: DefaultCopiedFor,
	}
}

// CopyField copies the raw value of one field of item.
func (e *Exporter) CopyField(item model.GeneratedItem, role model.FieldRole) error {
	value, ok := role.Value(item)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}

	if err := e.clipboard.WriteAll(value); err != nil {
		return fmt.Errorf("copying %s: %w", role, err)
	}

	e.notify(model.Notification{
		Title:       "已复制到剪贴板",
		Description: "内容已成功复制",
		ItemID:      item.ID,
		Role:        role,
	})
	return nil
}

// CopyAll copies every item as ClipboardText.
func (e *Exporter) CopyAll(items []model.GeneratedItem) error {
	if err := e.clipboard.WriteAll(ClipboardText(items)); err != nil {
		return fmt.Errorf("copying batch: %w", err)
	}

	e.notify(model.Notification{
		Title:       "批量复制成功",
		Description: fmt.Sprintf("已复制 %d 组账号密码到剪贴板", len(items)),
	})
	return nil
}

// DownloadCSV saves items as CSVFilename and returns the saved path.
func (e *Exporter) DownloadCSV(items []model.GeneratedItem) (string, error) {
	if e.saver == nil {
		return "", ErrNoSaver
	}

	path, err := e.saver.Save(CSVFilename, []byte(CSV(items)))
	if err != nil {
		return "", fmt.Errorf("exporting csv: %w", err)
	}

	slog.Info("csv exported", "path", path, "items", len(items))

	e.notify(model.Notification{
		Title:       "下载成功",
		Description: "账号密码已保存为CSV文件",
	})
	return path, nil
}

func (e *Exporter) notify(n model.Notification) {
	if e.notifier == nil {
		return
	}
	n.Duration = e.CopiedFor
	e.notifier.Notify(n)
}
