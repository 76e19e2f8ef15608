package export

import (
	"fmt"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/spf13/afero"
	"github.com/vaultpass/accountgen/internal/model"
)

// Clipboard replaces the system clipboard content.
type Clipboard interface {
	WriteAll(text string) error
}

// Saver stores an exported file and returns where it ended up.
type Saver interface {
	Save(name string, data []byte) (string, error)
}

// Notifier shows transient messages.
type Notifier interface {
	Notify(n model.Notification)
}

// SystemClipboard writes to the host clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Supported reports whether a clipboard utility is available on this host.
func (SystemClipboard) Supported() bool {
	return !clipboard.Unsupported
}

// DirSaver writes files into Dir on Fs.
type DirSaver struct {
	Fs  afero.Fs
	Dir string
}

// NewDirSaver creates a DirSaver on the OS filesystem.
func NewDirSaver(dir string) *DirSaver {
	return &DirSaver{Fs: afero.NewOsFs(), Dir: dir}
}

// Save writes data to Dir/name, creating Dir if needed.
func (s *DirSaver) Save(name string, data []byte) (string, error) {
	if err := s.Fs.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}

	path := filepath.Join(s.Dir, name)
	if err := afero.WriteFile(s.Fs, path, data, 0o600); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}

	return path, nil
}
