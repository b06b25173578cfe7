package gallery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// LibraryPermission grants gallery access when the pictures library can be
// listed by the current user.
type LibraryPermission struct {
	dir string
}

// NewLibraryPermission checks access to dir.
func NewLibraryPermission(dir string) *LibraryPermission {
	return &LibraryPermission{dir: dir}
}

// Request reports whether the library is readable.
func (p *LibraryPermission) Request(ctx context.Context) (bool, error) {
	if err := checkContext(ctx); err != nil {
		return false, err
	}

	f, err := os.Open(p.dir)
	if errors.Is(err, fs.ErrPermission) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("opening pictures library: %w", err)
	}
	defer f.Close()

	_, err = f.Readdirnames(1)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return true, nil
	case errors.Is(err, fs.ErrPermission):
		return false, nil
	default:
		return false, fmt.Errorf("listing pictures library: %w", err)
	}
}

// Dir is the library directory being checked.
func (p *LibraryPermission) Dir() string {
	return p.dir
}

// AlwaysGranted is used where the platform picker asks for access itself,
// as the mobile drivers do.
type AlwaysGranted struct{}

// Request always grants access.
func (AlwaysGranted) Request(ctx context.Context) (bool, error) {
	return true, checkContext(ctx)
}

// PicturesDir returns the user's pictures library, falling back to the home
// directory when there is none.
func PicturesDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	if dir := os.Getenv("XDG_PICTURES_DIR"); dir != "" && isDir(dir) {
		return dir
	}
	if dir := filepath.Join(home, "Pictures"); isDir(dir) {
		return dir
	}
	return home
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
