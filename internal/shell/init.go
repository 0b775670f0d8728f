package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrExists is returned by InitManageFile when the target already exists.
var ErrExists = errors.New("file already exists")

const manageTemplate = `manage (
    // address = "localhost:3306",
    // sessions_limit = 100,
    // session_lifetime = 60
);

attach "data";`

// InitManageFile writes a management file template named
// <name>.manage.blz into dir and returns its path. An empty name means
// "main". Existing files are never overwritten.
func InitManageFile(dir, name string) (string, error) {
	if name == "" {
		name = "main"
	}
	path := filepath.Join(dir, name+".manage.blz")

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("%s: %w", path, ErrExists)
		}
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := f.WriteString(manageTemplate); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, f.Close()
}
