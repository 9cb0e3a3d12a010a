package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	gerrors "github.com/NicabarNimble/create-next-app/internal/errors"
	"github.com/NicabarNimble/create-next-app/internal/ui"
)

// Clean removes the directory tree at path if it exists and reports whether
// anything was removed. The removed folder name is printed only in debug
// mode.
func Clean(console ui.Prompter, path string, debug bool) (bool, error) {
	console.Printf("\nCleaning repository at %s\n", path)

	if _, err := os.Lstat(path); errors.Is(err, fs.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, gerrors.New(gerrors.OpClean, err)
	}

	if err := os.RemoveAll(path); err != nil {
		return false, gerrors.New(gerrors.OpClean, fmt.Errorf("failed to remove %s: %w", path, err))
	}

	if debug {
		console.Printf("Removed existing folder: %s\n", ui.Red(filepath.Base(path)))
	}

	return true, nil
}
