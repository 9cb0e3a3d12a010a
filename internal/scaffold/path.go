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

const dirPerm = 0o755

// ResolvePath turns path into an absolute path confirmed by the user and
// makes sure the directory exists. An empty path is asked for first.
// Declining the confirmation returns ErrAborted. Only the last path element
// is created; a missing parent is an error.
func ResolvePath(console ui.Prompter, path string) (string, error) {
	if path == "" {
		answer, err := console.Ask("Enter the path to the repository: ")
		if err != nil {
			return "", gerrors.New(gerrors.OpResolvePath, err)
		}
		path = answer
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", gerrors.New(gerrors.OpResolvePath, fmt.Errorf("failed to resolve %q: %w", path, err))
	}

	ok, err := console.Confirm(fmt.Sprintf(
		"\nConfirm repository path [%s] \n(Press Enter/Y to confirm, any other key to exit): ", abs))
	if err != nil {
		return "", gerrors.New(gerrors.OpResolvePath, err)
	}
	if !ok {
		return "", ErrAborted
	}

	console.Printf("\nSelected repository path: %s\n", ui.Green(abs))

	if _, err := os.Stat(abs); errors.Is(err, fs.ErrNotExist) {
		if err := os.Mkdir(abs, dirPerm); err != nil {
			return "", gerrors.New(gerrors.OpResolvePath, fmt.Errorf("failed to create directory: %w", err))
		}
	} else if err != nil {
		return "", gerrors.New(gerrors.OpResolvePath, err)
	}

	return abs, nil
}
