//go:build !js || !wasm

package gdialog

import (
	"errors"
	"path/filepath"

	"github.com/sqweek/dialog"
)

// OpenImage blocks until the user picks a file, so call it off the game loop.
func OpenImage(title string) (Result, error) {
	path, err := dialog.File().Title(title).Filter("Images", ImageFilter...).Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return Result{}, ErrCanceled
	}
	if err != nil {
		return Result{}, err
	}
	return Result{Path: path, Name: filepath.Base(path)}, nil
}
