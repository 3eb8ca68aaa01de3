//go:build !js || !wasm

package gos

import (
	"errors"
	"io/fs"
	"os"
)

func ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, ErrNotExist)
}

// Watchable reports whether local files can be watched for changes.
func Watchable() bool {
	return true
}
