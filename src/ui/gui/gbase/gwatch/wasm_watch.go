//go:build js && wasm

package gwatch

import "errors"

var errNoWatch = errors.New("file watching not supported in wasm")

type Watcher struct {
	Events chan string
	Errors chan error
}

func NewWatcher(file string) (*Watcher, error) {
	return nil, errNoWatch
}

func (w *Watcher) Close() error {
	return nil
}
