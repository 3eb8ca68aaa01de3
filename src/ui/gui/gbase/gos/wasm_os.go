//go:build js && wasm

package gos

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall/js"
)

type fetchResult struct {
	data []byte
	err  error
}

// fetchBytes runs fetch(path).then(r => r.arrayBuffer()) and blocks the
// calling goroutine until the promise settles.
func fetchBytes(path string) ([]byte, error) {
	fetch := js.Global().Get("fetch")
	if !fetch.Truthy() {
		return nil, errors.New("fetch() not supported")
	}

	ch := make(chan fetchResult, 1)
	var onResponse, onBuffer, onError js.Func
	release := func() {
		onResponse.Release()
		onBuffer.Release()
		onError.Release()
	}

	onError = js.FuncOf(func(this js.Value, args []js.Value) any {
		msg := "fetch failed"
		if len(args) > 0 {
			msg = args[0].Call("toString").String()
		}
		ch <- fetchResult{err: fmt.Errorf("fetch %s: %s", path, msg)}
		return nil
	})
	onBuffer = js.FuncOf(func(this js.Value, args []js.Value) any {
		arr := js.Global().Get("Uint8Array").New(args[0])
		data := make([]byte, arr.Get("length").Int())
		js.CopyBytesToGo(data, arr)
		ch <- fetchResult{data: data}
		return nil
	})
	onResponse = js.FuncOf(func(this js.Value, args []js.Value) any {
		resp := args[0]
		if !resp.Get("ok").Bool() {
			ch <- fetchResult{err: ErrNotExist}
			return nil
		}
		resp.Call("arrayBuffer").Call("then", onBuffer, onError)
		return nil
	})

	fetch.Invoke(path).Call("then", onResponse, onError)
	res := <-ch
	release()
	return res.data, res.err
}

func ReadFile(name string) ([]byte, error) {
	return fetchBytes(name)
}

// the browser has no writable filesystem
func WriteFile(name string, data []byte, perm fs.FileMode) error {
	return ErrUnsupported
}

func IsNotExist(err error) bool {
	return errors.Is(err, ErrNotExist)
}

func Watchable() bool {
	return false
}
