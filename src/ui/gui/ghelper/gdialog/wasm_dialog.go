//go:build js && wasm

package gdialog

// Browsers only hand out file contents, not paths the loader could reopen.
func OpenImage(title string) (Result, error) {
	return Result{}, ErrUnsupported
}
