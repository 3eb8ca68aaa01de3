package gdialog

import "errors"

var (
	ErrUnsupported = errors.New("file dialog not supported")
	ErrCanceled    = errors.New("file dialog canceled")
)

type Result struct {
	Path string
	Name string
}

// ImageFilter lists the extensions the loader can decode.
var ImageFilter = []string{"png", "jpg", "jpeg", "gif", "webp", "bmp", "tif", "tiff"}
