package gassets

import (
	"embed"

	"slicepuzzle/src/ui/gui/gbase/gos"
)

//go:embed assets
var embeddedAssets embed.FS

// ReadAsset prefers a file on disk (or on the page origin under wasm) so
// translations can be overridden without a rebuild.
func ReadAsset(path string) ([]byte, error) {
	if data, err := gos.ReadFile(path); err == nil {
		return data, nil
	}
	return embeddedAssets.ReadFile(path)
}
