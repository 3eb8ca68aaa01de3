// Package loader fetches and decodes the puzzle image off the game loop.
package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"slicepuzzle/src/logx"
	"slicepuzzle/src/ui/gui/gbase/gos"
)

// GeneratedLocator selects the built-in procedural picture.
const GeneratedLocator = "generated:"

var ErrEmptyImage = errors.New("image has no pixels")

type Result struct {
	Locator string
	Image   image.Image
	Format  string
	Err     error
}

type Kind int

const (
	KindGenerated Kind = iota
	KindURL
	KindFile
)

func KindOf(locator string) Kind {
	l := strings.TrimSpace(locator)
	switch {
	case l == "" || strings.HasPrefix(l, GeneratedLocator):
		return KindGenerated
	case strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://"):
		return KindURL
	default:
	}
	return KindFile
}

type Loader struct {
	client *http.Client
	logx   logx.Logger
}

func NewLoader(l logx.Logger, client *http.Client) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	if l == nil {
		l = logx.NewNop()
	}
	return &Loader{client: client, logx: l}
}

// Load starts decoding in a goroutine. The channel receives exactly one Result.
func (ld *Loader) Load(ctx context.Context, locator string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		img, format, err := ld.LoadSync(ctx, locator)
		switch {
		case errors.Is(err, context.Canceled):
			ld.logx.Debugf("load of %q canceled", locator)
		case err != nil:
			ld.logx.Errorf("error load image %q: %v", locator, err)
		default:
			b := img.Bounds()
			ld.logx.Infof("image %q loaded: %s %dx%d", locator, format, b.Dx(), b.Dy())
		}
		ch <- Result{Locator: locator, Image: img, Format: format, Err: err}
	}()
	return ch
}

// LoadSync is the blocking variant used by headless commands.
func (ld *Loader) LoadSync(ctx context.Context, locator string) (image.Image, string, error) {
	var (
		data []byte
		err  error
	)
	switch KindOf(locator) {
	case KindGenerated:
		w, h := ParseGeneratedSize(locator)
		img, err := Generate(w, h)
		if err != nil {
			return nil, "", err
		}
		return img, "generated", nil
	case KindURL:
		data, err = ld.fetch(ctx, locator)
	default:
		data, err = gos.ReadFile(locator)
	}
	if err != nil {
		return nil, "", err
	}
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	return Decode(bytes.NewReader(data))
}

func (ld *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := ld.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error fetch %s: %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("error decode image: %w", err)
	}
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, format, ErrEmptyImage
	}
	return img, format, nil
}
