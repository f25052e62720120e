// Package imagesource obtains external image references for newly generated
// images. The default source is a picsum-style placeholder photo service.
package imagesource

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"
)

// Source yields a fetchable image URL.
type Source interface {
	RandomImageURL(ctx context.Context) (string, error)
}

// Picsum builds URLs of the form <base>/id/<n>/<w>/<h> with n drawn randomly
// from [0, maxID). When Verify is set, the URL is probed with a HEAD request
// and a failure of the external service surfaces to the caller.
type Picsum struct {
	BaseURL string
	MaxID   int
	Width   int
	Height  int
	Verify  bool

	client *http.Client
	randFn func(n int) int
}

// NewPicsum creates a Picsum source. Probing is enabled so an unreachable
// external service turns into a request failure rather than a dead URL.
func NewPicsum(baseURL string, maxID, width, height int) *Picsum {
	return &Picsum{
		BaseURL: baseURL,
		MaxID:   maxID,
		Width:   width,
		Height:  height,
		Verify:  true,
		client:  &http.Client{Timeout: 10 * time.Second},
		randFn:  rand.Intn,
	}
}

func (p *Picsum) RandomImageURL(ctx context.Context) (string, error) {
	url := fmt.Sprintf("%s/id/%d/%d/%d", p.BaseURL, p.randFn(p.MaxID), p.Width, p.Height)
	if !p.Verify {
		return url, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build image source request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("image source unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("image source returned status %d", resp.StatusCode)
	}
	return url, nil
}
