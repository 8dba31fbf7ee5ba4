package mp4

import (
	"context"
	"easyref/internal/core/domain"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	gomp4 "github.com/abema/go-mp4"
)

var supportedExtensions = []string{".mp4", ".m4v", ".mov"}

// Prober reads duration and frame size from ISO BMFF containers (MP4, QuickTime)
type Prober struct{}

// NewProber returns Prober
func NewProber() *Prober {
	return &Prober{}
}

// Supports reports whether the file name has an ISO BMFF extension
func (p *Prober) Supports(name string) bool {
	return slices.Contains(supportedExtensions, strings.ToLower(filepath.Ext(name)))
}

// Probe returns the movie duration and the size of its first visual track.
// A container without a movie header fails with domain.ErrUnsupportedMedia.
func (p *Prober) Probe(ctx context.Context, content io.ReadSeeker) (*domain.VideoInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	boxes, err := gomp4.ExtractBoxesWithPayload(content, nil, []gomp4.BoxPath{
		{gomp4.BoxTypeMoov(), gomp4.BoxTypeMvhd()},
		{gomp4.BoxTypeMoov(), gomp4.BoxTypeTrak(), gomp4.BoxTypeTkhd()},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnsupportedMedia, err)
	}

	info := &domain.VideoInfo{}
	foundHeader := false
	for _, box := range boxes {
		switch payload := box.Payload.(type) {
		case *gomp4.Mvhd:
			if payload.Timescale == 0 {
				return nil, fmt.Errorf("%w: zero timescale", domain.ErrUnsupportedMedia)
			}
			info.Duration = float64(payload.GetDuration()) / float64(payload.Timescale)
			foundHeader = true
		case *gomp4.Tkhd:
			// audio tracks have no frame size
			if info.Width == 0 && payload.Width != 0 && payload.Height != 0 {
				info.Width = int(payload.GetWidthInt())
				info.Height = int(payload.GetHeightInt())
			}
		}
	}
	if !foundHeader {
		return nil, fmt.Errorf("%w: movie header not found", domain.ErrUnsupportedMedia)
	}

	return info, nil
}
