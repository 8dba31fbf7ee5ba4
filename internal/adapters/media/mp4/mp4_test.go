package mp4_test

import (
	"context"
	"easyref/internal/adapters/media/mp4"
	"easyref/internal/core/domain"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gomp4 "github.com/abema/go-mp4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeMovie writes a minimal movie: ftyp, then moov with mvhd and one tkhd per track size
func writeMovie(t *testing.T, timescale, duration uint32, trackSizes ...[2]uint32) *os.File {
	t.Helper()
	out, err := os.Create(filepath.Join(t.TempDir(), "clip.mp4"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = out.Close() })

	w := gomp4.NewWriter(out)
	writeBox := func(boxType gomp4.BoxType, payload gomp4.IImmutableBox) {
		_, err := w.StartBox(&gomp4.BoxInfo{Type: boxType})
		require.NoError(t, err)
		_, err = gomp4.Marshal(w, payload, gomp4.Context{})
		require.NoError(t, err)
		_, err = w.EndBox()
		require.NoError(t, err)
	}

	writeBox(gomp4.BoxTypeFtyp(), &gomp4.Ftyp{MajorBrand: [4]byte{'i', 's', 'o', 'm'}})

	_, err = w.StartBox(&gomp4.BoxInfo{Type: gomp4.BoxTypeMoov()})
	require.NoError(t, err)
	writeBox(gomp4.BoxTypeMvhd(), &gomp4.Mvhd{Timescale: timescale, DurationV0: duration, Rate: 0x00010000, NextTrackID: 3})
	for i, size := range trackSizes {
		_, err = w.StartBox(&gomp4.BoxInfo{Type: gomp4.BoxTypeTrak()})
		require.NoError(t, err)
		writeBox(gomp4.BoxTypeTkhd(), &gomp4.Tkhd{TrackID: uint32(i + 1), DurationV0: duration, Width: size[0] << 16, Height: size[1] << 16})
		_, err = w.EndBox()
		require.NoError(t, err)
	}
	_, err = w.EndBox()
	require.NoError(t, err)

	_, err = out.Seek(0, 0)
	require.NoError(t, err)
	return out
}

func TestProber_Supports(t *testing.T) {
	prober := mp4.NewProber()

	assert.True(t, prober.Supports("clip.MP4"))
	assert.True(t, prober.Supports("take.mov"))
	assert.False(t, prober.Supports("clip.webm"))
	assert.False(t, prober.Supports("ref.png"))
}

func TestProber_Probe(t *testing.T) {
	//Arrange
	ctx := context.Background()
	prober := mp4.NewProber()
	// audio track first, then a 1920x1080 video track
	movie := writeMovie(t, 1000, 2500, [2]uint32{0, 0}, [2]uint32{1920, 1080})

	//Act
	info, err := prober.Probe(ctx, movie)

	//Assert
	require.NoError(t, err)
	assert.Equal(t, 2.5, info.Duration)
	assert.Equal(t, 1920, info.Width)
	assert.Equal(t, 1080, info.Height)
}

func TestProber_NotAMovie(t *testing.T) {
	//Arrange
	prober := mp4.NewProber()

	//Act
	_, err := prober.Probe(context.Background(), strings.NewReader("definitely not a movie"))

	//Assert
	require.ErrorIs(t, err, domain.ErrUnsupportedMedia)
}
