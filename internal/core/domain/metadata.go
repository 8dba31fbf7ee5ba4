package domain

// Metadata holds the user annotations of a file and, for videos, its probed properties
type Metadata struct {
	ID         int64
	FileID     int64
	Rating     *int
	Notes      *string
	SourceURL  *string
	IsFavorite bool
	Duration   *float64
	Width      *int
	Height     *int
}

// MetadataUpdate is a partial metadata write; nil fields are left untouched
type MetadataUpdate struct {
	Rating     *int
	Notes      *string
	SourceURL  *string
	IsFavorite *bool
	Duration   *float64
	Width      *int
	Height     *int
}

// Apply copies every set field of the update into the metadata
func (m *Metadata) Apply(u MetadataUpdate) {
	if u.Rating != nil {
		m.Rating = u.Rating
	}
	if u.Notes != nil {
		m.Notes = u.Notes
	}
	if u.SourceURL != nil {
		m.SourceURL = u.SourceURL
	}
	if u.IsFavorite != nil {
		m.IsFavorite = *u.IsFavorite
	}
	if u.Duration != nil {
		m.Duration = u.Duration
	}
	if u.Width != nil {
		m.Width = u.Width
	}
	if u.Height != nil {
		m.Height = u.Height
	}
}

// VideoInfo is the result of a media probe
type VideoInfo struct {
	Duration float64
	Width    int
	Height   int
}

// ApplyVideoInfo stores probed properties on the metadata
func (m *Metadata) ApplyVideoInfo(info VideoInfo) {
	duration, width, height := info.Duration, info.Width, info.Height
	m.Duration = &duration
	m.Width = &width
	m.Height = &height
}
