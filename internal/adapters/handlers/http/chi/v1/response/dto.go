package response

import (
	"time"

	"easyref/internal/core/domain"
)

type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Metadata struct {
	ID         int64    `json:"id"`
	FileID     int64    `json:"file_id"`
	Rating     *int     `json:"rating"`
	Notes      *string  `json:"notes"`
	SourceURL  *string  `json:"source_url"`
	IsFavorite bool     `json:"is_favorite"`
	Duration   *float64 `json:"duration"`
	Width      *int     `json:"width"`
	Height     *int     `json:"height"`
}

type File struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Path         string    `json:"path"`
	CreatedAt    time.Time `json:"created_at"`
	Tags         []Tag     `json:"tags"`
	FileMetadata *Metadata `json:"file_metadata"`
	StorageType  string    `json:"storage_type"`
	StorageKey   string    `json:"storage_key"`
	FileURL      string    `json:"file_url"`
}

type BoardItem struct {
	ID       int64   `json:"id"`
	BoardID  int64   `json:"board_id"`
	FileID   int64   `json:"file_id"`
	PosX     float64 `json:"pos_x"`
	PosY     float64 `json:"pos_y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"`
	ZIndex   int     `json:"z_index"`
	File     *File   `json:"file"`
}

type Board struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description *string     `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
	Items       []BoardItem `json:"items"`
}

func NewTag(t domain.Tag) Tag {
	return Tag{ID: t.ID, Name: t.Name}
}

func NewTags(tags []domain.Tag) []Tag {
	resp := make([]Tag, 0, len(tags))
	for _, t := range tags {
		resp = append(resp, NewTag(t))
	}
	return resp
}

func NewMetadata(m *domain.Metadata) *Metadata {
	if m == nil {
		return nil
	}
	return &Metadata{
		ID:         m.ID,
		FileID:     m.FileID,
		Rating:     m.Rating,
		Notes:      m.Notes,
		SourceURL:  m.SourceURL,
		IsFavorite: m.IsFavorite,
		Duration:   m.Duration,
		Width:      m.Width,
		Height:     m.Height,
	}
}

// NewFile maps a file; Path carries the storage key the way clients address stored bytes
func NewFile(f domain.File) File {
	return File{
		ID:           f.ID,
		Name:         f.Name,
		Path:         f.StorageKey,
		CreatedAt:    f.CreatedAt,
		Tags:         NewTags(f.Tags),
		FileMetadata: NewMetadata(f.Metadata),
		StorageType:  string(f.StorageType),
		StorageKey:   f.StorageKey,
		FileURL:      f.URL,
	}
}

func NewFiles(files []domain.File) []File {
	resp := make([]File, 0, len(files))
	for _, f := range files {
		resp = append(resp, NewFile(f))
	}
	return resp
}

func NewBoardItem(i domain.BoardItem) BoardItem {
	item := BoardItem{
		ID:       i.ID,
		BoardID:  i.BoardID,
		FileID:   i.FileID,
		PosX:     i.PosX,
		PosY:     i.PosY,
		Width:    i.Width,
		Height:   i.Height,
		Rotation: i.Rotation,
		ZIndex:   i.ZIndex,
	}
	if i.File != nil {
		file := NewFile(*i.File)
		item.File = &file
	}
	return item
}

func NewBoard(b domain.Board) Board {
	items := make([]BoardItem, 0, len(b.Items))
	for _, i := range b.Items {
		items = append(items, NewBoardItem(i))
	}
	return Board{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
		Items:       items,
	}
}

func NewBoards(boards []domain.Board) []Board {
	resp := make([]Board, 0, len(boards))
	for _, b := range boards {
		resp = append(resp, NewBoard(b))
	}
	return resp
}
