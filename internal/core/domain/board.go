package domain

import "time"

// Board is a freeform canvas holding placed files
type Board struct {
	ID          int64
	Name        string
	Description *string
	CreatedAt   time.Time
	Items       []BoardItem
}

// BoardUpdate is a partial board write
type BoardUpdate struct {
	Name        *string
	Description *string
}

// BoardItem is the placement of one file on a board
type BoardItem struct {
	ID       int64
	BoardID  int64
	FileID   int64
	PosX     float64
	PosY     float64
	Width    float64
	Height   float64
	Rotation float64
	ZIndex   int
	// OriginalWidth and OriginalHeight are stamped once at creation and only read by Reset
	OriginalWidth  *float64
	OriginalHeight *float64
	File           *File
}

// BoardItemPlacement is the geometry of a file placed on a board
type BoardItemPlacement struct {
	FileID   int64
	PosX     float64
	PosY     float64
	Width    float64
	Height   float64
	Rotation float64
	ZIndex   int
}

// BoardItemUpdate is a partial item write
type BoardItemUpdate struct {
	PosX     *float64
	PosY     *float64
	Width    *float64
	Height   *float64
	Rotation *float64
	ZIndex   *int
}

// NewBoardItem builds an item from a placement, capturing its size as the original size
func NewBoardItem(boardID int64, p BoardItemPlacement) BoardItem {
	originalWidth, originalHeight := p.Width, p.Height
	return BoardItem{
		BoardID:        boardID,
		FileID:         p.FileID,
		PosX:           p.PosX,
		PosY:           p.PosY,
		Width:          p.Width,
		Height:         p.Height,
		Rotation:       p.Rotation,
		ZIndex:         p.ZIndex,
		OriginalWidth:  &originalWidth,
		OriginalHeight: &originalHeight,
	}
}

// Apply copies every set field of the update into the item. Original size is never touched.
func (i *BoardItem) Apply(u BoardItemUpdate) {
	if u.PosX != nil {
		i.PosX = *u.PosX
	}
	if u.PosY != nil {
		i.PosY = *u.PosY
	}
	if u.Width != nil {
		i.Width = *u.Width
	}
	if u.Height != nil {
		i.Height = *u.Height
	}
	if u.Rotation != nil {
		i.Rotation = *u.Rotation
	}
	if u.ZIndex != nil {
		i.ZIndex = *u.ZIndex
	}
}

// Reset zeroes the rotation and restores the original size when one was captured.
// Position is kept.
func (i *BoardItem) Reset() {
	i.Rotation = 0
	if i.OriginalWidth != nil && i.OriginalHeight != nil && *i.OriginalWidth != 0 && *i.OriginalHeight != 0 {
		i.Width = *i.OriginalWidth
		i.Height = *i.OriginalHeight
	}
}
