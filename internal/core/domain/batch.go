package domain

// BatchApplyRequest lists the mutations applied at once to a set of files.
// Every option is optional and independent from the others.
type BatchApplyRequest struct {
	FileIDs        []int64
	AddTags        []string
	RemoveTags     []string
	ToggleFavorite bool
	Rating         *int
	DeleteFiles    bool
	BoardID        *int64
	BoardItems     []BoardItemPlacement
}

// BatchApplyResult counts what a batch changed
type BatchApplyResult struct {
	Updated      int
	AddedToBoard int
	Deleted      int
}

// UniqueFileIDs returns the requested ids without duplicates, keeping the first occurrence order
func (r BatchApplyRequest) UniqueFileIDs() []int64 {
	seen := make(map[int64]struct{}, len(r.FileIDs))
	ids := make([]int64, 0, len(r.FileIDs))
	for _, id := range r.FileIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// TouchesMetadata reports whether the batch writes favorite or rating
func (r BatchApplyRequest) TouchesMetadata() bool {
	return r.ToggleFavorite || r.Rating != nil
}
