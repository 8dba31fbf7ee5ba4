package domain

// TagSearchMode tells how multiple searched tags combine
type TagSearchMode string

const (
	TagSearchModeOr  TagSearchMode = "or"
	TagSearchModeAnd TagSearchMode = "and"
)

// SearchFilter is the set of library filters. Zero values disable a filter.
type SearchFilter struct {
	Tags       []string
	TagMode    TagSearchMode
	MinRating  *int
	IsFavorite *bool
	FileType   FileType
}

// TagKeys returns the distinct lookup keys of the searched tags
func (f SearchFilter) TagKeys() []string {
	seen := make(map[string]struct{}, len(f.Tags))
	keys := make([]string, 0, len(f.Tags))
	for _, name := range NormalizeTagNames(f.Tags) {
		key := TagKey(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}

// FiltersRating reports whether the rating filter is active
func (f SearchFilter) FiltersRating() bool {
	return f.MinRating != nil && *f.MinRating > 0
}
