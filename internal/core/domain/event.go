package domain

// MediaUploaded is published once an uploaded video is committed, so its properties get probed
type MediaUploaded struct {
	FileID     int64  `json:"file_id"`
	StorageKey string `json:"storage_key"`
	Name       string `json:"name"`
}
