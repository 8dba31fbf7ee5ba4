package domain

import "errors"

// ErrAlreadyExists is an error thrown when entity already exists
var ErrAlreadyExists = errors.New("already exists")

// ErrTagNotFound is an error when tag is not found
var ErrTagNotFound = errors.New("tag not found")

// ErrFileNotFound is an error thrown when one or more files are not found
var ErrFileNotFound = errors.New("file not found")

// ErrMetadataNotFound is an error thrown when a file has no metadata yet
var ErrMetadataNotFound = errors.New("metadata not found")

// ErrBoardNotFound is an error thrown when board is not found
var ErrBoardNotFound = errors.New("board not found")

// ErrBoardItemNotFound is an error thrown when board item is not found
var ErrBoardItemNotFound = errors.New("item not found")

// ErrLibraryEmpty is an error thrown when a random pick is asked on an empty library
var ErrLibraryEmpty = errors.New("no files found in the library")

// ErrNoFileIDs is an error thrown when a batch has no file ids
var ErrNoFileIDs = errors.New("no file ids provided")

// ErrBoardWithDelete is an error thrown when a batch both places and deletes files
var ErrBoardWithDelete = errors.New("cannot add to board while deleting files")

// ErrBoardItemsRequired is an error thrown when board_id is set without items
var ErrBoardItemsRequired = errors.New("board_items is required when board_id is provided")

// ErrBoardItemOutsideSelection is an error thrown when an item references an unselected file
var ErrBoardItemOutsideSelection = errors.New("board_items must reference selected file ids")

// ErrStoredBytesMissing is an error thrown when the bytes of a file are gone from storage
var ErrStoredBytesMissing = errors.New("missing file in storage")

// ErrStoredObjectNotFound is an error thrown when a storage key resolves to nothing
var ErrStoredObjectNotFound = errors.New("stored object not found")

// ErrInvalidStorageKey is an error thrown when a storage key would escape its backend root
var ErrInvalidStorageKey = errors.New("invalid storage key")

// ErrInvalidFileName is an error thrown when an uploaded file name is rejected
var ErrInvalidFileName = errors.New("invalid file name")

// ErrFileSizeTooBig is an error thrown when file size is too big
var ErrFileSizeTooBig = errors.New("file size too big")

// ErrUnsupportedMedia is an error thrown when a media container cannot be probed
var ErrUnsupportedMedia = errors.New("unsupported media container")

// ErrNothingUploaded is an error thrown when an upload request carries no file
var ErrNothingUploaded = errors.New("no file uploaded")

// ErrInvalidTagName is an error thrown when a tag name is blank
var ErrInvalidTagName = errors.New("tag name is required")

// ErrInvalidBoardName is an error thrown when a board name is blank
var ErrInvalidBoardName = errors.New("board name is required")
