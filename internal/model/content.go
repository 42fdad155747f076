package model

// File type identifiers used to pick a glyph in the content hub.
const (
	FileTypeVideo    = "video"
	FileTypePDF      = "pdf"
	FileTypeImage    = "image"
	FileTypeCode     = "code"
	FileTypeDocument = "document"
	FileTypeArchive  = "archive"
)

// Folder is a top-level asset folder in the content hub.
type Folder struct {
	ID   int    `json:"id" db:"id" yaml:"id"`
	Name string `json:"name" db:"name" yaml:"name"`
}

// File is a recently modified asset.
type File struct {
	ID       int    `json:"id" db:"id" yaml:"id"`
	Name     string `json:"name" db:"name" yaml:"name"`
	Type     string `json:"type" db:"type" yaml:"type"`
	Size     string `json:"size" db:"size" yaml:"size"`
	Modified string `json:"modified" db:"modified" yaml:"modified"`
}
