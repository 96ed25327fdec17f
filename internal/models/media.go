package models

// MediaItem référence un objet stocké dans MinIO. Les chemins sont
// relatifs au bucket, jamais des URLs complètes.
type MediaItem struct {
	Path          string `json:"path"`
	ThumbnailPath string `json:"thumbnail_path,omitempty"`
	Alt           string `json:"alt,omitempty"`
	Width         int    `json:"width,omitempty"`
	Height        int    `json:"height,omitempty"`
}
