package dto

type UploadResponse struct {
	FileID       string `json:"file_id"`
	FileURL      string `json:"file_url"`
	OriginalName string `json:"original_name"`
	Size         int64  `json:"size"`
}
