package api

import (
	"context"
	"time"

	"github.com/egiraffe/egiraffe-cli/internal/client/models"
)

// ModifyFileRequest patches a file revision; nil fields stay untouched.
// Approval flips are the moderation workflow's main write.
type ModifyFileRequest struct {
	ID               string     `json:"id" validate:"required"`
	Name             *string    `json:"name,omitempty"`
	MimeType         *string    `json:"mime_type,omitempty"`
	RevisionAt       *time.Time `json:"revision_at,omitempty"`
	UploadID         *string    `json:"upload_id,omitempty"`
	ApprovalMod      *bool      `json:"approval_mod,omitempty"`
	ApprovalUploader *bool      `json:"approval_uploader,omitempty"`
}

func (c *HTTPClient) GetAllUploads(ctx context.Context) ([]models.Upload, error) {
	resp, err := put[struct {
		Uploads []uploadDTO `json:"uploads"`
	}](ctx, c, "/api/v1/mod/content/get-all-uploads", nil)
	if err != nil {
		return nil, err
	}
	return uploadsToModels(resp.Uploads)
}

func (c *HTTPClient) GetAllFiles(ctx context.Context) ([]models.File, error) {
	resp, err := put[struct {
		Files []fileDTO `json:"files"`
	}](ctx, c, "/api/v1/mod/content/get-all-files", nil)
	if err != nil {
		return nil, err
	}
	files := make([]models.File, 0, len(resp.Files))
	for _, dto := range resp.Files {
		file, err := dto.toModel()
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}

// ModifyFile returns the owning upload in its state after the change.
func (c *HTTPClient) ModifyFile(ctx context.Context, req ModifyFileRequest) (*models.Upload, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	resp, err := put[struct {
		Upload uploadDTO `json:"upload"`
	}](ctx, c, "/api/v1/mod/content/modify-file", req)
	if err != nil {
		return nil, err
	}
	upload, err := resp.Upload.toModel()
	if err != nil {
		return nil, err
	}
	return &upload, nil
}
