package api

import (
	"context"
	"io"

	"github.com/egiraffe/egiraffe-cli/internal/client/models"
)

// Wire shapes with dates still as ISO-8601 strings. They are normalized
// into the models types right after decoding.

type uploadDTO struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Price            int    `json:"price"`
	Uploader         string `json:"uploader"`
	UploadDate       string `json:"upload_date"`
	LastModifiedDate string `json:"last_modified_date"`
	BelongsTo        string `json:"belongs_to"`
	HeldBy           string `json:"held_by,omitempty"`
}

func (d uploadDTO) toModel() (models.Upload, error) {
	uploaded, err := parseDate(d.UploadDate)
	if err != nil {
		return models.Upload{}, err
	}
	modified, err := parseDate(d.LastModifiedDate)
	if err != nil {
		return models.Upload{}, err
	}
	return models.Upload{
		ID:               d.ID,
		Name:             d.Name,
		Description:      d.Description,
		Price:            d.Price,
		Uploader:         d.Uploader,
		UploadDate:       uploaded,
		LastModifiedDate: modified,
		BelongsTo:        d.BelongsTo,
		HeldBy:           d.HeldBy,
	}, nil
}

type fileDTO struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	MimeType         string `json:"mime_type"`
	Size             int64  `json:"size"`
	RevisionAt       string `json:"revision_at"`
	UploadID         string `json:"upload_id"`
	ApprovalUploader bool   `json:"approval_uploader"`
	ApprovalMod      bool   `json:"approval_mod"`
}

func (d fileDTO) toModel() (models.File, error) {
	revision, err := parseDate(d.RevisionAt)
	if err != nil {
		return models.File{}, err
	}
	return models.File{
		ID:               d.ID,
		Name:             d.Name,
		MimeType:         d.MimeType,
		Size:             d.Size,
		RevisionAt:       revision,
		UploadID:         d.UploadID,
		ApprovalUploader: d.ApprovalUploader,
		ApprovalMod:      d.ApprovalMod,
	}, nil
}

type purchaseDTO struct {
	UserID       string `json:"user_id"`
	UploadID     string `json:"upload_id"`
	ECsSpent     int    `json:"ecs_spent"`
	PurchaseDate string `json:"purchase_date"`
	Rating       *int   `json:"rating"`
}

func (d purchaseDTO) toModel() (models.Purchase, error) {
	purchased, err := parseDate(d.PurchaseDate)
	if err != nil {
		return models.Purchase{}, err
	}
	return models.Purchase{
		UserID:       d.UserID,
		UploadID:     d.UploadID,
		ECsSpent:     d.ECsSpent,
		PurchaseDate: purchased,
		Rating:       d.Rating,
	}, nil
}

func uploadsToModels(dtos []uploadDTO) ([]models.Upload, error) {
	uploads := make([]models.Upload, 0, len(dtos))
	for _, dto := range dtos {
		upload, err := dto.toModel()
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, upload)
	}
	return uploads, nil
}

type CreateUploadRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Price       int    `json:"price" validate:"gte=0"`
	BelongsTo   string `json:"belongs_to" validate:"required"`
	HeldBy      string `json:"held_by,omitempty"`
}

func (c *HTTPClient) GetUploads(ctx context.Context, courseID string) ([]models.Upload, error) {
	resp, err := put[struct {
		Uploads []uploadDTO `json:"uploads"`
	}](ctx, c, "/api/v1/get/uploads", map[string]string{"course_id": courseID})
	if err != nil {
		return nil, err
	}
	return uploadsToModels(resp.Uploads)
}

func (c *HTTPClient) GetUpload(ctx context.Context, uploadID string) (*models.Upload, error) {
	resp, err := put[struct {
		Upload uploadDTO `json:"upload"`
	}](ctx, c, "/api/v1/get/upload", map[string]string{"upload_id": uploadID})
	if err != nil {
		return nil, err
	}
	upload, err := resp.Upload.toModel()
	if err != nil {
		return nil, err
	}
	return &upload, nil
}

// GetFilesOfUpload returns the upload together with its file revisions and
// the server-side total revision count.
func (c *HTTPClient) GetFilesOfUpload(ctx context.Context, uploadID string) (*models.UploadDetail, error) {
	resp, err := put[struct {
		Upload          uploadDTO `json:"upload"`
		Files           []fileDTO `json:"files"`
		UploaderName    string    `json:"uploader_name"`
		TotalFilesCount int       `json:"total_files_count"`
	}](ctx, c, "/api/v1/get/file", map[string]string{"upload_id": uploadID})
	if err != nil {
		return nil, err
	}

	upload, err := resp.Upload.toModel()
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
	return &models.UploadDetail{
		Upload:          upload,
		Files:           files,
		UploaderName:    resp.UploaderName,
		TotalFilesCount: resp.TotalFilesCount,
	}, nil
}

// CreateUpload is phase one of the two-phase upload flow: it creates the
// metadata and returns the id the binary gets attached to.
func (c *HTTPClient) CreateUpload(ctx context.Context, req CreateUploadRequest) (*models.Upload, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	resp, err := put[struct {
		Upload uploadDTO `json:"upload"`
	}](ctx, c, "/api/v1/do/upload", req)
	if err != nil {
		return nil, err
	}
	upload, err := resp.Upload.toModel()
	if err != nil {
		return nil, err
	}
	return &upload, nil
}

// AttachFile is phase two: a multipart form carrying the upload id and the
// binary content.
func (c *HTTPClient) AttachFile(ctx context.Context, uploadID, filename string, content io.Reader) error {
	_, err := putMultipart[ack](ctx, c, "/api/v1/do/file",
		map[string]string{"upload_id": uploadID}, "file", filename, content)
	return err
}

// Purchase buys access to an upload. Access is permanent once granted,
// regardless of later price changes; a price of zero still goes through the
// same ledger operation.
func (c *HTTPClient) Purchase(ctx context.Context, uploadID string) error {
	_, err := put[ack](ctx, c, "/api/v1/do/purchase", map[string]string{"upload_id": uploadID})
	return err
}

func (c *HTTPClient) GetPurchasedUploads(ctx context.Context) ([]models.PurchaseInfo, error) {
	resp, err := put[struct {
		Items []struct {
			Purchase purchaseDTO `json:"purchase"`
			Upload   uploadDTO   `json:"upload"`
			File     *fileDTO    `json:"most_recent_available_file"`
		} `json:"purchase_info_items"`
	}](ctx, c, "/api/v1/get/purchased-uploads", nil)
	if err != nil {
		return nil, err
	}

	items := make([]models.PurchaseInfo, 0, len(resp.Items))
	for _, item := range resp.Items {
		purchase, err := item.Purchase.toModel()
		if err != nil {
			return nil, err
		}
		upload, err := item.Upload.toModel()
		if err != nil {
			return nil, err
		}
		info := models.PurchaseInfo{Purchase: purchase, Upload: upload}
		if item.File != nil {
			file, err := item.File.toModel()
			if err != nil {
				return nil, err
			}
			info.MostRecentAvailableFile = &file
		}
		items = append(items, info)
	}
	return items, nil
}
