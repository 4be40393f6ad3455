package api

import (
	"context"
	"io"

	"github.com/egiraffe/egiraffe-cli/internal/client/models"
)

// Client is the typed surface of the Egiraffe backend: one method per
// backend action. Session state (the auth cookie) lives inside the
// implementation, so a single Client instance represents one user session.
type Client interface {
	// Auth
	Login(ctx context.Context, req LoginRequest) error
	Register(ctx context.Context, req RegisterRequest) error
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error

	// Own account
	GetMe(ctx context.Context) (*models.User, error)
	UpdateMe(ctx context.Context, req UpdateMeRequest) (*models.User, error)
	GetMyBalance(ctx context.Context) (int, error)

	// Catalogue
	GetCourses(ctx context.Context, query string) ([]models.Course, error)
	CreateCourse(ctx context.Context, req CreateCourseRequest) (*models.Course, error)
	GetUniversities(ctx context.Context) ([]models.University, error)
	CreateProf(ctx context.Context, req CreateProfRequest) (*models.Prof, error)

	// Uploads
	GetUploads(ctx context.Context, courseID string) ([]models.Upload, error)
	GetUpload(ctx context.Context, uploadID string) (*models.Upload, error)
	GetFilesOfUpload(ctx context.Context, uploadID string) (*models.UploadDetail, error)
	CreateUpload(ctx context.Context, req CreateUploadRequest) (*models.Upload, error)
	AttachFile(ctx context.Context, uploadID, filename string, content io.Reader) error
	Purchase(ctx context.Context, uploadID string) error
	GetPurchasedUploads(ctx context.Context) ([]models.PurchaseInfo, error)

	// Moderation (moderator and above; gating is authoritative server-side)
	GetAllUploads(ctx context.Context) ([]models.Upload, error)
	GetAllFiles(ctx context.Context) ([]models.File, error)
	ModifyFile(ctx context.Context, req ModifyFileRequest) (*models.Upload, error)

	// Admin
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserBalance(ctx context.Context, userID string) (int, error)
	CreateSystemTransaction(ctx context.Context, req SystemTransactionRequest) error
}
