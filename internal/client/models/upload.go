package models

import "time"

// Upload is the metadata of a document offered in a course. The binary
// content lives in File revisions attached separately.
type Upload struct {
	ID               string
	Name             string
	Description      string
	Price            int
	Uploader         string
	UploadDate       time.Time
	LastModifiedDate time.Time
	BelongsTo        string
	HeldBy           string
}

// Free reports whether the upload can be downloaded without spending ECs.
func (u Upload) Free() bool { return u.Price == 0 }

// File is a single revision of an upload's binary content. It becomes
// downloadable only when both approval flags are set.
type File struct {
	ID               string
	Name             string
	MimeType         string
	Size             int64
	RevisionAt       time.Time
	UploadID         string
	ApprovalUploader bool
	ApprovalMod      bool
}

// Available reports whether the revision may be served to purchasers.
func (f File) Available() bool { return f.ApprovalUploader && f.ApprovalMod }

// Purchase records that a user bought access to an upload. Access is
// permanent regardless of later price changes. Rating is nil until the
// buyer rates the upload (1–5).
type Purchase struct {
	UserID       string
	UploadID     string
	ECsSpent     int
	PurchaseDate time.Time
	Rating       *int
}

// PurchaseInfo is the library-view triple: a purchase, its upload and the
// newest downloadable revision (zero File when none is available).
type PurchaseInfo struct {
	Purchase                Purchase
	Upload                  Upload
	MostRecentAvailableFile *File
}

// UploadDetail combines an upload with its file revisions as returned by the
// detail endpoint. TotalFilesCount counts every revision the server knows,
// including ones withheld from the listing.
type UploadDetail struct {
	Upload          Upload
	Files           []File
	UploaderName    string
	TotalFilesCount int
}

// MostRecentAvailableFile picks the revision with the newest timestamp among
// those with both approval flags set. Returns nil when no revision
// qualifies; an unapproved file never wins regardless of its timestamp.
func MostRecentAvailableFile(files []File) *File {
	var best *File
	for i := range files {
		f := &files[i]
		if !f.Available() {
			continue
		}
		if best == nil || f.RevisionAt.After(best.RevisionAt) {
			best = f
		}
	}
	return best
}
