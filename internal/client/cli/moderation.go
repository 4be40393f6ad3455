package cli

import (
	"context"
	"fmt"

	"github.com/egiraffe/egiraffe-cli/internal/client/api"
	"github.com/egiraffe/egiraffe-cli/internal/client/models"
)

// ModUploads lists every upload regardless of approval state, the moderation
// queue's upload view.
func (a *App) ModUploads(ctx context.Context) error {
	if !a.hasRole(models.AuthLevelModerator) {
		printlnFn("Not authorized")
		return nil
	}
	return runPage(ctx, a.client.GetAllUploads, func(uploads []models.Upload) {
		if len(uploads) == 0 {
			printlnFn("No uploads found")
			return
		}
		for _, upload := range uploads {
			printlnFn(formatUpload(upload))
		}
	})
}

// ModFiles lists every file revision with both approval flags, so a
// moderator can see what is blocking availability.
func (a *App) ModFiles(ctx context.Context) error {
	if !a.hasRole(models.AuthLevelModerator) {
		printlnFn("Not authorized")
		return nil
	}
	return runPage(ctx, a.client.GetAllFiles, func(files []models.File) {
		if len(files) == 0 {
			printlnFn("No files found")
			return
		}
		for _, file := range files {
			printlnFn(fmt.Sprintf("%s  %s  upload=%s  mod=%s uploader=%s  revision %s",
				file.ID, file.Name, file.UploadID,
				yesNo(file.ApprovalMod), yesNo(file.ApprovalUploader),
				file.RevisionAt.Format("2006-01-02 15:04")))
		}
	})
}

// SetFileApproval sets the moderator approval flag on one file revision.
// The uploader's own flag is out of a moderator's hands; a file only becomes
// downloadable once both are set.
func (a *App) SetFileApproval(ctx context.Context, fileID string, approved bool) error {
	if !a.hasRole(models.AuthLevelModerator) {
		printlnFn("Not authorized")
		return nil
	}
	upload, err := a.client.ModifyFile(ctx, api.ModifyFileRequest{ID: fileID, ApprovalMod: &approved})
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	verb := "rejected"
	if approved {
		verb = "approved"
	}
	printlnFn("File " + fileID + " " + verb + " (upload " + upload.ID + ")")
	return nil
}
