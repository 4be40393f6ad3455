package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/egiraffe/egiraffe-cli/internal/client/api"
	"github.com/egiraffe/egiraffe-cli/internal/client/models"
)

func formatUpload(u models.Upload) string {
	return fmt.Sprintf("%s  %s  %d EC  uploaded %s",
		u.ID, u.Name, u.Price, u.UploadDate.Format("2006-01-02"))
}

// purchaseLabel is the buy affordance text, driven purely by the price.
func purchaseLabel(u models.Upload) string {
	if u.Free() {
		return "Download now (free)"
	}
	return fmt.Sprintf("Buy for %d ECs", u.Price)
}

// Uploads lists the uploads of one course.
func (a *App) Uploads(ctx context.Context, courseID string) error {
	return runPage(ctx, func(ctx context.Context) ([]models.Upload, error) {
		return a.client.GetUploads(ctx, courseID)
	}, func(uploads []models.Upload) {
		if len(uploads) == 0 {
			printlnFn("No uploads found")
			return
		}
		for _, upload := range uploads {
			printlnFn(formatUpload(upload))
		}
	})
}

// Show renders the detail page of one upload: metadata, revision counts and
// the newest downloadable revision with its purchase affordance.
func (a *App) Show(ctx context.Context, uploadID string) error {
	return runPage(ctx, func(ctx context.Context) (*models.UploadDetail, error) {
		return a.client.GetFilesOfUpload(ctx, uploadID)
	}, func(detail *models.UploadDetail) {
		upload := detail.Upload
		printlnFn(upload.Name)
		printlnFn("Price:         " + strconv.Itoa(upload.Price) + " EC")
		printlnFn("Uploader:      " + detail.UploaderName + " (" + upload.Uploader + ")")
		printlnFn("Uploaded:      " + upload.UploadDate.Format("2006-01-02 15:04"))
		printlnFn("Last modified: " + upload.LastModifiedDate.Format("2006-01-02 15:04"))
		if upload.HeldBy != "" {
			printlnFn("Instructor:    " + upload.HeldBy)
		}
		printlnFn("Description:   " + upload.Description)
		printlnFn(fmt.Sprintf("%d file revision(s) in total", detail.TotalFilesCount))

		file := models.MostRecentAvailableFile(detail.Files)
		if file == nil {
			printlnFn("No revision is currently available. Either the uploader withdrew the file,")
			printlnFn("or the moderation team has not approved it yet.")
			return
		}
		printlnFn("Newest file:   " + file.Name + " (" + file.MimeType + ", " + strconv.FormatInt(file.Size, 10) + " byte)")
		printlnFn("Revision:      " + file.RevisionAt.Format("2006-01-02 15:04"))
		printlnFn("[" + purchaseLabel(upload) + "]  (buy " + upload.ID + ")")
	})
}

// Buy purchases access to an upload. Free uploads go through the same
// operation; access stays permanent whatever the price does later.
func (a *App) Buy(ctx context.Context, uploadID string) error {
	if !a.requireLogin() {
		return nil
	}
	if err := a.client.Purchase(ctx, uploadID); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Purchased " + uploadID)
	return nil
}

// Library shows the purchased uploads. "library sort <field>" toggles the
// sort controls (date, size, downloads, rating); the toggle state is shown
// but the listing order is the server's.
func (a *App) Library(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}

	if len(args) == 2 && args[0] == "sort" {
		switch args[1] {
		case "date", "size", "downloads", "rating":
			a.librarySort.Toggle(args[1])
		default:
			printlnFn("Usage: library [sort date|size|downloads|rating]")
			return nil
		}
	}

	direction := "desc"
	if a.librarySort.Ascending(a.librarySort.Active()) {
		direction = "asc"
	}
	printlnFn("Sort: " + a.librarySort.Active() + " (" + direction + ")")

	return runPage(ctx, a.client.GetPurchasedUploads, func(items []models.PurchaseInfo) {
		if len(items) == 0 {
			printlnFn("No uploads found. Be the first to upload something!")
			return
		}
		for _, item := range items {
			line := formatUpload(item.Upload)
			if item.Purchase.Rating != nil {
				line += fmt.Sprintf("  rated %d/5", *item.Purchase.Rating)
			}
			if item.MostRecentAvailableFile == nil {
				line += "  (no revision available)"
			}
			printlnFn(line)
		}
	})
}

// Upload walks through the two-phase flow: create the metadata, then attach
// the binary from a local path.
func (a *App) Upload(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Enter description:", os.Stdout)
	if err != nil {
		return err
	}
	priceText, err := getSimpleText(a.reader, "Enter price in EC (0 = free)", os.Stdout)
	if err != nil {
		return err
	}
	price, err := strconv.Atoi(priceText)
	if err != nil || price < 0 {
		printlnFn("Price must be a non-negative integer")
		return nil
	}
	courseID, err := getSimpleText(a.reader, "Enter course id", os.Stdout)
	if err != nil {
		return err
	}
	heldBy, err := getSimpleText(a.reader, "Enter instructor id (optional)", os.Stdout)
	if err != nil {
		return err
	}
	path, err := getSimpleText(a.reader, "Enter file path", os.Stdout)
	if err != nil {
		return err
	}

	upload, err := a.client.CreateUpload(ctx, api.CreateUploadRequest{
		Name:        name,
		Description: description,
		Price:       price,
		BelongsTo:   courseID,
		HeldBy:      heldBy,
	})
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	defer file.Close()

	if err := a.client.AttachFile(ctx, upload.ID, filepath.Base(path), file); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Uploaded " + upload.ID + ". The file becomes available once both approvals are set.")
	return nil
}
