package api

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUploads_NormalizesDates(t *testing.T) {
	uploaded := time.Date(2024, 5, 17, 9, 30, 15, 0, time.UTC)
	modified := uploaded.Add(48 * time.Hour)

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"success": true, "uploads": []map[string]any{{
			"id": "up1", "name": "Exam 2024", "description": "with solutions",
			"price": 4, "uploader": "u1",
			"upload_date":        uploaded.Format(time.RFC3339),
			"last_modified_date": modified.Format(time.RFC3339),
			"belongs_to":         "c1",
		}}})
	}))

	uploads, err := c.GetUploads(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, uploads, 1)

	// Round-trip: the decoded instants equal the transmitted ones.
	assert.True(t, uploads[0].UploadDate.Equal(uploaded))
	assert.True(t, uploads[0].LastModifiedDate.Equal(modified))
}

func TestGetUploads_InvalidDateIsError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"success": true, "uploads": []map[string]any{{
			"id": "up1", "upload_date": "yesterday", "last_modified_date": "today",
		}}})
	}))

	_, err := c.GetUploads(context.Background(), "c1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}

func TestGetCourses_ClientSideRefilter(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		// Server answers with one stale, non-matching course on purpose.
		writeJSON(t, w, map[string]any{"success": true, "courses": []map[string]any{
			{"id": "c1", "name": "Analysis I", "held_at": "uni1"},
			{"id": "c2", "name": "Statistik", "held_at": "uni1"},
		}})
	}))

	courses, err := c.GetCourses(context.Background(), "ana")
	require.NoError(t, err)

	assert.Equal(t, "ana", gotQuery)
	require.Len(t, courses, 1)
	assert.Equal(t, "Analysis I", courses[0].Name)
}

func TestGetCourses_EmptyQueryTwiceIsIdentical(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"success": true, "courses": []map[string]any{
			{"id": "c1", "name": "Analysis I", "held_at": "uni1"},
			{"id": "c2", "name": "Statistik", "held_at": "uni1"},
		}})
	}))

	first, err := c.GetCourses(context.Background(), "")
	require.NoError(t, err)
	second, err := c.GetCourses(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetCourses_NoMatchesIsEmptyNotError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"success": true, "courses": []map[string]any{}})
	}))

	courses, err := c.GetCourses(context.Background(), "zzzz")
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestAttachFile_MultipartForm(t *testing.T) {
	var gotUploadID, gotFilename, gotContent string

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		require.NoError(t, err)
		require.Equal(t, "multipart/form-data", mediaType)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotUploadID = r.FormValue("upload_id")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		gotFilename = header.Filename
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		gotContent = string(data)

		writeJSON(t, w, map[string]any{"success": true, "message": "stored"})
	}))

	err := c.AttachFile(context.Background(), "up1", "notes.pdf", strings.NewReader("%PDF-1.7"))
	require.NoError(t, err)

	assert.Equal(t, "up1", gotUploadID)
	assert.Equal(t, "notes.pdf", gotFilename)
	assert.Equal(t, "%PDF-1.7", gotContent)
}

func TestGetPurchasedUploads(t *testing.T) {
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"success": true, "purchase_info_items": []map[string]any{
			{
				"purchase": map[string]any{
					"user_id": "u1", "upload_id": "up1", "ecs_spent": 4,
					"purchase_date": now.Format(time.RFC3339), "rating": 5,
				},
				"upload": map[string]any{
					"id": "up1", "name": "Exam", "price": 4, "uploader": "u2",
					"upload_date":        now.Format(time.RFC3339),
					"last_modified_date": now.Format(time.RFC3339),
					"belongs_to":         "c1",
				},
				"most_recent_available_file": map[string]any{
					"id": "f1", "name": "exam.pdf", "mime_type": "application/pdf",
					"size": 1234, "revision_at": now.Format(time.RFC3339), "upload_id": "up1",
					"approval_uploader": true, "approval_mod": true,
				},
			},
			{
				"purchase": map[string]any{
					"user_id": "u1", "upload_id": "up2", "ecs_spent": 0,
					"purchase_date": now.Format(time.RFC3339), "rating": nil,
				},
				"upload": map[string]any{
					"id": "up2", "name": "Notes", "price": 0, "uploader": "u3",
					"upload_date":        now.Format(time.RFC3339),
					"last_modified_date": now.Format(time.RFC3339),
					"belongs_to":         "c1",
				},
				"most_recent_available_file": nil,
			},
		}})
	}))

	items, err := c.GetPurchasedUploads(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.NotNil(t, items[0].Purchase.Rating)
	assert.Equal(t, 5, *items[0].Purchase.Rating)
	require.NotNil(t, items[0].MostRecentAvailableFile)
	assert.Equal(t, "f1", items[0].MostRecentAvailableFile.ID)

	assert.Nil(t, items[1].Purchase.Rating)
	assert.Nil(t, items[1].MostRecentAvailableFile, "purchases may have no downloadable revision")
}

func TestModifyFile_ApprovalFlip(t *testing.T) {
	var got map[string]any
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/mod/content/modify-file", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(t, w, map[string]any{"success": true, "upload": map[string]any{
			"id": "up1", "name": "Exam", "price": 4, "uploader": "u2",
			"upload_date":        now.Format(time.RFC3339),
			"last_modified_date": now.Format(time.RFC3339),
			"belongs_to":         "c1",
		}})
	}))

	approved := true
	upload, err := c.ModifyFile(context.Background(), ModifyFileRequest{ID: "f1", ApprovalMod: &approved})
	require.NoError(t, err)

	assert.Equal(t, "up1", upload.ID)
	assert.Equal(t, map[string]any{"id": "f1", "approval_mod": true}, got)
}

func TestCreateSystemTransaction(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/ecs/create-system-transaction", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(t, w, map[string]any{"success": true, "message": "ok"})
	}))

	err := c.CreateSystemTransaction(context.Background(), SystemTransactionRequest{
		UserID: "u1", DeltaEC: -5, Reason: "refund correction",
	})
	require.NoError(t, err)

	assert.Equal(t, "u1", got["user_id"])
	assert.Equal(t, float64(-5), got["delta_ec"])
	assert.Equal(t, "refund correction", got["reason"])
}

func TestCreateSystemTransaction_RejectionSurfaces(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"success": false, "message": "admin role required"})
	}))

	err := c.CreateSystemTransaction(context.Background(), SystemTransactionRequest{UserID: "u1", DeltaEC: -5})

	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "admin role required", domainErr.Message)
}
