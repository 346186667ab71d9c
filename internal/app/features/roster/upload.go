// internal/app/features/roster/upload.go
package roster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/mentorhub/internal/app/features/errors"
	"github.com/dalemusser/mentorhub/internal/app/system/csvutil"
	"github.com/dalemusser/mentorhub/internal/app/system/timeouts"
	"github.com/dalemusser/mentorhub/internal/app/system/txn"
	"go.uber.org/zap"
)

const (
	kindStudents = "students"
	kindMentors  = "mentors"
)

// uploadResponse is returned on an accepted upload.
type uploadResponse struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
}

// csvBody returns the uploaded file: the "file" part of a multipart form,
// or the raw request body for any other content type.
func csvBody(w http.ResponseWriter, r *http.Request) (io.ReadCloser, error) {
	r.Body = http.MaxBytesReader(w, r.Body, csvutil.MaxUploadSize)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return r.Body, nil
	}
	if err := r.ParseMultipartForm(csvutil.MaxUploadSize); err != nil {
		return nil, err
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, err
	}
	return file, nil
}

func bodyErrorMessage(err error) string {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
		return fmt.Sprintf("CSV file is too large. Maximum size is %d MB.", csvutil.MaxUploadSize>>20)
	}
	return "CSV file is required."
}

// reject logs, audits and answers a refused upload.
func (h *Handler) reject(w http.ResponseWriter, r *http.Request, kind string, status int, reason string, rowErrs []csvutil.RowError) {
	h.Metrics.Upload(kind, false)
	h.Audit.RosterRejected(r.Context(), r, kind, reason, len(rowErrs))
	h.Log.Info("roster upload rejected",
		zap.String("kind", kind),
		zap.String("reason", reason),
		zap.Int("bad_rows", len(rowErrs)))
	if len(rowErrs) > 0 {
		uierrors.WriteErrorDetails(w, status, reason, rowErrs)
		return
	}
	uierrors.WriteError(w, status, reason)
}

func parseFailure(err error) (int, string) {
	switch {
	case errors.Is(err, csvutil.ErrTooManyRows):
		return http.StatusRequestEntityTooLarge, fmt.Sprintf("CSV file has more than %d rows.", csvutil.MaxRows)
	case errors.Is(err, csvutil.ErrMissingHeader):
		return http.StatusUnprocessableEntity, "CSV header row is missing or has no recognised columns."
	}
	return http.StatusBadRequest, "CSV file could not be parsed: " + err.Error()
}

// UploadStudents handles POST /roster/students.
// The new roster replaces the stored one only if every row is valid.
func (h *Handler) UploadStudents(w http.ResponseWriter, r *http.Request) {
	body, err := csvBody(w, r)
	if err != nil {
		h.reject(w, r, kindStudents, http.StatusBadRequest, bodyErrorMessage(err), nil)
		return
	}
	defer body.Close()

	parsed, err := csvutil.ParseStudentsCSV(body, h.Catalog, h.parseOpts)
	if err != nil {
		status, msg := parseFailure(err)
		h.reject(w, r, kindStudents, status, msg, nil)
		return
	}
	if parsed.HasErrors() {
		h.reject(w, r, kindStudents, http.StatusUnprocessableEntity, csvutil.FormatParseErrors(parsed.Errors, 5), parsed.Errors)
		return
	}
	if len(parsed.Students) == 0 {
		h.reject(w, r, kindStudents, http.StatusUnprocessableEntity, "CSV file contains no students.", nil)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Batch(), h.Log, "students upload")
	defer cancel()

	err = txn.Run(ctx, h.Client, h.Log, func(ctx context.Context) error {
		return h.Students.ReplaceAll(ctx, parsed.Students)
	})
	if err != nil {
		h.Metrics.Upload(kindStudents, false)
		h.ErrLog.LogServerError(w, r, "replace students failed", err, "A database error occurred.")
		return
	}

	h.Metrics.Upload(kindStudents, true)
	h.Audit.RosterUploaded(ctx, r, kindStudents, len(parsed.Students))
	h.Log.Info("students uploaded", zap.Int("count", len(parsed.Students)))
	uierrors.WriteJSON(w, http.StatusOK, uploadResponse{Kind: kindStudents, Count: len(parsed.Students)})
}

// UploadMentors handles POST /roster/mentors.
func (h *Handler) UploadMentors(w http.ResponseWriter, r *http.Request) {
	body, err := csvBody(w, r)
	if err != nil {
		h.reject(w, r, kindMentors, http.StatusBadRequest, bodyErrorMessage(err), nil)
		return
	}
	defer body.Close()

	parsed, err := csvutil.ParseMentorsCSV(body, h.Catalog, h.parseOpts)
	if err != nil {
		status, msg := parseFailure(err)
		h.reject(w, r, kindMentors, status, msg, nil)
		return
	}
	if parsed.HasErrors() {
		h.reject(w, r, kindMentors, http.StatusUnprocessableEntity, csvutil.FormatParseErrors(parsed.Errors, 5), parsed.Errors)
		return
	}
	if len(parsed.Mentors) == 0 {
		h.reject(w, r, kindMentors, http.StatusUnprocessableEntity, "CSV file contains no mentors.", nil)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Batch(), h.Log, "mentors upload")
	defer cancel()

	err = txn.Run(ctx, h.Client, h.Log, func(ctx context.Context) error {
		return h.Mentors.ReplaceAll(ctx, parsed.Mentors)
	})
	if err != nil {
		h.Metrics.Upload(kindMentors, false)
		h.ErrLog.LogServerError(w, r, "replace mentors failed", err, "A database error occurred.")
		return
	}

	h.Metrics.Upload(kindMentors, true)
	h.Audit.RosterUploaded(ctx, r, kindMentors, len(parsed.Mentors))
	h.Log.Info("mentors uploaded", zap.Int("count", len(parsed.Mentors)))
	uierrors.WriteJSON(w, http.StatusOK, uploadResponse{Kind: kindMentors, Count: len(parsed.Mentors)})
}
