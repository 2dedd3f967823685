package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"go.uber.org/zap"

	"github.com/Flarenzy/simple-ipam/internal/csvio"
	"github.com/Flarenzy/simple-ipam/internal/domain"
)

const uploadField = "file"

var errUploadTooLarge = errors.New("upload too large")

// @Summary Export every ip record as CSV
// @Tags csv
// @Produce text/csv
// @Success 200 {string} string "CSV ordered by address"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/export.csv [get]
func (a *API) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	rows, err := a.service.Export(r.Context())
	if err != nil {
		a.respondError(w, r, err, "exporting ips")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="ipam-export.csv"`)
	w.WriteHeader(http.StatusOK)
	if err := csvio.Export(w, rows); err != nil {
		a.logger.Error("writing csv export", zap.String("request_id", RequestID(r.Context())), zap.Error(err))
	}
}

// @Summary Import ip records from CSV
// @Description Accepts a multipart upload in the "file" field or a raw text/csv body. Any bad row rejects the whole file.
// @Tags csv
// @Accept multipart/form-data
// @Accept text/csv
// @Produce json
// @Param file formData file false "CSV file"
// @Success 200 {object} ImportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/import [post]
func (a *API) handleImportCSV(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	body, closeBody, err := csvBody(r)
	if err != nil {
		a.respondUploadError(w, r, err, "reading csv upload")
		return
	}
	defer closeBody()

	rows, err := csvio.Import(body)
	if err != nil {
		a.respondUploadError(w, r, err, "parsing csv upload")
		return
	}

	report, err := a.service.Import(r.Context(), rows)
	if err != nil {
		a.respondError(w, r, err, "importing ips")
		return
	}
	a.respond(w, r, http.StatusOK, ImportResponse{
		Rows:     len(rows),
		Inserted: report.Inserted,
		Replaced: report.Replaced,
		Claims:   report.Claims,
	})
}

// respondUploadError answers 413 for uploads over maxBodyBytes.
func (a *API) respondUploadError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) || errors.Is(err, errUploadTooLarge) {
		a.logger.Debug(msg, zap.String("request_id", RequestID(r.Context())), zap.Error(err))
		a.respond(w, r, http.StatusRequestEntityTooLarge, ErrorResponse{
			Error: fmt.Sprintf("upload exceeds %d bytes", maxBodyBytes),
			Kind:  domain.KindInvalidInput.String(),
		})
		return
	}
	a.respondError(w, r, err, msg)
}

// @Summary Download an import template
// @Tags csv
// @Produce text/csv
// @Success 200 {string} string "CSV template"
// @Router /api/v1/import/template [get]
func (a *API) handleImportTemplate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="ipam-import-template.csv"`)
	w.WriteHeader(http.StatusOK)
	if err := csvio.Template(w); err != nil {
		a.logger.Error("writing csv template", zap.String("request_id", RequestID(r.Context())), zap.Error(err))
	}
}

func csvBody(r *http.Request) (io.Reader, func(), error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "multipart/form-data" {
		return r.Body, func() {}, nil
	}

	if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: multipart form: %v", domain.ErrInvalidInput, err)
	}
	f, header, err := r.FormFile(uploadField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, fmt.Errorf("%w: %q field is required", domain.ErrInvalidInput, uploadField)
		}
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if header.Size > maxBodyBytes {
		_ = f.Close()
		return nil, nil, fmt.Errorf("%w: %q is %d bytes", errUploadTooLarge, header.Filename, header.Size)
	}
	return f, func() { _ = f.Close() }, nil
}
