package server

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/server/middleware"
	"github.com/jonathan/resume-builder/internal/styles"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/sirupsen/logrus"
)

// handleExport renders the posted resume text and returns the document as an
// attachment.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)

	var req types.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			s.errorResponse(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
			return
		}
		s.errorResponse(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	doc, err := s.exporter.Export(r.Context(), &req)
	if err != nil {
		status := HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			entry := s.logger.WithError(err).WithField("format", req.Format)
			if userID, idErr := middleware.GetUserID(r); idErr == nil {
				entry = entry.WithField("user_id", userID.String())
			}
			entry.Error("Export request failed")
		}
		s.errorResponse(w, status, ClientMessage(err))
		return
	}

	w.Header().Set("Content-Type", doc.MIMEType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Bytes)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Bytes); err != nil {
		s.logger.WithFields(logrus.Fields{
			"format":   string(doc.Format),
			"template": doc.Template.String(),
		}).WithError(err).Warn("Failed to write export response")
	}
}

// handleListTemplates describes the available templates and formats.
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	resp := types.TemplatesResponse{
		Default: styles.Simple.String(),
	}
	for _, id := range styles.Templates() {
		profile := styles.Resolve(id)
		resp.Templates = append(resp.Templates, types.TemplateInfo{
			ID:          id.String(),
			BodyFont:    profile.BodyFont.Word,
			HeadingFont: profile.HeadingFont.Word,
			Uppercase:   profile.Decoration.Uppercase,
			DocxRule:    profile.Decoration.DocxRule,
			PDFRule:     profile.Decoration.PDFRule,
		})
	}
	for _, format := range rendering.Formats() {
		resp.Formats = append(resp.Formats, string(format))
	}

	s.jsonResponse(w, http.StatusOK, resp)
}
