package api

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/awarelabs/aware/internal/document"
	"github.com/awarelabs/aware/pkg/models"
)

const maxUploadSize = 10 << 20 // 10 MB

var allowedExts = map[string]bool{".txt": true, ".md": true, ".docx": true, ".pdf": true}

// handleAnalyze runs the detection pipeline on an uploaded document. Accepts
// either multipart form data (field "file", optional field "original" with
// the pre-edit version) or a JSON body with raw text.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if strings.HasPrefix(mediaType, "multipart/") {
		s.analyzeMultipart(w, r)
		return
	}
	s.analyzeJSON(w, r)
}

func (s *Server) analyzeMultipart(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "file too large or invalid form")
		return
	}

	doc, err := parseFormFile(r, "file")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if doc == nil {
		respondError(w, http.StatusBadRequest, "no file provided")
		return
	}

	original, err := parseFormFile(r, "original")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, s.analyzer.Analyze(doc, original))
}

func (s *Server) analyzeJSON(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text         string `json:"text"`
		Filename     string `json:"filename"`
		OriginalText string `json:"original_text"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		respondError(w, http.StatusBadRequest, "text is required")
		return
	}
	if req.Filename == "" {
		req.Filename = "document.txt"
	}

	doc := document.ParseText(req.Text, req.Filename)
	var original *models.DocumentFeatures
	if req.OriginalText != "" {
		original = document.ParseText(req.OriginalText, "original.txt")
	}

	respondJSON(w, http.StatusOK, s.analyzer.Analyze(doc, original))
}

// parseFormFile reads one named file from the multipart form. A missing
// field is not an error; it returns nil.
func parseFormFile(r *http.Request, field string) (*models.DocumentFeatures, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, errBadUpload(field)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExts[ext] {
		return nil, errBadExtension{}
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, errBadUpload(field)
	}

	doc, err := document.ParseBytes(content, header.Filename)
	if err != nil {
		return nil, errUnparsable(field)
	}
	return doc, nil
}

type errBadExtension struct{}

func (errBadExtension) Error() string {
	return "only .txt, .md, .docx, and .pdf files are allowed"
}

type errBadUpload string

func (e errBadUpload) Error() string { return "failed to read " + string(e) + " upload" }

type errUnparsable string

func (e errUnparsable) Error() string { return "failed to parse " + string(e) + " document" }
