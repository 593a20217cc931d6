package server

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/adawood/tawafur"
	"github.com/adawood/tawafur/docsource"
	"github.com/adawood/tawafur/docsource/docx"
	"github.com/adawood/tawafur/docsource/htmltable"
	"github.com/adawood/tawafur/schedule"
)

// parseResponse is the /parse payload.
type parseResponse struct {
	Success bool      `json:"success"`
	Data    parseData `json:"data"`
}

type parseData struct {
	Doctors *schedule.Roster      `json:"doctors,omitempty"`
	Exams   []*schedule.ExamEntry `json:"exams,omitempty"`
	Matches []*schedule.ExamEntry `json:"matches,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleParse accepts a roster document (roster_file) and an exam
// document (exams_file), extracts both, and matches availability when
// both are present. Uploads are staged under the configured upload
// directory and removed when the request finishes.
func (s *Server) handleParse(c echo.Context) error {
	rosterFile, rosterErr := c.FormFile("roster_file")
	examsFile, examsErr := c.FormFile("exams_file")
	if rosterErr != nil && examsErr != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "no files uploaded"})
	}

	var data parseData
	analyzer := tawafur.New().Workers(s.cfg.MatchWorkers)

	if rosterErr == nil {
		path, cleanup, err := s.stageUpload(rosterFile)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		}
		defer cleanup()

		doc, err := docx.Open(path)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{
				Error: fmt.Sprintf("roster document: %v", err),
			})
		}
		roster, err := analyzer.ParseRoster(doc)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		}
		data.Doctors = roster
	}

	if examsErr == nil {
		path, cleanup, err := s.stageUpload(examsFile)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		}
		defer cleanup()

		src, err := openExamSource(path)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{
				Error: fmt.Sprintf("exam document: %v", err),
			})
		}
		entries, err := analyzer.ParseExams(src)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		}
		data.Exams = entries
	}

	if data.Doctors != nil && data.Exams != nil {
		data.Matches = analyzer.Match(data.Exams, data.Doctors)
	}

	return c.JSON(http.StatusOK, parseResponse{Success: true, Data: data})
}

// stageUpload copies one uploaded file into the upload directory under
// a fresh name and returns its path with a cleanup func.
func (s *Server) stageUpload(fh *multipart.FileHeader) (string, func(), error) {
	src, err := fh.Open()
	if err != nil {
		return "", nil, fmt.Errorf("opening upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	path := filepath.Join(s.cfg.UploadDir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", nil, fmt.Errorf("staging upload: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", nil, fmt.Errorf("staging upload: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", nil, fmt.Errorf("staging upload: %w", err)
	}
	return path, func() { os.Remove(path) }, nil
}

// openExamSource picks a table source by file extension: Word
// documents and HTML exports are supported.
func openExamSource(path string) (docsource.TableSource, error) {
	switch filepath.Ext(path) {
	case ".docx":
		return docx.Open(path)
	case ".html", ".htm":
		return htmltable.Open(path)
	default:
		return nil, fmt.Errorf("unsupported exam document type %q", filepath.Ext(path))
	}
}
