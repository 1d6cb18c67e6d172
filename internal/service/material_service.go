package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"ap_study_backend/internal/model"
	"ap_study_backend/internal/repository"
	"ap_study_backend/internal/util"

	"github.com/google/uuid"
)

// Upload size bound for study materials, 10 MiB.
const maxMaterialSize = 10 << 20

var textLikeExtensions = map[string]bool{
	".txt": true,
	".md":  true,
	".csv": true,
	".tex": true,
}

// MaterialService handles study material uploads and text extraction for
// insight analysis.
type MaterialService struct {
	MaterialRepo *repository.MaterialRepository
	Storage      *StorageService
}

func NewMaterialService(materialRepo *repository.MaterialRepository, storage *StorageService) *MaterialService {
	return &MaterialService{MaterialRepo: materialRepo, Storage: storage}
}

// Upload stores the file and records it with its extracted text. Binary
// formats get a placeholder line instead of extracted text so the insight
// pass can still mention the file by name.
func (s *MaterialService) Upload(ctx context.Context, userID uint, header *multipart.FileHeader) (*model.StudyMaterial, error) {
	if header.Size == 0 {
		return nil, util.ErrEmptyUpload
	}
	if header.Size > maxMaterialSize {
		return nil, util.ErrUploadTooLarge
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxMaterialSize))
	if err != nil {
		return nil, err
	}

	stored := fmt.Sprintf("materials/%d/%s%s", userID, uuid.New().String(), filepath.Ext(header.Filename))
	contentType := header.Header.Get("Content-Type")
	url, err := s.Storage.Upload(ctx, stored, bytes.NewReader(data), int64(len(data)), contentType)
	if err != nil {
		return nil, err
	}

	material := &model.StudyMaterial{
		UserID:        userID,
		Filename:      header.Filename,
		ContentType:   contentType,
		Size:          int64(len(data)),
		URL:           url,
		ExtractedText: extractText(header.Filename, contentType, data),
	}
	if err := s.MaterialRepo.Create(material); err != nil {
		return nil, err
	}
	return material, nil
}

func (s *MaterialService) List(userID uint) ([]model.StudyMaterial, error) {
	return s.MaterialRepo.ListByUser(userID)
}

// CombinedText returns all extracted material text for one user.
func (s *MaterialService) CombinedText(userID uint) (string, error) {
	return s.MaterialRepo.CombinedText(userID)
}

// extractText pulls analyzable text from an upload. Only plain-text
// formats are read; anything else yields a one-line marker naming the file.
func extractText(filename, contentType string, data []byte) string {
	ext := strings.ToLower(filepath.Ext(filename))
	isText := textLikeExtensions[ext] ||
		strings.HasPrefix(contentType, "text/") ||
		contentType == "application/json"
	if isText && utf8.Valid(data) {
		return string(data)
	}
	return fmt.Sprintf("[...file: %s]", filename)
}
