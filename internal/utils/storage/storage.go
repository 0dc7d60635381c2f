package storage

import (
	"encoding/hex"
	"fmt"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"
	"time"

	"agrifusion/domain"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// Storage is a blob store for user uploads. Object keys are slash-separated
// and prefixed by the folder they were uploaded to.
type Storage interface {
	UploadFile(file *multipart.FileHeader, folder string, allow ...string) (string, error)
	DeleteFile(objectKey string) error
	GetPublicLinkKey(objectKey string) string
	GetObjectKeyFromLink(link string) string
}

var AllowImage = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp"}

var imageMimeTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".bmp":  "image/bmp",
}

type FileInfo struct {
	Ext      string
	MimeType string
	Size     int64
}

// Inspect admits a file only when its extension is allowed, its sniffed
// content matches an allowed type and its size is within maxSize.
func Inspect(file *multipart.FileHeader, maxSize int64, allow ...string) (FileInfo, error) {
	if file == nil || file.Filename == "" {
		return FileInfo{}, domain.ErrNoFile
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !contains(allow, ext) {
		return FileInfo{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedFileType, ext)
	}

	src, err := file.Open()
	if err != nil {
		return FileInfo{}, fmt.Errorf("%w: %v", domain.ErrFileSystem, err)
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return FileInfo{}, fmt.Errorf("%w: %v", domain.ErrFileSystem, err)
	}
	if !allowedMime(allow, mtype) {
		return FileInfo{}, fmt.Errorf("%w: content is %s", domain.ErrUnsupportedFileType, mtype.String())
	}

	if maxSize > 0 && file.Size > maxSize {
		return FileInfo{}, domain.ErrFileTooLarge
	}

	return FileInfo{Ext: ext, MimeType: imageMimeOr(ext, mtype), Size: file.Size}, nil
}

// NewObjectKey builds "<folder>/<unix-millis>-<random hex><ext>".
func NewObjectKey(folder, ext string) string {
	id := uuid.New()
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), hex.EncodeToString(id[:6]), strings.ToLower(ext))
	if folder == "" {
		return name
	}
	return path.Join(folder, name)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func allowedMime(allow []string, mtype *mimetype.MIME) bool {
	for _, ext := range allow {
		want, ok := imageMimeTypes[ext]
		if ok && mtype.Is(want) {
			return true
		}
	}
	return false
}

func imageMimeOr(ext string, mtype *mimetype.MIME) string {
	if m, ok := imageMimeTypes[ext]; ok && mtype.Is(m) {
		return m
	}
	return mtype.String()
}
