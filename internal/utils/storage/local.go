package storage

import (
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"agrifusion/domain"
)

const PublicPrefix = "/uploads/"

type StoredObject struct {
	Key     string
	Size    int64
	ModTime time.Time
}

// LocalStorage keeps uploads on disk under root; the HTTP layer serves root
// at PublicPrefix.
type LocalStorage struct {
	root    string
	baseURL string
	maxSize int64
}

func NewLocalStorage(root, baseURL string, maxSize int64) (*LocalStorage, error) {
	if err := os.MkdirAll(root, os.ModePerm); err != nil {
		return nil, fmt.Errorf("%w: creating upload dir: %v", domain.ErrFileSystem, err)
	}
	return &LocalStorage{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
		maxSize: maxSize,
	}, nil
}

func (l *LocalStorage) Root() string {
	return l.root
}

func (l *LocalStorage) UploadFile(file *multipart.FileHeader, folder string, allow ...string) (string, error) {
	info, err := Inspect(file, l.maxSize, allow...)
	if err != nil {
		return "", err
	}

	objectKey := NewObjectKey(folder, info.Ext)
	dst, err := l.resolve(objectKey)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(dst), os.ModePerm); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrFileSystem, err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrFileSystem, err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrFileSystem, err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("%w: %v", domain.ErrFileSystem, err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("%w: %v", domain.ErrFileSystem, err)
	}
	return objectKey, nil
}

// DeleteFile treats an already missing file as deleted.
func (l *LocalStorage) DeleteFile(objectKey string) error {
	p, err := l.resolve(objectKey)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: %v", domain.ErrFileSystem, err)
	}
	return nil
}

func (l *LocalStorage) GetPublicLinkKey(objectKey string) string {
	return l.baseURL + PublicPrefix + objectKey
}

func (l *LocalStorage) GetObjectKeyFromLink(link string) string {
	if i := strings.Index(link, PublicPrefix); i >= 0 {
		return link[i+len(PublicPrefix):]
	}
	return ""
}

// ListObjects walks a folder and returns every regular file in it.
func (l *LocalStorage) ListObjects(folder string) ([]StoredObject, error) {
	dir, err := l.resolve(folder)
	if err != nil {
		return nil, err
	}
	var objects []StoredObject
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return filepath.SkipDir
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(l.root, p)
		if err != nil {
			return err
		}
		objects = append(objects, StoredObject{
			Key:     filepath.ToSlash(rel),
			Size:    fi.Size(),
			ModTime: fi.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFileSystem, err)
	}
	return objects, nil
}

func (l *LocalStorage) resolve(objectKey string) (string, error) {
	clean := path.Clean("/" + objectKey)
	if clean == "/" && objectKey != "" {
		return "", fmt.Errorf("%w: invalid object key %q", domain.ErrStorage, objectKey)
	}
	return filepath.Join(l.root, filepath.FromSlash(strings.TrimPrefix(clean, "/"))), nil
}
