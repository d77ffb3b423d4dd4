// Package storage реализует файловое хранилище конспектов на локальном диске.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"notemarket/internal/marketplace/domain/entities"
	svc "notemarket/internal/marketplace/ports/services"
	"notemarket/pkg/logger"
)

const (
	errMsgCreateDir  = "failed to create upload directory"
	errMsgEmptyName  = "file name is empty after sanitization"
	errMsgCreateFile = "failed to create file"
	errMsgWriteFile  = "failed to write file"
	errMsgOpenFile   = "failed to open file"
)

// DiskStore хранит файлы в управляемой директории, адресуя их
// санированным именем. Одинаковые имена перезаписывают друг друга.
type DiskStore struct {
	dir string
}

// NewDiskStore создает хранилище и директорию для него.
func NewDiskStore(ctx context.Context, dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		logger.Log(ctx).Error(ctx, errMsgCreateDir, zap.String("dir", dir), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errMsgCreateDir, err)
	}
	return &DiskStore{dir: dir}, nil
}

// Save записывает содержимое под санированным именем и возвращает это имя.
func (s *DiskStore) Save(ctx context.Context, name string, src io.Reader) (string, error) {
	log := logger.Log(ctx).With(zap.String("store", "disk"), zap.String("method", "Save"))

	safeName := SanitizeFileName(name)
	if safeName == "" {
		return "", fmt.Errorf("%s: %w", errMsgEmptyName, entities.ErrMissingFile)
	}

	path := filepath.Join(s.dir, safeName)

	dst, err := os.Create(path)
	if err != nil {
		log.Error(ctx, errMsgCreateFile, zap.String("path", path), zap.Error(err))
		return "", fmt.Errorf("%s: %w", errMsgCreateFile, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		log.Error(ctx, errMsgWriteFile, zap.String("path", path), zap.Error(err))
		return "", fmt.Errorf("%s: %w", errMsgWriteFile, err)
	}

	return safeName, nil
}

// Open открывает сохраненный файл на чтение.
func (s *DiskStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	log := logger.Log(ctx).With(zap.String("store", "disk"), zap.String("method", "Open"))

	safeName := SanitizeFileName(name)
	if safeName == "" {
		return nil, svc.ErrFileNotFound
	}

	file, err := os.Open(filepath.Join(s.dir, safeName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug(ctx, "file not found", zap.String("name", safeName))
			return nil, svc.ErrFileNotFound
		}
		log.Error(ctx, errMsgOpenFile, zap.String("name", safeName), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errMsgOpenFile, err)
	}

	return file, nil
}

// SanitizeFileName приводит имя файла к безопасному виду: отбрасывает
// каталоги и заменяет все, кроме букв, цифр, точки, дефиса и
// подчеркивания. Защищает от path traversal в ссылках на скачивание.
func SanitizeFileName(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	cleaned := strings.Trim(b.String(), "._")
	if cleaned == "" || cleaned == "." || cleaned == ".." {
		return ""
	}
	return cleaned
}
