package services

import (
	"context"
	"errors"
	"io"
)

// ErrFileNotFound возвращается, когда ссылка не указывает на сохраненный файл.
var ErrFileNotFound = errors.New("file not found")

// FileStore определяет хранилище загруженных файлов конспектов.
type FileStore interface {
	// Save записывает содержимое под санированным именем и возвращает имя,
	// по которому файл можно получить обратно. Повторная запись под тем же
	// именем перезаписывает содержимое.
	Save(ctx context.Context, name string, src io.Reader) (string, error)

	// Open открывает сохраненный файл на чтение.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
