// Package storage guarda los archivos subidos desde el panel (imágenes,
// audio de episodios) en disco local, bajo un directorio configurable que
// luego se sirve como estático.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Extensiones admitidas. Cualquier otra se rechaza antes de tocar disco.
var allowedExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true,
	".svg": true, ".mp3": true, ".ogg": true, ".wav": true, ".pdf": true,
}

// LocalStore guarda archivos bajo dir con nombres UUID; el nombre original
// solo aporta la extensión.
type LocalStore struct {
	dir     string
	maxSize int64
}

// NewLocalStore crea el directorio si no existe.
func NewLocalStore(dir string, maxSize int64) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear directorio %q: %w", dir, err)
	}
	return &LocalStore{dir: dir, maxSize: maxSize}, nil
}

// Save persiste el archivo y devuelve el nombre generado (sin el directorio).
func (s *LocalStore) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Size > s.maxSize {
		return "", fmt.Errorf("archivo supera el máximo de %d bytes", s.maxSize)
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("extensión %q no admitida", ext)
	}
	name := uuid.New().String() + ext

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("storage: abrir upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("storage: crear archivo: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, s.maxSize+1)); err != nil {
		return "", fmt.Errorf("storage: escribir archivo: %w", err)
	}
	return name, nil
}

// Delete borra un archivo por nombre. Nombres con separadores se rechazan.
func (s *LocalStore) Delete(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return fmt.Errorf("nombre de archivo inválido")
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("storage: borrar archivo: %w", err)
	}
	return nil
}

// Dir devuelve el directorio base, para montarlo como estático.
func (s *LocalStore) Dir() string { return s.dir }
