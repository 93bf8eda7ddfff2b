package attachment

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Storage writes uploaded files to local disk under
// <baseDir>/<ownerType>/YYYY/MM/ and serves them back by relative path.
type Storage struct {
	baseDir    string
	staticBase string
}

func NewStorage(baseDir, staticBase string) *Storage {
	return &Storage{baseDir: baseDir, staticBase: staticBase}
}

// StoredFile describes where an uploaded file landed.
type StoredFile struct {
	RelPath  string
	URL      string
	MimeType string
}

// Save sniffs the MIME type, writes the file and returns its location.
func (s *Storage) Save(id string, owner OwnerType, fileHeader *multipart.FileHeader) (*StoredFile, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// sniff from the first 512 bytes, strip charset params
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := strings.Split(http.DetectContentType(buf[:n]), ";")[0]

	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	now := time.Now()
	relDir := filepath.Join(string(owner), fmt.Sprintf("%d/%02d", now.Year(), now.Month()))
	absDir := filepath.Join(s.baseDir, relDir)
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s", id, sanitizeName(fileHeader.Filename))
	absPath := filepath.Join(absDir, filename)

	dst, err := os.Create(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(absPath)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	relPath := filepath.Join(relDir, filename)
	return &StoredFile{
		RelPath:  relPath,
		URL:      s.staticBase + "/" + filepath.ToSlash(relPath),
		MimeType: mimeType,
	}, nil
}

// AbsPath resolves a stored relative path for download streaming.
func (s *Storage) AbsPath(relPath string) string {
	return filepath.Join(s.baseDir, relPath)
}

// Remove deletes the physical file. A file already gone is not an error.
func (s *Storage) Remove(relPath string) {
	_ = os.Remove(filepath.Join(s.baseDir, relPath))
}

func sanitizeName(name string) string {
	name = filepath.Base(name)
	ext := filepath.Ext(name)
	name = strings.TrimSuffix(name, ext)
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '_'
	}, name)
	if len(name) > 40 {
		name = name[:40]
	}
	if name == "" {
		name = "file"
	}
	return name + ext
}
