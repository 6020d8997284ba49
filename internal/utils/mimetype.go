package utils

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// DirectoryContentType is reported for folders
const DirectoryContentType = "inode/directory"

// commonTypes covers extensions the system MIME table often lacks
var commonTypes = map[string]string{
	".md":     "text/markdown",
	".drawio": "application/vnd.jgraph.mxfile",
	".mkv":    "video/x-matroska",
	".msi":    "application/x-msi",
	".exe":    "application/vnd.microsoft.portable-executable",
	".dll":    "application/vnd.microsoft.portable-executable",
	".img":    "application/octet-stream",
	".ini":    "text/plain",
	".flac":   "audio/flac",
	".wav":    "audio/wav",
}

// DetectContentType detects the MIME type of a file using multiple methods
func DetectContentType(fsys afero.Fs, filePath string) (string, error) {
	info, err := fsys.Stat(filePath)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return DirectoryContentType, nil
	}

	// First, try to detect from file extension
	ext := strings.ToLower(filepath.Ext(filePath))
	if contentType, ok := commonTypes[ext]; ok {
		return contentType, nil
	}
	if contentType := mime.TypeByExtension(ext); contentType != "" {
		return contentType, nil
	}

	// If extension detection fails, sniff the first 512 bytes
	f, err := fsys.Open(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buffer := make([]byte, 512)
	n, err := f.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}
	return http.DetectContentType(buffer[:n]), nil
}
