package files

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtension(t *testing.T) {
	tests := []struct {
		name  string
		isDir bool
		want  string
	}{
		{"report.pdf", false, ".pdf"},
		{"archive.tar.gz", false, ".gz"},
		{"Makefile", false, "?"},
		{".bashrc", false, ".bashrc"},
		{"trailing.", false, "."},
		{"photos.d", true, "?"},
		{"IMAGE.BIN", false, ".BIN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extension(tt.name, tt.isDir))
		})
	}
}

func TestTypeText(t *testing.T) {
	tests := []struct {
		ext   string
		isDir bool
		want  string
	}{
		{".exe", false, "Executable"},
		{".BIN", false, "BIN File"},
		{".bin", false, "Unknown File Type"},
		{".MARKER", false, "MARKER File"},
		{".txt", false, "Text"},
		{".TXT", false, "Unknown File Type"},
		{".docx", false, "Document"},
		{".jpeg", false, "Image"},
		{".mkv", false, "Video"},
		{".wav", false, "Audio"},
		{"?", false, "Unknown File Type"},
		{".txt", true, "File Folder"},
		{"?", true, "File Folder"},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeText(tt.ext, tt.isDir))
		})
	}
}

func TestCategory(t *testing.T) {
	assert.Equal(t, "folder", Category(TypeFolder))
	assert.Equal(t, "image", Category(TypeText(".png", false)))
	assert.Equal(t, "document", Category(TypeText(".pdf", false)))
	assert.Equal(t, "", Category(TypeUnknown))
}
