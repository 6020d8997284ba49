package files

import "strings"

// Type texts that do not come from the extension table
const (
	TypeFolder  = "File Folder"
	TypeUnknown = "Unknown File Type"

	// NoExtension is reported for directories and names without a dot
	NoExtension = "?"
)

// extensionTypes maps a literal extension (leading dot included) to its type text.
// Matching is case sensitive; add entries rather than changing the lookup.
var extensionTypes = map[string]string{
	".exe":    "Executable",
	".BIN":    "BIN File",
	".MARKER": "MARKER File",
	".img":    "Disk Image File",
	".dat":    "Data File",
	".txt":    "Text",
	".pdf":    "Document",
	".drawio": "DRAWIO File",
	".msi":    "Windows Installer Package",
	".dll":    "Application extension",
	".sys":    "System File",
	".ini":    "Configuration Settings",
	".doc":    "Document",
	".docx":   "Document",
	".xlsx":   "Spreadsheet",
	".ppt":    "Powerpoint",
	".png":    "Image",
	".gif":    "Image",
	".jpg":    "Image",
	".jpeg":   "Image",
	".bmp":    "Image",
	".avi":    "Video",
	".mkv":    "Video",
	".mp3":    "Audio",
	".wav":    "Audio",
}

// Extension returns the part of name starting at its last dot
func Extension(name string, isDir bool) string {
	if isDir {
		return NoExtension
	}
	idx := strings.LastIndex(name, ".")
	if idx == -1 {
		return NoExtension
	}
	return name[idx:]
}

// TypeText returns the human readable type for an extension
func TypeText(ext string, isDir bool) string {
	if isDir {
		return TypeFolder
	}
	if text, ok := extensionTypes[ext]; ok {
		return text
	}
	return TypeUnknown
}

// Category groups type texts for coloring; it returns "" for types without a group
func Category(typeText string) string {
	switch typeText {
	case TypeFolder:
		return "folder"
	case "Image":
		return "image"
	case "Video":
		return "video"
	case "Audio":
		return "audio"
	case "Text", "Configuration Settings":
		return "text"
	case "Document", "Spreadsheet", "Powerpoint", "DRAWIO File":
		return "document"
	case "Executable", "Windows Installer Package", "Application extension", "System File":
		return "binary"
	case "Disk Image File", "Data File", "BIN File", "MARKER File":
		return "data"
	default:
		return ""
	}
}
