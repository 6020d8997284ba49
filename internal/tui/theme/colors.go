package theme

// Terminal-compatible color constants using ANSI standard colors
// These colors work consistently across different terminal themes
const (
	// Primary colors (ANSI standard)
	ColorWhite        = "#FFFFFF" // ANSI 15 - primary text
	ColorBrightBlack  = "#808080" // ANSI 8 - secondary text
	ColorBrightBlue   = "#5C7CFA" // ANSI 12 - primary accent
	ColorBrightCyan   = "#66D9E8" // ANSI 14 - secondary accent
	ColorBrightGreen  = "#51CF66" // ANSI 10 - success
	ColorBrightYellow = "#FFD43B" // ANSI 11 - warning
	ColorBrightRed    = "#FF6B6B" // ANSI 9 - error

	// Row highlight
	ColorSelectedBackground = "#6464E4"
	ColorCursorBackground   = "#2B2B3A"

	// File type colors (using ANSI palette)
	ColorFileFolder   = "#FFD43B" // Yellow
	ColorFileImage    = "#74C0FC" // Light blue
	ColorFileDocument = "#51CF66" // Green
	ColorFileVideo    = "#FF8787" // Light red
	ColorFileAudio    = "#DA77F2" // Purple
	ColorFileText     = "#66D9E8" // Cyan
	ColorFileBinary   = "#B197FC" // Light purple
	ColorFileData     = "#FCC419" // Amber
)

// GetFileColor returns the color for a given file category
func GetFileColor(category string) string {
	switch category {
	case "folder":
		return ColorFileFolder
	case "image":
		return ColorFileImage
	case "document":
		return ColorFileDocument
	case "video":
		return ColorFileVideo
	case "audio":
		return ColorFileAudio
	case "text":
		return ColorFileText
	case "binary":
		return ColorFileBinary
	case "data":
		return ColorFileData
	default:
		return ColorWhite
	}
}

// Message types, mirrored by messaging.MessageType
const (
	MessageInfo = iota
	MessageSuccess
	MessageWarning
	MessageError
)

// GetMessageColor returns the color for a given message type
func GetMessageColor(messageType int) string {
	switch messageType {
	case MessageError:
		return ColorBrightRed
	case MessageSuccess:
		return ColorBrightGreen
	case MessageWarning:
		return ColorBrightYellow
	default: // MessageInfo
		return ColorBrightCyan
	}
}

// GetMessageIcon returns the icon for a given message type
func GetMessageIcon(messageType int) string {
	switch messageType {
	case MessageError:
		return "❌"
	case MessageSuccess:
		return "✅"
	case MessageWarning:
		return "⚠️"
	default: // MessageInfo
		return "ℹ️"
	}
}
