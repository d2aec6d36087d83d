package images

import (
	"context"
	"mime"
)

// Store persists raw image bytes under a path stem and returns the final
// stored path. The file extension is inferred from the MIME type; serving
// the file back is somebody else's job.
type Store interface {
	Save(ctx context.Context, pathStem, mimeType string, data []byte) (string, error)
}

// extensionForMIME guesses a file extension for a MIME type.
// Note: JPEG may come out as .jpe.
func extensionForMIME(mimeType string) string {
	exts, err := mime.ExtensionsByType(mimeType)
	if err != nil || len(exts) == 0 {
		return ".unknown"
	}
	return exts[0]
}
