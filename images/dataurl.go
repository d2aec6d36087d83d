package images

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// ImageData is a decoded data: URL payload.
type ImageData struct {
	MIME string
	Data []byte
}

// ParseDataURL decodes a base64 data: URL as sent by the admin frontend.
// A string that is not a data: URL (an already-stored path echoed back)
// returns nil with no error, meaning the stored image stays untouched.
func ParseDataURL(s string) (*ImageData, error) {
	if !strings.HasPrefix(s, "data:") {
		return nil, nil
	}

	semi := strings.Index(s, ";")
	comma := strings.Index(s, ",")
	if semi < 0 || comma < 0 || semi > comma {
		return nil, fmt.Errorf("malformed data URL")
	}

	mimeType := strings.ToLower(s[len("data:"):semi])
	data, err := base64.StdEncoding.DecodeString(s[comma+1:])
	if err != nil {
		return nil, fmt.Errorf("failed to decode image data: %w", err)
	}

	return &ImageData{MIME: mimeType, Data: data}, nil
}
