package signature

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"strings"
)

const dataURIPrefix = "data:image/png;base64,"

// Encode decodes a base64 PNG data URI, re-encodes it through the PNG pipeline
// to normalize the format, and persists it through the store. It returns the
// stored reference path.
func Encode(dataURI string, store Store) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURI, dataURIPrefix))
	if err != nil {
		return "", fmt.Errorf("invalid base64 signature payload: %w", err)
	}

	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("invalid PNG signature payload: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to re-encode signature: %w", err)
	}

	return store.Put(buf.Bytes())
}
