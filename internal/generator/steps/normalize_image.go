package steps

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const defaultImageMediaType = "image/jpeg"

// NormalizeImage turns raw base64 or a data URL into a base64 data URL.
type NormalizeImage struct {
	imageKey    string
	imageURLKey string
}

func NewNormalizeImage(imageKey, imageURLKey string) (NormalizeImage, error) {
	var s NormalizeImage

	if imageKey == "" {
		return s, fmt.Errorf("imageKey is empty")
	}
	if imageURLKey == "" {
		return s, fmt.Errorf("imageURLKey is empty")
	}

	return NormalizeImage{
		imageKey:    imageKey,
		imageURLKey: imageURLKey,
	}, nil
}

func (s NormalizeImage) Name() string {
	return "normalize_image"
}

func (s NormalizeImage) Run(_ context.Context, dataCtx DataContext) error {
	image, ok := dataCtx[s.imageKey]
	if !ok {
		return fmt.Errorf("key[%s] not found in data context", s.imageKey)
	}

	imageURL, err := toDataURL(image)
	if err != nil {
		return fmt.Errorf("toDataURL: %w", err)
	}

	dataCtx[s.imageURLKey] = imageURL

	return nil
}

func toDataURL(image string) (string, error) {
	image = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, image)

	mediaType := defaultImageMediaType

	if rest, ok := strings.CutPrefix(image, "data:"); ok {
		header, payload, found := strings.Cut(rest, ";base64,")
		if !found {
			return "", errors.New("data URL is not base64")
		}
		if strings.HasPrefix(header, "image/") {
			mediaType = header
		}
		image = payload
	}

	if image == "" {
		return "", errors.New("image is empty")
	}

	if _, err := base64.StdEncoding.DecodeString(image); err != nil {
		return "", fmt.Errorf("base64.DecodeString: %w", err)
	}

	return "data:" + mediaType + ";base64," + image, nil
}
