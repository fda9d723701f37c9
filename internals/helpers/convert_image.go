package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const maxPhotoEdge = 1280

// CompressImageToWebP decodes an uploaded image, shrinks it so the longest
// edge is at most maxPhotoEdge and re-encodes as WebP.
func CompressImageToWebP(fileHeader *multipart.FileHeader) ([]byte, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded image: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("unsupported image format: %w", err)
	}

	b := img.Bounds()
	if b.Dx() > maxPhotoEdge || b.Dy() > maxPhotoEdge {
		img = imaging.Fit(img, maxPhotoEdge, maxPhotoEdge, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("webp encode failed: %w", err)
	}
	return buf.Bytes(), nil
}

// UploadImageToSupabase pushes a compressed photo to Supabase storage and
// returns the public URL. Bucket and credentials come from env.
func UploadImageToSupabase(folder string, fileHeader *multipart.FileHeader) (string, error) {
	data, err := CompressImageToWebP(fileHeader)
	if err != nil {
		return "", err
	}

	baseURL := strings.TrimRight(os.Getenv("SUPABASE_URL"), "/")
	bucket := os.Getenv("SUPABASE_BUCKET")
	serviceKey := os.Getenv("SUPABASE_SERVICE_KEY")
	if baseURL == "" || bucket == "" || serviceKey == "" {
		return "", fmt.Errorf("supabase storage env is not configured")
	}

	objectPath := fmt.Sprintf("%s/%s.webp", strings.Trim(folder, "/"), uuid.New().String())
	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", baseURL, bucket, objectPath)

	req, err := http.NewRequest(http.MethodPost, uploadURL, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+serviceKey)
	req.Header.Set("Content-Type", "image/webp")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("storage upload failed (%d): %s", resp.StatusCode, string(body))
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		baseURL, url.PathEscape(bucket), objectPath)
	return publicURL, nil
}
