package supabase

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	storage "github.com/supabase-community/storage-go"
)

type StorageClient struct {
	client  *storage.Client
	key     string
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, serviceRoleKey, bucket string) (*StorageClient, error) {
	baseURL := strings.TrimSuffix(supabaseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("supabase url is required")
	}
	if bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}
	client := storage.NewClient(baseURL+"/storage/v1", serviceRoleKey, nil)

	return &StorageClient{
		client:  client,
		key:     serviceRoleKey,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// Upload stores data at storagePath and returns its public URL.
func (s *StorageClient) Upload(storagePath, contentType string, data []byte) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	upsert := false
	// storage-go keeps file options on the client's shared headers, so each
	// upload gets its own client.
	uploader := storage.NewClient(s.baseURL+"/storage/v1", s.key, nil)
	_, err := uploader.UploadFile(s.bucket, storagePath, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return s.PublicURL(storagePath), nil
}

// PublicURL escapes each path segment so PathFromURL returns the same key.
func (s *StorageClient) PublicURL(storagePath string) string {
	segments := strings.Split(storagePath, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		s.baseURL, s.bucket, strings.Join(segments, "/"))
}

func (s *StorageClient) Remove(storagePath string) error {
	if _, err := s.client.RemoveFile(s.bucket, []string{storagePath}); err != nil {
		return fmt.Errorf("failed to remove file %s: %w", storagePath, err)
	}
	return nil
}

// PathFromURL reverses PublicURL. It reports false when the URL does not
// point into this bucket's public object space.
func (s *StorageClient) PathFromURL(publicURL string) (string, bool) {
	marker := "/storage/v1/object/public/" + s.bucket + "/"
	idx := strings.Index(publicURL, marker)
	if idx < 0 {
		return "", false
	}

	raw := publicURL[idx+len(marker):]
	if i := strings.IndexAny(raw, "?#"); i >= 0 {
		raw = raw[:i]
	}
	storagePath, err := url.PathUnescape(raw)
	if err != nil || storagePath == "" || strings.Contains(storagePath, "..") {
		return "", false
	}

	return storagePath, true
}
