package storage

import "context"

// Storage persists user-supplied binary assets, avatar renditions and
// campaign images. Objects are public once uploaded.
type Storage interface {
	Upload(context.Context, *UploadObject) (*UploadResponse, error)
	BulkUpload(context.Context, []*UploadObject) ([]*UploadResponse, error)
}

type UploadObject struct {
	Bucket   string
	Prefix   string
	FileName string
	Mime     string
	Data     []byte
}

// UploadResponse carries the public URL and the bucket key the object ended
// up under. The key is randomized, two uploads of the same file never collide.
type UploadResponse struct {
	Url      string
	FileName string
}
