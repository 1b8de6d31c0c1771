package helpers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const (
	MaxUploadSize = 5 << 20

	CarsFolder     = "car-rental/cars"
	LicensesFolder = "car-rental/licenses"

	UploadsRoute = "/api/v1/uploads"
)

var (
	ImageTypes   = []string{"image/png", "image/jpeg", "image/jpg"}
	LicenseTypes = []string{"image/png", "image/jpeg", "image/jpg", "application/pdf"}
)

var (
	ErrFileTooLarge    = errors.New("file exceeds the 5MB limit")
	ErrUnsupportedType = errors.New("unsupported file type")
)

// Upload is a validated file held in memory.
type Upload struct {
	Filename  string
	Content   []byte
	MIME      string
	Extension string
}

// IsDocument reports whether the upload is not an image.
func (u *Upload) IsDocument() bool {
	return !strings.HasPrefix(u.MIME, "image/")
}

// ReadUpload loads fh and checks its size and sniffed content type.
func ReadUpload(fh *multipart.FileHeader, allowed []string) (*Upload, error) {
	if fh.Size > MaxUploadSize {
		return nil, ErrFileTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	return NewUpload(fh.Filename, data, allowed)
}

func NewUpload(filename string, data []byte, allowed []string) (*Upload, error) {
	if len(data) > MaxUploadSize {
		return nil, ErrFileTooLarge
	}
	mt := mimetype.Detect(data)
	if !mimetype.EqualsAny(mt.String(), allowed...) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, mt.String())
	}
	return &Upload{
		Filename:  filename,
		Content:   data,
		MIME:      mt.String(),
		Extension: mt.Extension(),
	}, nil
}

// ImageStore persists uploads and returns their public URL.
type ImageStore interface {
	Save(ctx context.Context, folder string, up *Upload) (string, error)
}

type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStore(cld *cloudinary.Cloudinary) *CloudinaryStore {
	return &CloudinaryStore{cld: cld}
}

func (s *CloudinaryStore) Save(ctx context.Context, folder string, up *Upload) (string, error) {
	resourceType := "image"
	if up.IsDocument() {
		resourceType = "raw"
	}
	res, err := s.cld.Upload.Upload(ctx, bytes.NewReader(up.Content), uploader.UploadParams{
		Folder:       folder,
		ResourceType: resourceType,
		Tags:         []string{"car-rental"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", up.Filename, err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("failed to upload %s: %s", up.Filename, res.Error.Message)
	}
	return res.SecureURL, nil
}

// DiskStore writes uploads under dir. Files are served from UploadsRoute.
type DiskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(dir, baseURL string) *DiskStore {
	return &DiskStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *DiskStore) Save(ctx context.Context, folder string, up *Upload) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	target := filepath.Join(s.dir, filepath.FromSlash(folder))
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}
	name := uuid.NewString() + up.Extension
	if err := os.WriteFile(filepath.Join(target, name), up.Content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	return s.baseURL + UploadsRoute + "/" + folder + "/" + name, nil
}
