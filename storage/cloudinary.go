// Package storage adapts the hosted blob store for post images.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/pkg/errors"
)

// Uploader stores an image and returns a fetchable URL.
type Uploader interface {
	UploadImage(ctx context.Context, file io.Reader, filename string) (string, error)
}

type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cloudinaryURL string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, errors.Wrap(err, "cloudinary configuration")
	}
	return &CloudinaryUploader{cld: cld}, nil
}

// UploadImage stores the file under "posts/{epoch-millis}_{filename}" and
// returns its secure URL.
func (u *CloudinaryUploader) UploadImage(ctx context.Context, file io.Reader, filename string) (string, error) {
	result, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         "posts",
		PublicID:       fmt.Sprintf("%d_%s", time.Now().UnixMilli(), filename),
		Transformation: "c_limit,w_1200,q_auto",
	})
	if err != nil {
		return "", errors.Wrap(err, "upload image")
	}
	return result.SecureURL, nil
}
