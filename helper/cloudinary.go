package helper

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Cloudinary init failed: %v", err)
	}
	return cld
}

// UploadBrochure stores an event brochure and returns its public URL.
func UploadBrochure(ctx context.Context, file *multipart.FileHeader) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("cannot open brochure file: %v", err)
	}
	defer f.Close()

	cld := InitCloudinary()
	result, err := cld.Upload.Upload(ctx, f, uploader.UploadParams{
		Folder:       "events/brochures",
		PublicID:     fmt.Sprintf("brochure_%s", uuid.NewString()),
		ResourceType: "raw",
	})
	if err != nil {
		return "", fmt.Errorf("cannot upload brochure: %v", err)
	}
	return result.SecureURL, nil
}
