package libs

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

func newClient() (*cloudinary.Cloudinary, error) {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName != "" && apiKey != "" && apiSecret != "" {
		return cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	}

	cldURL := os.Getenv("CLOUDINARY_URL")
	if cldURL == "" {
		return nil, fmt.Errorf("cloudinary environment variables not set")
	}

	return cloudinary.NewFromURL(cldURL)
}

// Configured reports whether Cloudinary credentials are present. When
// they are not, pet images stay on local storage only.
func Configured() bool {
	return os.Getenv("CLOUDINARY_URL") != "" || os.Getenv("CLOUDINARY_CLOUD_NAME") != ""
}

// UploadPetImage pushes a locally saved image to Cloudinary and removes
// the local copy. Returns the hosted URL and the public ID used for
// later deletion.
func UploadPetImage(localPath string) (string, string, error) {
	if _, err := os.Stat(localPath); os.IsNotExist(err) {
		return "", "", fmt.Errorf("file not found: %s", localPath)
	}

	cld, err := newClient()
	if err != nil {
		return "", "", fmt.Errorf("cloudinary init failed: %v", err)
	}

	publicID := fmt.Sprintf("pet_%d", time.Now().UnixNano())
	resp, err := cld.Upload.Upload(context.Background(), localPath, uploader.UploadParams{
		PublicID: publicID,
		Folder:   "pets",
	})

	os.Remove(localPath)

	if err != nil {
		return "", "", err
	}
	if resp == nil || (resp.SecureURL == "" && resp.URL == "") {
		return "", "", fmt.Errorf("cloudinary returned an empty URL")
	}

	url := resp.SecureURL
	if url == "" {
		url = resp.URL
	}

	return url, resp.PublicID, nil
}

func DeletePetImage(publicID string) error {
	if publicID == "" {
		return nil
	}

	cld, err := newClient()
	if err != nil {
		return fmt.Errorf("cloudinary init failed: %v", err)
	}

	result, err := cld.Upload.Destroy(context.Background(), uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete from Cloudinary: %v", err)
	}

	if result.Result != "ok" {
		return fmt.Errorf("cloudinary deletion failed: %s", result.Result)
	}

	return nil
}
