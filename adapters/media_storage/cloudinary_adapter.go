package media_storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/khoahotran/portfolio-view/internal/application/service"
	"github.com/khoahotran/portfolio-view/internal/config"
	"github.com/khoahotran/portfolio-view/pkg/logger"
	"go.uber.org/zap"
)

// avatarTransformation crops around the face at twice the rendered size.
const avatarTransformation = "c_thumb,g_face,h_256,w_256/f_auto,q_auto"

type cloudinaryAvatarResolver struct {
	cld    *cloudinary.Cloudinary
	logger logger.Logger
}

func newCloudinary(cfg config.Config) (*cloudinary.Cloudinary, error) {

	if cfg.Cloudinary.CloudName == "" {
		return nil, fmt.Errorf("cloudinary cloud_name has not config")
	}

	cld, err := cloudinary.NewFromParams(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.ApiKey,
		cfg.Cloudinary.ApiSecret,
	)
	if err != nil {
		return nil, fmt.Errorf("cannot init cloudinary: %w", err)
	}
	return cld, nil
}

// NewCloudinaryAvatarResolver serves profile images through Cloudinary's
// fetch delivery so arbitrary remote avatars come back cropped and cached.
func NewCloudinaryAvatarResolver(cfg config.Config, log logger.Logger) (service.AvatarResolver, error) {
	cld, err := newCloudinary(cfg)
	if err != nil {
		return nil, err
	}

	log.Info("Initialize Cloudinary avatar delivery successfully.")
	return &cloudinaryAvatarResolver{cld: cld, logger: log}, nil
}

func (a *cloudinaryAvatarResolver) Resolve(raw string) string {
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return raw
	}

	img, err := a.cld.Image(raw)
	if err != nil {
		a.logger.Warn("Failed to build Cloudinary asset, use original avatar", zap.String("image_url", raw), zap.Error(err))
		return raw
	}
	img.DeliveryType = "fetch"
	img.Transformation = avatarTransformation

	url, err := img.String()
	if err != nil {
		a.logger.Warn("Failed to build Cloudinary URL, use original avatar", zap.String("image_url", raw), zap.Error(err))
		return raw
	}
	return url
}

type cloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryUploader stores backups as raw Cloudinary assets.
func NewCloudinaryUploader(cfg config.Config, log logger.Logger) (service.Uploader, error) {
	cld, err := newCloudinary(cfg)
	if err != nil {
		return nil, err
	}

	log.Info("connect Cloudinary successfully.")
	return &cloudinaryUploader{cld: cld}, nil
}

func (a *cloudinaryUploader) Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error) {
	uploadParams := uploader.UploadParams{
		PublicID:     publicID,
		Folder:       folder,
		ResourceType: "raw",
	}
	result, err := a.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return "", fmt.Errorf("failed to upload cloudinary: %w", err)
	}
	return result.SecureURL, nil
}
