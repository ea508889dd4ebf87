package usecase

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"tubeline-api/internal/model"
	"tubeline-api/internal/video"
	"tubeline-api/internal/video/repository"
)

const (
	// maxThumbnailSize bounds uploads at 5 MiB.
	maxThumbnailSize = 5 << 20
	// thumbnailURLExpiry is the lifetime of presigned download links.
	thumbnailURLExpiry = 15 * time.Minute
)

var allowedThumbnailTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// UploadThumbnail stores the thumbnail object and records its key on the
// video. The thumb maker assigned to the video may upload as well as admins.
func (uc *usecase) UploadThumbnail(ctx context.Context, sc model.Scope, ip video.UploadThumbnailInput) (video.VideoOutput, error) {
	if ip.Size <= 0 || ip.Size > maxThumbnailSize || !allowedThumbnailTypes[ip.ContentType] {
		return video.VideoOutput{}, video.ErrInvalidThumbnail
	}

	vid, err := uc.repo.Detail(ctx, sc, ip.VideoID)
	if err != nil {
		if err == repository.ErrNotFound {
			return video.VideoOutput{}, video.ErrVideoNotFound
		}
		uc.l.Errorf(ctx, "internal.video.usecase.UploadThumbnail.Detail: %v", err)
		return video.VideoOutput{}, err
	}

	if !sc.IsAdmin() && !vid.IsStageAssignee(model.StageThumbnail, sc.UserID) {
		return video.VideoOutput{}, video.ErrInsufficientPermission
	}

	ext := strings.ToLower(path.Ext(ip.FileName))
	key := fmt.Sprintf("%s/%s/thumbnail%s", sc.CompanyID, vid.ID, ext)

	if _, err := uc.storage.Upload(ctx, key, ip.Reader, ip.Size, ip.ContentType); err != nil {
		uc.l.Errorf(ctx, "internal.video.usecase.UploadThumbnail.Upload: %v", err)
		return video.VideoOutput{}, err
	}

	vid.ThumbnailKey = &key
	updated, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{Video: vid})
	if err != nil {
		uc.l.Errorf(ctx, "internal.video.usecase.UploadThumbnail.Update: %v", err)
		return video.VideoOutput{}, err
	}

	return video.VideoOutput{Video: uc.enrichVideo(ctx, sc, updated)}, nil
}

// ThumbnailURL returns a time-limited download link for the video's thumbnail.
func (uc *usecase) ThumbnailURL(ctx context.Context, sc model.Scope, id string) (string, error) {
	out, err := uc.Detail(ctx, sc, id)
	if err != nil {
		return "", err
	}
	if out.Video.ThumbnailKey == nil || *out.Video.ThumbnailKey == "" {
		return "", video.ErrVideoNotFound
	}

	url, err := uc.storage.PresignedGetURL(ctx, *out.Video.ThumbnailKey, thumbnailURLExpiry)
	if err != nil {
		uc.l.Errorf(ctx, "internal.video.usecase.ThumbnailURL.PresignedGetURL: %v", err)
		return "", err
	}

	return url, nil
}
