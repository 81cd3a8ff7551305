package controllers

import (
	"context"
	"fmt"

	"learnmedia/learnmedia/sources/storage"
)

type PictureController struct {
	users    UserStore
	uploader ObjectUploader
}

func NewPictureController(users UserStore, uploader ObjectUploader) *PictureController {
	return &PictureController{users: users, uploader: uploader}
}

// UploadProfilePicture stores the file and persists its public URL onto the
// requesting user's row. If the row update fails the object stays in the
// bucket; reconciliation is manual.
func (c *PictureController) UploadProfilePicture(ctx context.Context, userID int, picture *Upload) (string, error) {
	if picture == nil {
		return "", ErrMissingFile
	}
	url, err := c.uploader.Upload(ctx, storage.SafeObjectKey(picture.Filename), picture.ContentType, picture.Data)
	if err != nil {
		return "", fmt.Errorf("upload profile picture: %w", err)
	}
	if _, err := c.users.SetProfilePictureURL(ctx, userID, url); err != nil {
		return "", fmt.Errorf("persist profile picture url: %w", err)
	}
	return url, nil
}
