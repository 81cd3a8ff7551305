package controllers

import (
	"context"

	"learnmedia/learnmedia/sources/psql/models"
)

// UserStore is the slice of the user DAO the controllers need. Satisfied by
// *dao.UserDAO; tests substitute in-memory fakes.
type UserStore interface {
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, username, email, passwordHash string, pictureURL *string) (*models.User, error)
	UpdateUser(ctx context.Context, id int, username, email string, passwordHash, pictureURL *string) (int64, error)
	SetProfilePictureURL(ctx context.Context, id int, url string) (int64, error)
	DeleteUser(ctx context.Context, id int) (int64, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// MediaStore is satisfied by *dao.LearningMediaDAO.
type MediaStore interface {
	CreateLearningMedia(ctx context.Context, videoLink, videoTitle, videoDesc, thumbnailLink string) (*models.LearningMedia, error)
	GetLearningMediaByID(ctx context.Context, id int) (*models.LearningMedia, error)
	GetAllLearningMedia(ctx context.Context) ([]models.LearningMedia, error)
	DeleteLearningMedia(ctx context.Context, id int) (int64, error)
}

// ObjectUploader is satisfied by *storage.ObjectStorage.
type ObjectUploader interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// Upload is an incoming file already buffered in memory by the route layer.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}
