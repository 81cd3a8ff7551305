package controllers

import (
	"context"
	"errors"
	"fmt"

	"learnmedia/learnmedia/sources/psql/models"
	"learnmedia/learnmedia/sources/storage"
	"learnmedia/learnmedia/utils/password"

	"gorm.io/gorm"
)

type UserController struct {
	users    UserStore
	uploader ObjectUploader
}

func NewUserController(users UserStore, uploader ObjectUploader) *UserController {
	return &UserController{users: users, uploader: uploader}
}

func (c *UserController) GetUser(ctx context.Context, id int) (*models.User, error) {
	user, err := c.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (c *UserController) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := c.users.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// UpdateUser replaces username and email, re-hashes the password only when a
// new one is supplied, and resolves the picture: an uploaded file wins over a
// client-sent URL, absence of both clears the column.
func (c *UserController) UpdateUser(ctx context.Context, id int, username, email, plain string, picture *Upload, pictureURL *string) error {
	var hash *string
	if plain != "" {
		h, err := password.Hash(plain)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		hash = &h
	}
	if picture != nil {
		url, err := c.uploader.Upload(ctx, storage.SafeObjectKey(picture.Filename), picture.ContentType, picture.Data)
		if err != nil {
			return fmt.Errorf("upload profile picture: %w", err)
		}
		pictureURL = &url
	}
	rows, err := c.users.UpdateUser(ctx, id, username, email, hash, pictureURL)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *UserController) DeleteUser(ctx context.Context, id int) error {
	rows, err := c.users.DeleteUser(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
