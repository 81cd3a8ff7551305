package controllers

import (
	"context"
	"errors"
	"fmt"

	"learnmedia/learnmedia/config"
	"learnmedia/learnmedia/sources/psql/models"
	"learnmedia/learnmedia/sources/storage"
	"learnmedia/learnmedia/utils/password"
	"learnmedia/learnmedia/utils/tokens"

	"gorm.io/gorm"
)

type AuthController struct {
	users    UserStore
	uploader ObjectUploader
	cfg      config.Config
}

func NewAuthController(users UserStore, uploader ObjectUploader, cfg config.Config) *AuthController {
	return &AuthController{
		users:    users,
		uploader: uploader,
		cfg:      cfg,
	}
}

// Register hashes the password, uploads the optional profile picture, and
// inserts the user row. Duplicate username or email surfaces as ErrDuplicate
// via the store-level unique constraint.
func (c *AuthController) Register(ctx context.Context, username, email, plain string, picture *Upload) error {
	if username == "" || email == "" || plain == "" {
		return ErrMissingFields
	}
	hash, err := password.Hash(plain)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	var pictureURL *string
	if picture != nil {
		url, err := c.uploader.Upload(ctx, storage.SafeObjectKey(picture.Filename), picture.ContentType, picture.Data)
		if err != nil {
			return fmt.Errorf("upload profile picture: %w", err)
		}
		pictureURL = &url
	}
	if _, err := c.users.CreateUser(ctx, username, email, hash, pictureURL); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Login resolves the identity by username or email, checks the password and
// issues a session token. A wrong password and an unknown identity are
// indistinguishable to the caller.
func (c *AuthController) Login(ctx context.Context, username, email, plain string) (string, error) {
	var (
		user *models.User
		err  error
	)
	switch {
	case username != "":
		user, err = c.users.GetUserByUsername(ctx, username)
	case email != "":
		user, err = c.users.GetUserByEmail(ctx, email)
	default:
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if user == nil || !password.Verify(plain, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	return tokens.Issue(user.ID, c.cfg.JWTSecret)
}
