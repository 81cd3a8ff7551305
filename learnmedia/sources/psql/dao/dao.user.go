package dao

import (
	"context"

	"learnmedia/learnmedia/sources/psql/models"

	"gorm.io/gorm"
)

type UserDAO struct {
	DB *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{DB: db}
}

func (dao *UserDAO) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	err := dao.DB.WithContext(ctx).First(&user, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (dao *UserDAO) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := dao.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (dao *UserDAO) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := dao.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (dao *UserDAO) CreateUser(ctx context.Context, username, email, passwordHash string, pictureURL *string) (*models.User, error) {
	user := models.User{
		Username:          username,
		Email:             email,
		PasswordHash:      passwordHash,
		ProfilePictureURL: pictureURL,
	}
	err := dao.DB.WithContext(ctx).Create(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser replaces username, email and profile_picture_url on the row,
// and the password hash when one is supplied. Returns the number of rows
// matched so callers can distinguish a missing user.
func (dao *UserDAO) UpdateUser(ctx context.Context, id int, username, email string, passwordHash, pictureURL *string) (int64, error) {
	updates := map[string]any{
		"username":            username,
		"email":               email,
		"profile_picture_url": pictureURL,
	}
	if passwordHash != nil {
		updates["password"] = *passwordHash
	}
	res := dao.DB.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (dao *UserDAO) SetProfilePictureURL(ctx context.Context, id int, url string) (int64, error) {
	res := dao.DB.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("profile_picture_url", url)
	return res.RowsAffected, res.Error
}

func (dao *UserDAO) DeleteUser(ctx context.Context, id int) (int64, error) {
	res := dao.DB.WithContext(ctx).Delete(&models.User{}, id)
	return res.RowsAffected, res.Error
}

func (dao *UserDAO) GetAllUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := dao.DB.WithContext(ctx).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
