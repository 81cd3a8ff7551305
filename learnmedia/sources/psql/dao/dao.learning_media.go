package dao

import (
	"context"

	"learnmedia/learnmedia/sources/psql/models"

	"gorm.io/gorm"
)

type LearningMediaDAO struct {
	DB *gorm.DB
}

func NewLearningMediaDAO(db *gorm.DB) *LearningMediaDAO {
	return &LearningMediaDAO{DB: db}
}

func (dao *LearningMediaDAO) CreateLearningMedia(ctx context.Context, videoLink, videoTitle, videoDesc, thumbnailLink string) (*models.LearningMedia, error) {
	media := models.LearningMedia{
		VideoLink:     videoLink,
		VideoTitle:    videoTitle,
		VideoDesc:     videoDesc,
		ThumbnailLink: thumbnailLink,
	}
	err := dao.DB.WithContext(ctx).Create(&media).Error
	if err != nil {
		return nil, err
	}
	return &media, nil
}

func (dao *LearningMediaDAO) GetLearningMediaByID(ctx context.Context, id int) (*models.LearningMedia, error) {
	var media models.LearningMedia
	err := dao.DB.WithContext(ctx).First(&media, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &media, nil
}

func (dao *LearningMediaDAO) GetAllLearningMedia(ctx context.Context) ([]models.LearningMedia, error) {
	var media []models.LearningMedia
	err := dao.DB.WithContext(ctx).Find(&media).Error
	if err != nil {
		return nil, err
	}
	return media, nil
}

func (dao *LearningMediaDAO) DeleteLearningMedia(ctx context.Context, id int) (int64, error) {
	res := dao.DB.WithContext(ctx).Delete(&models.LearningMedia{}, id)
	return res.RowsAffected, res.Error
}
