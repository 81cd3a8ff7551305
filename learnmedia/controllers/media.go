package controllers

import (
	"context"
	"fmt"

	"learnmedia/learnmedia/sources/psql/models"
)

type MediaController struct {
	media MediaStore
}

func NewMediaController(media MediaStore) *MediaController {
	return &MediaController{media: media}
}

func (c *MediaController) AddMedia(ctx context.Context, videoLink, videoTitle, videoDesc, thumbnailLink string) (*models.LearningMedia, error) {
	media, err := c.media.CreateLearningMedia(ctx, videoLink, videoTitle, videoDesc, thumbnailLink)
	if err != nil {
		return nil, fmt.Errorf("create learning media: %w", err)
	}
	return media, nil
}

func (c *MediaController) GetMedia(ctx context.Context, id int) (*models.LearningMedia, error) {
	media, err := c.media.GetLearningMediaByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if media == nil {
		return nil, ErrNotFound
	}
	return media, nil
}

func (c *MediaController) GetAllMedia(ctx context.Context) ([]models.LearningMedia, error) {
	media, err := c.media.GetAllLearningMedia(ctx)
	if err != nil {
		return nil, err
	}
	if media == nil {
		media = []models.LearningMedia{}
	}
	return media, nil
}

func (c *MediaController) DeleteMedia(ctx context.Context, id int) error {
	rows, err := c.media.DeleteLearningMedia(ctx, id)
	if err != nil {
		return fmt.Errorf("delete learning media: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
