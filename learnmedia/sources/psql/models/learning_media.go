package models

type LearningMedia struct {
	ID            int    `json:"id" gorm:"primaryKey;autoIncrement"`
	VideoLink     string `json:"video_link" gorm:"type:varchar(512);not null"`
	VideoTitle    string `json:"video_title" gorm:"type:varchar(255);not null"`
	VideoDesc     string `json:"video_desc" gorm:"type:text"`
	ThumbnailLink string `json:"thumbnail_link" gorm:"type:varchar(512)"`
}

func (LearningMedia) TableName() string {
	return "learning_media"
}
