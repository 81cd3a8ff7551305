package models

type User struct {
	ID                int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Username          string  `json:"username" gorm:"type:varchar(255);uniqueIndex;not null"`
	Email             string  `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash      string  `json:"-" gorm:"column:password;type:varchar(255);not null"`
	ProfilePictureURL *string `json:"profile_picture_url" gorm:"type:varchar(512)"`
}
