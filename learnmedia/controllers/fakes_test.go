package controllers

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"learnmedia/learnmedia/sources/psql/models"

	"gorm.io/gorm"
)

// fakeUserStore backs UserStore with a map, mimicking the DB's unique
// constraints by returning gorm.ErrDuplicatedKey.
type fakeUserStore struct {
	users  map[int]*models.User
	nextID int
	err    error // when set, every call fails with it
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int]*models.User{}, nextID: 1}
}

func (s *fakeUserStore) GetUserByID(_ context.Context, id int) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if u, ok := s.users[id]; ok {
		copy := *u
		return &copy, nil
	}
	return nil, nil
}

func (s *fakeUserStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.Username == username {
			copy := *u
			return &copy, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.Email == email {
			copy := *u
			return &copy, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) CreateUser(_ context.Context, username, email, passwordHash string, pictureURL *string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.Username == username || u.Email == email {
			return nil, gorm.ErrDuplicatedKey
		}
	}
	user := &models.User{
		ID:                s.nextID,
		Username:          username,
		Email:             email,
		PasswordHash:      passwordHash,
		ProfilePictureURL: pictureURL,
	}
	s.users[user.ID] = user
	s.nextID++
	copy := *user
	return &copy, nil
}

func (s *fakeUserStore) UpdateUser(_ context.Context, id int, username, email string, passwordHash, pictureURL *string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	u, ok := s.users[id]
	if !ok {
		return 0, nil
	}
	for otherID, other := range s.users {
		if otherID != id && (other.Username == username || other.Email == email) {
			return 0, gorm.ErrDuplicatedKey
		}
	}
	u.Username = username
	u.Email = email
	u.ProfilePictureURL = pictureURL
	if passwordHash != nil {
		u.PasswordHash = *passwordHash
	}
	return 1, nil
}

func (s *fakeUserStore) SetProfilePictureURL(_ context.Context, id int, url string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	u, ok := s.users[id]
	if !ok {
		return 0, nil
	}
	u.ProfilePictureURL = &url
	return 1, nil
}

func (s *fakeUserStore) DeleteUser(_ context.Context, id int) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	if _, ok := s.users[id]; !ok {
		return 0, nil
	}
	delete(s.users, id)
	return 1, nil
}

func (s *fakeUserStore) GetAllUsers(_ context.Context) ([]models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	ids := make([]int, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]models.User, 0, len(ids))
	for _, id := range ids {
		out = append(out, *s.users[id])
	}
	return out, nil
}

type fakeMediaStore struct {
	media  map[int]*models.LearningMedia
	nextID int
	err    error
}

func newFakeMediaStore() *fakeMediaStore {
	return &fakeMediaStore{media: map[int]*models.LearningMedia{}, nextID: 1}
}

func (s *fakeMediaStore) CreateLearningMedia(_ context.Context, videoLink, videoTitle, videoDesc, thumbnailLink string) (*models.LearningMedia, error) {
	if s.err != nil {
		return nil, s.err
	}
	m := &models.LearningMedia{
		ID:            s.nextID,
		VideoLink:     videoLink,
		VideoTitle:    videoTitle,
		VideoDesc:     videoDesc,
		ThumbnailLink: thumbnailLink,
	}
	s.media[m.ID] = m
	s.nextID++
	copy := *m
	return &copy, nil
}

func (s *fakeMediaStore) GetLearningMediaByID(_ context.Context, id int) (*models.LearningMedia, error) {
	if s.err != nil {
		return nil, s.err
	}
	if m, ok := s.media[id]; ok {
		copy := *m
		return &copy, nil
	}
	return nil, nil
}

func (s *fakeMediaStore) GetAllLearningMedia(_ context.Context) ([]models.LearningMedia, error) {
	if s.err != nil {
		return nil, s.err
	}
	ids := make([]int, 0, len(s.media))
	for id := range s.media {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]models.LearningMedia, 0, len(ids))
	for _, id := range ids {
		out = append(out, *s.media[id])
	}
	return out, nil
}

func (s *fakeMediaStore) DeleteLearningMedia(_ context.Context, id int) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	if _, ok := s.media[id]; !ok {
		return 0, nil
	}
	delete(s.media, id)
	return 1, nil
}

// fakeUploader records uploads and returns deterministic URLs.
type fakeUploader struct {
	uploads map[string][]byte
	err     error
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{uploads: map[string][]byte{}}
}

func (u *fakeUploader) Upload(_ context.Context, key, contentType string, data []byte) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	u.uploads[key] = data
	return fmt.Sprintf("https://storage.test/media/%s", key), nil
}

var errStoreDown = errors.New("store unavailable")
