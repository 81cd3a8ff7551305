package routes

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"sort"
	"testing"

	"learnmedia/learnmedia/config"
	"learnmedia/learnmedia/controllers"
	"learnmedia/learnmedia/sources/psql/models"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

const testSecret = "routes-test-secret"

type fakeUserStore struct {
	users  map[int]*models.User
	nextID int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int]*models.User{}, nextID: 1}
}

func (s *fakeUserStore) GetUserByID(_ context.Context, id int) (*models.User, error) {
	if u, ok := s.users[id]; ok {
		copy := *u
		return &copy, nil
	}
	return nil, nil
}

func (s *fakeUserStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			copy := *u
			return &copy, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			copy := *u
			return &copy, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) CreateUser(_ context.Context, username, email, passwordHash string, pictureURL *string) (*models.User, error) {
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
	u, ok := s.users[id]
	if !ok {
		return 0, nil
	}
	u.ProfilePictureURL = &url
	return 1, nil
}

func (s *fakeUserStore) DeleteUser(_ context.Context, id int) (int64, error) {
	if _, ok := s.users[id]; !ok {
		return 0, nil
	}
	delete(s.users, id)
	return 1, nil
}

func (s *fakeUserStore) GetAllUsers(_ context.Context) ([]models.User, error) {
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
}

func newFakeMediaStore() *fakeMediaStore {
	return &fakeMediaStore{media: map[int]*models.LearningMedia{}, nextID: 1}
}

func (s *fakeMediaStore) CreateLearningMedia(_ context.Context, videoLink, videoTitle, videoDesc, thumbnailLink string) (*models.LearningMedia, error) {
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
	if m, ok := s.media[id]; ok {
		copy := *m
		return &copy, nil
	}
	return nil, nil
}

func (s *fakeMediaStore) GetAllLearningMedia(_ context.Context) ([]models.LearningMedia, error) {
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
	if _, ok := s.media[id]; !ok {
		return 0, nil
	}
	delete(s.media, id)
	return 1, nil
}

type fakeUploader struct {
	uploads map[string][]byte
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{uploads: map[string][]byte{}}
}

func (u *fakeUploader) Upload(_ context.Context, key, contentType string, data []byte) (string, error) {
	u.uploads[key] = data
	return fmt.Sprintf("https://storage.test/media/%s", key), nil
}

func newTestRouter() (chi.Router, *fakeUserStore, *fakeMediaStore, *fakeUploader) {
	cfg := config.Config{JWTSecret: testSecret}
	users := newFakeUserStore()
	media := newFakeMediaStore()
	uploader := newFakeUploader()

	authCtrl := controllers.NewAuthController(users, uploader, cfg)
	userCtrl := controllers.NewUserController(users, uploader)
	mediaCtrl := controllers.NewMediaController(media)
	pictureCtrl := controllers.NewPictureController(users, uploader)

	r := chi.NewRouter()
	r.Mount("/api/auth", AuthRoutes(authCtrl, userCtrl, mediaCtrl, cfg))
	r.Mount("/api/picture", PictureRoutes(pictureCtrl, cfg))
	return r, users, media, uploader
}

// multipartBody builds a multipart form with the given text fields and an
// optional file part.
func multipartBody(t *testing.T, fields map[string]string, fileField, filename string, fileData []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("writing form field %q: %v", k, err)
		}
	}
	if fileField != "" {
		fw, err := w.CreateFormFile(fileField, filename)
		if err != nil {
			t.Fatalf("creating form file: %v", err)
		}
		if _, err := fw.Write(fileData); err != nil {
			t.Fatalf("writing form file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}
