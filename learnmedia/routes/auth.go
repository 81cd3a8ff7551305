package routes

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"learnmedia/learnmedia/config"
	"learnmedia/learnmedia/controllers"
	"learnmedia/learnmedia/middlewares"
	"learnmedia/learnmedia/utils/logging"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Upper bound on the in-memory part of a multipart form.
const maxUploadMemory = 32 << 20

// handleJSON adapts a (payload, status, error) handler to http.HandlerFunc.
func handleJSON(handler func(r *http.Request) (any, int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, status, err := handler(r)
		if err != nil {
			writeError(w, r, status, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(res)
	}
}

// handleText is the plain-text variant for the status-message endpoints.
func handleText(handler func(r *http.Request) (string, int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msg, status, err := handler(r)
		if err != nil {
			writeError(w, r, status, err)
			return
		}
		w.WriteHeader(status)
		w.Write([]byte(msg))
	}
}

// writeError hides internals behind a generic body for server errors and
// records them; client errors echo the reason.
func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		logging.ErrorLogger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		http.Error(w, "server error", status)
		return
	}
	http.Error(w, err.Error(), status)
}

func statusFromErr(err error) int {
	switch {
	case errors.Is(err, controllers.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, controllers.ErrDuplicate),
		errors.Is(err, controllers.ErrInvalidCredentials),
		errors.Is(err, controllers.ErrMissingFile),
		errors.Is(err, controllers.ErrMissingFields):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// formUpload buffers the named multipart file field; a missing field is not
// an error, it just yields nil.
func formUpload(r *http.Request, field string) (*controllers.Upload, error) {
	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &controllers.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func urlParamID(r *http.Request, name string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, name))
}

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type addMediaRequest struct {
	VideoLink     string `json:"video_link"`
	VideoTitle    string `json:"video_title"`
	VideoDesc     string `json:"video_desc"`
	ThumbnailLink string `json:"thumbnail_link"`
}

func AuthRoutes(authCtrl *controllers.AuthController, userCtrl *controllers.UserController, mediaCtrl *controllers.MediaController, cfg config.Config) chi.Router {
	r := chi.NewRouter()

	r.Post("/register", handleText(func(r *http.Request) (string, int, error) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			return "", http.StatusBadRequest, err
		}
		picture, err := formUpload(r, "profile_picture")
		if err != nil {
			return "", http.StatusBadRequest, err
		}
		err = authCtrl.Register(r.Context(), r.FormValue("username"), r.FormValue("email"), r.FormValue("password"), picture)
		if err != nil {
			return "", statusFromErr(err), err
		}
		return "User registered", http.StatusCreated, nil
	}))

	r.Post("/login", handleJSON(func(r *http.Request) (any, int, error) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, http.StatusBadRequest, err
		}
		token, err := authCtrl.Login(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			return nil, statusFromErr(err), err
		}
		return map[string]string{"token": token}, http.StatusOK, nil
	}))

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		gr.Get("/user", handleJSON(func(r *http.Request) (any, int, error) {
			id, ok := middlewares.UserIDFromContext(r.Context())
			if !ok {
				return nil, http.StatusUnauthorized, errors.New("unauthorized")
			}
			user, err := userCtrl.GetUser(r.Context(), id)
			if err != nil {
				return nil, statusFromErr(err), err
			}
			return user, http.StatusOK, nil
		}))

		gr.Get("/users", handleJSON(func(r *http.Request) (any, int, error) {
			users, err := userCtrl.GetAllUsers(r.Context())
			if err != nil {
				return nil, statusFromErr(err), err
			}
			return users, http.StatusOK, nil
		}))

		gr.Put("/edit/{id}", handleText(func(r *http.Request) (string, int, error) {
			id, err := urlParamID(r, "id")
			if err != nil {
				return "", http.StatusBadRequest, err
			}
			if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
				return "", http.StatusBadRequest, err
			}
			picture, err := formUpload(r, "profile_picture")
			if err != nil {
				return "", http.StatusBadRequest, err
			}
			var pictureURL *string
			if v := r.FormValue("profile_picture_url"); v != "" {
				pictureURL = &v
			}
			err = userCtrl.UpdateUser(r.Context(), id, r.FormValue("username"), r.FormValue("email"), r.FormValue("password"), picture, pictureURL)
			if err != nil {
				return "", statusFromErr(err), err
			}
			return "User updated successfully", http.StatusOK, nil
		}))

		gr.Delete("/delete/{id}", handleText(func(r *http.Request) (string, int, error) {
			id, err := urlParamID(r, "id")
			if err != nil {
				return "", http.StatusBadRequest, err
			}
			if err := userCtrl.DeleteUser(r.Context(), id); err != nil {
				return "", statusFromErr(err), err
			}
			return "User deleted successfully", http.StatusOK, nil
		}))

		gr.Post("/learning_media", handleText(func(r *http.Request) (string, int, error) {
			var req addMediaRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				return "", http.StatusBadRequest, err
			}
			_, err := mediaCtrl.AddMedia(r.Context(), req.VideoLink, req.VideoTitle, req.VideoDesc, req.ThumbnailLink)
			if err != nil {
				return "", statusFromErr(err), err
			}
			return "Learning media added successfully", http.StatusCreated, nil
		}))

		gr.Get("/learning_media", handleJSON(func(r *http.Request) (any, int, error) {
			media, err := mediaCtrl.GetAllMedia(r.Context())
			if err != nil {
				return nil, statusFromErr(err), err
			}
			return media, http.StatusOK, nil
		}))

		gr.Get("/learning_media/{id}", handleJSON(func(r *http.Request) (any, int, error) {
			id, err := urlParamID(r, "id")
			if err != nil {
				return nil, http.StatusBadRequest, err
			}
			media, err := mediaCtrl.GetMedia(r.Context(), id)
			if err != nil {
				return nil, statusFromErr(err), err
			}
			return media, http.StatusOK, nil
		}))

		gr.Delete("/learning_media/{id}", handleText(func(r *http.Request) (string, int, error) {
			id, err := urlParamID(r, "id")
			if err != nil {
				return "", http.StatusBadRequest, err
			}
			if err := mediaCtrl.DeleteMedia(r.Context(), id); err != nil {
				return "", statusFromErr(err), err
			}
			return "Learning media deleted successfully", http.StatusOK, nil
		}))
	})

	return r
}
