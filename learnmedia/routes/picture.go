package routes

import (
	"errors"
	"net/http"

	"learnmedia/learnmedia/config"
	"learnmedia/learnmedia/controllers"
	"learnmedia/learnmedia/middlewares"

	"github.com/go-chi/chi/v5"
)

func PictureRoutes(ctrl *controllers.PictureController, cfg config.Config) chi.Router {
	r := chi.NewRouter()

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		gr.Post("/upload-profile-picture", handleJSON(func(r *http.Request) (any, int, error) {
			userID, ok := middlewares.UserIDFromContext(r.Context())
			if !ok {
				return nil, http.StatusUnauthorized, errors.New("unauthorized")
			}
			if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
				return nil, http.StatusBadRequest, err
			}
			picture, err := formUpload(r, "profile_picture")
			if err != nil {
				return nil, http.StatusBadRequest, err
			}
			url, err := ctrl.UploadProfilePicture(r.Context(), userID, picture)
			if err != nil {
				return nil, statusFromErr(err), err
			}
			return map[string]string{"profilePictureUrl": url}, http.StatusOK, nil
		}))
	})

	return r
}
