package user

import (
	"flightbook/infras/otel"
	"flightbook/internal/domains/user/model/dto"
	"flightbook/internal/domains/user/service"
	"flightbook/shared/constant"
	"flightbook/shared/failure"
	"flightbook/shared/validator"
	"flightbook/transport/http/middleware"
	"flightbook/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const formFieldPhoto = "photo"

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users/me", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetProfile)
		routerGroup.Patch("/", handler.UpdateProfile)
		routerGroup.Post("/photo", handler.UploadPhoto)
	})
}

// GetProfile returns the caller's profile.
// @Summary Get my profile
// @Tags User
// @Produce json
// @Success 200 {object} response.Data[dto.ProfileResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/users/me [get]
// @Security BearerAuth
func (handler *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfile")
	defer scope.End()

	res, err := handler.service.Profile(ctx, middleware.UserID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get profile")

		response.WithErrorFallback(w, err, "Failed to fetch profile")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateProfile changes the caller's name, phone or age. Existing booking snapshots keep the old values.
// @Summary Update my profile
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Update Profile Request"
// @Success 200 {object} response.Data[dto.ProfileResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/users/me [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfile")
	defer scope.End()

	req := dto.UpdateProfileRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateProfile(ctx, middleware.UserID(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update profile")

		response.WithErrorFallback(w, err, "Failed to update profile")

		return
	}

	scope.AddEvent("Profile updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// UploadPhoto replaces the caller's profile picture.
// @Summary Upload profile picture
// @Tags User
// @Accept multipart/form-data
// @Produce json
// @Param photo formData file true "Profile picture (png, jpeg or webp, up to 5 MB)"
// @Success 200 {object} response.Data[dto.UploadPhotoResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/users/me/photo [post]
// @Security BearerAuth
func (handler *Handler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadPhoto")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	file, header, err := r.FormFile(formFieldPhoto)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequest(err))

		return
	}
	defer file.Close()

	req := dto.UploadPhotoRequest{
		FileName:    header.Filename,
		ContentType: header.Header.Get(constant.RequestHeaderContentType),
		Size:        header.Size,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate photo")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadPhoto(ctx, middleware.UserID(ctx), req, file)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload photo")

		response.WithErrorFallback(w, err, "Failed to upload profile picture")

		return
	}

	scope.AddEvent("Profile picture uploaded successfully")

	response.WithJSON(w, http.StatusOK, res)
}
