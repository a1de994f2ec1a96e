package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/khoahotran/profile-studio/internal/application/usecase/profile"
	"github.com/khoahotran/profile-studio/internal/domain/profile"
	"github.com/khoahotran/profile-studio/pkg/apperror"
	"github.com/khoahotran/profile-studio/pkg/logger"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	avatarUseCase  *profileUC.UploadAvatarUseCase
	maxAvatarBytes int64
	logger         logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, avatarUC *profileUC.UploadAvatarUseCase, maxAvatarBytes int64, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: uc,
		avatarUseCase:  avatarUC,
		maxAvatarBytes: maxAvatarBytes,
		logger:         log,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	input := profileUC.GetProfileInput{OwnerID: ownerID}
	output, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileResponse(output.Record))
}

func (h *ProfileHandler) ReplaceProfile(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req profile.Profile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile update", err))
		return
	}

	input := profileUC.ReplaceProfileInput{OwnerID: ownerID, Document: req}
	if err := h.profileUseCase.ExecuteReplaceProfile(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Profile updated successfully"})
}

func (h *ProfileHandler) UploadPicture(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("'file' is required", err))
		return
	}
	if fileHeader.Size > h.maxAvatarBytes {
		c.Error(apperror.NewTooLarge(fmt.Sprintf("avatar exceeds %d bytes", h.maxAvatarBytes)))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open file", err))
		return
	}
	defer file.Close()

	input := profileUC.UploadAvatarInput{OwnerID: ownerID, File: file}
	output, err := h.avatarUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Profile picture uploaded successfully", URL: output.URL})
}

func (h *ProfileHandler) GetOnboardingStatus(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	input := profileUC.GetOnboardingStatusInput{OwnerID: ownerID}
	completed, err := h.profileUseCase.ExecuteGetOnboardingStatus(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, OnboardingStatusResponse{OnboardingCompleted: completed})
}
