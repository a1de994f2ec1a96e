package http

import (
	"github.com/khoahotran/profile-studio/internal/domain/profile"
)

// ProfileResponse is the body of GET /api/profile. Profile is null until the
// owner has submitted it once.
type ProfileResponse struct {
	Profile             *profile.Profile `json:"profile"`
	PfpURL              string           `json:"pfp_url,omitempty"`
	OnboardingCompleted bool             `json:"onboarding_completed"`
}

func ToProfileResponse(rec *profile.Record) ProfileResponse {
	return ProfileResponse{
		Profile:             rec.Document,
		PfpURL:              rec.AvatarURL,
		OnboardingCompleted: rec.OnboardingCompleted,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
	URL     string `json:"url,omitempty"`
}

type OnboardingStatusResponse struct {
	OnboardingCompleted bool `json:"onboarding_completed"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}
