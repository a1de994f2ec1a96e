package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	authUC "github.com/khoahotran/profile-studio/internal/application/usecase/auth"
	profileUC "github.com/khoahotran/profile-studio/internal/application/usecase/profile"
	"github.com/khoahotran/profile-studio/internal/application/usecase/profile/profiletest"
	"github.com/khoahotran/profile-studio/internal/domain/profile"
	"github.com/khoahotran/profile-studio/internal/domain/user"
	"github.com/khoahotran/profile-studio/pkg/apperror"
	"github.com/khoahotran/profile-studio/pkg/auth"
	"github.com/khoahotran/profile-studio/pkg/logger"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

type singleUserRepo struct {
	u user.User
}

func (r *singleUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if email != r.u.Email {
		return nil, apperror.NewUnauthorized("user does not exist", nil)
	}
	u := r.u
	return &u, nil
}

func (r *singleUserRepo) Upsert(ctx context.Context, u *user.User) error {
	r.u = *u
	return nil
}

type RouterTestSuite struct {
	suite.Suite
	Router    *gin.Engine
	repo      *profiletest.Repository
	publisher *profiletest.Publisher
	jwtSvc    *auth.JWTService
	owner     user.User
	password  string
	token     string
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()

	s.password = "router_test_password_123"
	hash, err := auth.HashPassword(s.password)
	s.Require().NoError(err)
	s.owner = user.User{ID: uuid.New(), Email: "owner@example.com", PasswordHash: hash}

	s.repo = profiletest.NewRepository()
	s.publisher = &profiletest.Publisher{}
	cache := profiletest.NewCache()
	uploader := profiletest.NewUploader()
	s.jwtSvc = auth.NewJWTService("router-test-secret", time.Hour)

	const maxBytes = 1 << 10
	s.Router = NewRouter(RouterDeps{
		AuthHandler: NewAuthHandler(authUC.NewLoginUseCase(&singleUserRepo{u: s.owner}, s.jwtSvc, log), log),
		ProfileHandler: NewProfileHandler(
			profileUC.NewProfileUseCase(s.repo, cache, s.publisher, log),
			profileUC.NewUploadAvatarUseCase(s.repo, cache, uploader, s.publisher, maxBytes, log),
			maxBytes,
			log,
		),
		JWTService: s.jwtSvc,
		Logger:     log,
	})

	s.token, err = s.jwtSvc.GenerateToken(s.owner.ID)
	s.Require().NoError(err)
}

func TestRouter(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) do(req *http.Request, authed bool) *httptest.ResponseRecorder {
	if authed {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}

func (s *RouterTestSuite) uploadRequest(data []byte) *http.Request {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "avatar.png")
	s.Require().NoError(err)
	_, err = part.Write(data)
	s.Require().NoError(err)
	s.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/profile/picture", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func (s *RouterTestSuite) Test_Health() {
	rr := s.do(httptest.NewRequest(http.MethodGet, "/api/health", nil), false)
	s.Equal(http.StatusOK, rr.Code)
}

func (s *RouterTestSuite) Test_Login_Flow() {
	bodyBad, _ := json.Marshal(gin.H{"email": s.owner.Email, "password": "wrongpassword"})
	reqBad := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(bodyBad))
	reqBad.Header.Set("Content-Type", "application/json")
	s.Equal(http.StatusUnauthorized, s.do(reqBad, false).Code)

	bodyInvalid, _ := json.Marshal(gin.H{"email": "not-an-email", "password": ""})
	reqInvalid := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(bodyInvalid))
	reqInvalid.Header.Set("Content-Type", "application/json")
	s.Equal(http.StatusBadRequest, s.do(reqInvalid, false).Code)

	bodyGood, _ := json.Marshal(gin.H{"email": s.owner.Email, "password": s.password})
	reqGood := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(bodyGood))
	reqGood.Header.Set("Content-Type", "application/json")
	rrGood := s.do(reqGood, false)
	s.Require().Equal(http.StatusOK, rrGood.Code)

	var resp LoginResponse
	s.Require().NoError(json.Unmarshal(rrGood.Body.Bytes(), &resp))
	s.NotEmpty(resp.AccessToken)
}

func (s *RouterTestSuite) Test_PrivateRoutesRequireToken() {
	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/profile", nil),
		httptest.NewRequest(http.MethodPut, "/api/profile", bytes.NewReader([]byte("{}"))),
		httptest.NewRequest(http.MethodGet, "/api/onboarding-status", nil),
	} {
		s.Equal(http.StatusUnauthorized, s.do(req, false).Code, req.URL.Path)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	s.Equal(http.StatusUnauthorized, rr.Code)
}

func (s *RouterTestSuite) Test_Profile_RoundTrip() {
	rr := s.do(httptest.NewRequest(http.MethodGet, "/api/profile", nil), true)
	s.Require().Equal(http.StatusOK, rr.Code)
	s.JSONEq(`{"profile":null,"onboarding_completed":false}`, rr.Body.String())

	doc := profile.Empty()
	doc.Bio = "Backend engineer"
	doc.YearsOfExperience = 7
	doc.Skills = []profile.SkillLabel{"Go", "PostgreSQL"}
	doc.Experiences = []profile.Experience{{Company: "Acme", Years: 2.5}}
	doc.Timezone = "Europe/Berlin"
	body, _ := json.Marshal(doc)

	req := httptest.NewRequest(http.MethodPut, "/api/profile", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr = s.do(req, true)
	s.Require().Equal(http.StatusOK, rr.Code)

	rr = s.do(httptest.NewRequest(http.MethodGet, "/api/profile", nil), true)
	s.Require().Equal(http.StatusOK, rr.Code)
	var got ProfileResponse
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &got))
	s.Require().NotNil(got.Profile)
	s.Equal("Backend engineer", got.Profile.Bio)
	s.Equal([]profile.Experience{{Company: "Acme", Years: 2.5}}, got.Profile.Experiences)
	s.True(got.Profile.OnboardingCompleted)
	s.True(got.OnboardingCompleted)

	rr = s.do(httptest.NewRequest(http.MethodGet, "/api/onboarding-status", nil), true)
	s.Require().Equal(http.StatusOK, rr.Code)
	s.JSONEq(`{"onboarding_completed":true}`, rr.Body.String())

	s.Len(s.publisher.Published(), 1)
}

func (s *RouterTestSuite) Test_ReplaceProfile_BadJSON() {
	req := httptest.NewRequest(http.MethodPut, "/api/profile", bytes.NewReader([]byte(`{"years_of_experience":"many"}`)))
	req.Header.Set("Content-Type", "application/json")
	s.Equal(http.StatusBadRequest, s.do(req, true).Code)
}

func (s *RouterTestSuite) Test_UploadPicture() {
	rr := s.do(s.uploadRequest(pngBytes), true)
	s.Require().Equal(http.StatusOK, rr.Code)

	var msg MessageResponse
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &msg))
	s.NotEmpty(msg.URL)

	rr = s.do(httptest.NewRequest(http.MethodGet, "/api/profile", nil), true)
	var got ProfileResponse
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &got))
	s.Equal(msg.URL, got.PfpURL)
}

func (s *RouterTestSuite) Test_UploadPicture_Rejections() {
	s.Equal(http.StatusBadRequest, s.do(s.uploadRequest([]byte("plain text, not an image")), true).Code)
	s.Equal(http.StatusRequestEntityTooLarge, s.do(s.uploadRequest(make([]byte, 4<<10)), true).Code)

	req := httptest.NewRequest(http.MethodPost, "/api/profile/picture", nil)
	s.Equal(http.StatusBadRequest, s.do(req, true).Code)
}

func (s *RouterTestSuite) Test_InternalErrorsAreOpaque() {
	s.repo.Err = apperror.NewInternal("failed to query profile", context.DeadlineExceeded)
	rr := s.do(httptest.NewRequest(http.MethodGet, "/api/profile", nil), true)
	s.Equal(http.StatusInternalServerError, rr.Code)
	s.JSONEq(`{"error":"Internal Server Error"}`, rr.Body.String())
}
