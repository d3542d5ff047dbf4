package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"staybook/internal/auth"
	"staybook/internal/config"
	apperrors "staybook/internal/errors"
	"staybook/internal/handler"
	"staybook/internal/model"
	"staybook/internal/router"
	"staybook/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

func (m *MockAuthService) OptionalUser(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) RequireUser(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockPlaceService is a mock implementation of service.PlaceService.
type MockPlaceService struct {
	mock.Mock
}

func (m *MockPlaceService) Create(ctx context.Context, owner uuid.UUID, fields service.PlaceFields) (*model.Place, error) {
	args := m.Called(ctx, owner, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Place), args.Error(1)
}

func (m *MockPlaceService) Update(ctx context.Context, id, caller uuid.UUID, fields service.PlaceFields) (*model.Place, error) {
	args := m.Called(ctx, id, caller, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Place), args.Error(1)
}

func (m *MockPlaceService) Get(ctx context.Context, id uuid.UUID) (*model.Place, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Place), args.Error(1)
}

func (m *MockPlaceService) ListByOwner(ctx context.Context, owner uuid.UUID) ([]model.Place, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Place), args.Error(1)
}

func (m *MockPlaceService) ListAll(ctx context.Context) ([]model.Place, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Place), args.Error(1)
}

// MockBookingService is a mock implementation of service.BookingService.
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Create(ctx context.Context, user uuid.UUID, fields service.BookingFields) (*model.Booking, error) {
	args := m.Called(ctx, user, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *MockBookingService) ListForUser(ctx context.Context, user uuid.UUID) ([]model.Booking, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Booking), args.Error(1)
}

// MockUploadService is a mock implementation of service.UploadService.
type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) FetchAsInline(ctx context.Context, link string) (string, error) {
	args := m.Called(ctx, link)
	return args.String(0), args.Error(1)
}

// MockImageService is a mock implementation of service.ImageService.
type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) StoreInline(ctx context.Context, files []string) (*model.Image, error) {
	args := m.Called(ctx, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Image), args.Error(1)
}

const testSecret = "test-secret"

type fixture struct {
	e        *echo.Echo
	auth     *MockAuthService
	places   *MockPlaceService
	bookings *MockBookingService
	uploads  *MockUploadService
	images   *MockImageService
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		e:        echo.New(),
		auth:     new(MockAuthService),
		places:   new(MockPlaceService),
		bookings: new(MockBookingService),
		uploads:  new(MockUploadService),
		images:   new(MockImageService),
	}
	cfg := &config.Config{
		JWTSecret:    testSecret,
		CookieDomain: "localhost",
		UploadsDir:   t.TempDir(),
	}
	router.Register(
		f.e,
		cfg,
		handler.NewAuthHandler(f.auth, cfg.CookieDomain),
		handler.NewPlaceHandler(f.places),
		handler.NewBookingHandler(f.bookings),
		handler.NewUploadHandler(f.uploads, f.images),
	)
	return f
}

func (f *fixture) request(method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, userID uuid.UUID) *http.Cookie {
	t.Helper()
	token, err := auth.NewJWTService(testSecret).Issue(userID, "owner@example.com")
	assert.NoError(t, err)
	return &http.Cookie{Name: "token", Value: token}
}

func TestProfileAnonymous(t *testing.T) {
	f := newFixture(t)
	f.auth.On("OptionalUser", mock.Anything, "").Return(nil, nil)

	rec := f.request(http.MethodGet, "/api/profile", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `"null"`, rec.Body.String())
}

func TestProfileAuthenticated(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	cookie := sessionCookie(t, userID)
	f.auth.On("OptionalUser", mock.Anything, cookie.Value).Return(&model.User{
		ID:    userID,
		Name:  "Owner",
		Email: "owner@example.com",
	}, nil)

	rec := f.request(http.MethodGet, "/api/profile", "", cookie)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"owner@example.com"`)
	assert.Contains(t, rec.Body.String(), userID.String())
}

func TestLoginFailureBodies(t *testing.T) {
	f := newFixture(t)
	f.auth.On("Login", mock.Anything, "ghost@example.com", "pw123456").Return("", nil, apperrors.ErrUserNotFound)
	f.auth.On("Login", mock.Anything, "real@example.com", "wrong-pw").Return("", nil, apperrors.ErrWrongPassword)

	rec := f.request(http.MethodPost, "/api/login", `{"email":"ghost@example.com","password":"pw123456"}`, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `"Not Found"`, rec.Body.String())

	rec = f.request(http.MethodPost, "/api/login", `{"email":"real@example.com","password":"wrong-pw"}`, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `"Wrong Password"`, rec.Body.String())
}

func TestLoginSetsSessionCookie(t *testing.T) {
	f := newFixture(t)
	user := &model.User{ID: uuid.New(), Email: "owner@example.com", Name: "Owner"}
	f.auth.On("Login", mock.Anything, "owner@example.com", "pw123456").Return("signed-token", user, nil)

	rec := f.request(http.MethodPost, "/api/login", `{"email":"owner@example.com","password":"pw123456"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.Contains(t, rec.Body.String(), `"signed-token"`)

	cookies := rec.Result().Cookies()
	var token *http.Cookie
	for _, c := range cookies {
		if c.Name == "token" {
			token = c
		}
	}
	assert.NotNil(t, token)
	assert.Equal(t, "signed-token", token.Value)
	assert.WithinDuration(t, time.Now().Add(auth.TokenExpiry), token.Expires, time.Minute)
}

func TestLogoutExpiresCookie(t *testing.T) {
	f := newFixture(t)

	rec := f.request(http.MethodPost, "/api/logout", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `"deleted"`, rec.Body.String())

	cookies := rec.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.True(t, cookies[0].Expires.Before(time.Now()))
}

func TestCreatePlaceUnauthenticated(t *testing.T) {
	f := newFixture(t)

	rec := f.request(http.MethodPost, "/api/places", `{"title":"Cottage"}`, nil)

	assert.Equal(t, http.StatusNotImplemented, rec.Code)
	assert.JSONEq(t, `"Error"`, rec.Body.String())
	f.places.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePlaceAuthenticated(t *testing.T) {
	f := newFixture(t)
	owner := uuid.New()
	created := &model.Place{ID: uuid.New(), OwnerID: owner, Title: "Cottage"}
	f.places.On("Create", mock.Anything, owner, mock.AnythingOfType("service.PlaceFields")).Return(created, nil)

	rec := f.request(http.MethodPost, "/api/places", `{"title":"Cottage","maxGuests":2}`, sessionCookie(t, owner))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), created.ID.String())
	f.places.AssertExpectations(t)
}

func TestUserPlacesUnauthenticated(t *testing.T) {
	f := newFixture(t)

	rec := f.request(http.MethodGet, "/api/userplaces", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `"null"`, rec.Body.String())
}

func TestUserPlacesExpiredToken(t *testing.T) {
	f := newFixture(t)
	// Signed with another secret; the middleware must treat it as anonymous.
	token, err := auth.NewJWTService("other-secret").Issue(uuid.New(), "x@example.com")
	assert.NoError(t, err)

	rec := f.request(http.MethodGet, "/api/userplaces", "", &http.Cookie{Name: "token", Value: token})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `"null"`, rec.Body.String())
}

func TestUpdatePlaceNotOwnerIsSilentNoOp(t *testing.T) {
	f := newFixture(t)
	caller := uuid.New()
	placeID := uuid.New()
	f.places.On("Update", mock.Anything, placeID, caller, mock.AnythingOfType("service.PlaceFields")).
		Return(nil, apperrors.ErrNotOwner)

	body := `{"id":"` + placeID.String() + `","title":"Hijacked"}`
	rec := f.request(http.MethodPut, "/api/places", body, sessionCookie(t, caller))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `"null"`, rec.Body.String())
	f.places.AssertExpectations(t)
}

func TestUpdatePlaceByOwner(t *testing.T) {
	f := newFixture(t)
	owner := uuid.New()
	placeID := uuid.New()
	f.places.On("Update", mock.Anything, placeID, owner, mock.AnythingOfType("service.PlaceFields")).
		Return(&model.Place{ID: placeID, OwnerID: owner, Title: "New title"}, nil)

	body := `{"id":"` + placeID.String() + `","title":"New title"}`
	rec := f.request(http.MethodPut, "/api/places", body, sessionCookie(t, owner))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `"ok"`, rec.Body.String())
	f.places.AssertExpectations(t)
}

func TestBookingsUnauthenticated(t *testing.T) {
	f := newFixture(t)

	rec := f.request(http.MethodGet, "/api/bookings", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `"null"`, rec.Body.String())

	rec = f.request(http.MethodPost, "/api/bookings", `{"place":"x"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `"null"`, rec.Body.String())
}

func TestCreateBooking(t *testing.T) {
	f := newFixture(t)
	user := uuid.New()
	place := uuid.New()
	created := &model.Booking{ID: uuid.New(), UserID: user, PlaceID: place}
	f.bookings.On("Create", mock.Anything, user, mock.AnythingOfType("service.BookingFields")).Return(created, nil)

	body := `{"place":"` + place.String() + `","checkIn":"2026-09-01","checkOut":"2026-09-05","numberOfGuests":2}`
	rec := f.request(http.MethodPost, "/api/bookings", body, sessionCookie(t, user))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), created.ID.String())
	f.bookings.AssertExpectations(t)
}

func TestListBookings(t *testing.T) {
	f := newFixture(t)
	user := uuid.New()
	f.bookings.On("ListForUser", mock.Anything, user).Return([]model.Booking{
		{ID: uuid.New(), UserID: user, Place: &model.Place{Title: "Cottage"}},
	}, nil)

	rec := f.request(http.MethodGet, "/api/bookings", "", sessionCookie(t, user))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Cottage"`)
	f.bookings.AssertExpectations(t)
}

func TestUploadByLink(t *testing.T) {
	f := newFixture(t)
	f.uploads.On("FetchAsInline", mock.Anything, "http://example.com/a.png").
		Return("data:image/png;base64,AAAA", nil)
	f.uploads.On("FetchAsInline", mock.Anything, "http://example.com/a.gif").
		Return("", apperrors.ErrUnsupportedImageType)

	rec := f.request(http.MethodPost, "/api/uploadByLink", `{"link":"http://example.com/a.png"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "data:image/png;base64,AAAA")

	rec = f.request(http.MethodPost, "/api/uploadByLink", `{"link":"http://example.com/a.gif"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.request(http.MethodPost, "/api/uploadByLink", `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDevUpload(t *testing.T) {
	f := newFixture(t)
	stored := &model.Image{ID: uuid.New(), Files: []string{"data:image/png;base64,AAAA"}}
	f.images.On("StoreInline", mock.Anything, stored.Files).Return(stored, nil)

	rec := f.request(http.MethodPost, "/api/devupload", `{"myFile":["data:image/png;base64,AAAA"]}`, nil)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Images uploaded successfully")

	rec = f.request(http.MethodPost, "/api/devupload", `{"myFile":[]}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Images are required")
}

func TestGetPlace(t *testing.T) {
	f := newFixture(t)
	place := &model.Place{ID: uuid.New(), Title: "Cottage"}
	f.places.On("Get", mock.Anything, place.ID).Return(place, nil)

	rec := f.request(http.MethodGet, "/api/places/"+place.ID.String(), "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Cottage"`)
}

func TestListAllPlaces(t *testing.T) {
	f := newFixture(t)
	f.places.On("ListAll", mock.Anything).Return([]model.Place{
		{ID: uuid.New(), Title: "One"},
		{ID: uuid.New(), Title: "Two"},
	}, nil)

	rec := f.request(http.MethodGet, "/api/places", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"One"`)
	assert.Contains(t, rec.Body.String(), `"Two"`)
}

func TestDevHealth(t *testing.T) {
	f := newFixture(t)

	rec := f.request(http.MethodGet, "/api/dev", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"OK"}`, rec.Body.String())
}
