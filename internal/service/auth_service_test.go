package service_test // 公開APIだけを使ったテストにするため別パッケージにする

import (
	"context"
	"testing"
	"time"

	"fittrack/internal/config"
	"fittrack/internal/model"
	"fittrack/internal/repository/mocks"
	"fittrack/internal/service"
	servicemocks "fittrack/internal/service/mocks" // Mailerのモック

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストスイートの定義 ---
type AuthServiceTestSuite struct {
	suite.Suite

	db               *gorm.DB
	mockTenantRepo   *mocks.TenantRepository
	mockIdentityRepo *mocks.IdentityRepository
	mockTokenRepo    *mocks.TokenRepository
	mockMailer       *servicemocks.Mailer
	cfg              *config.Config
	authService      service.AuthService
}

// 各テストの直前に呼ばれ、モックをクリーンな状態にする
func (s *AuthServiceTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	s.db = db

	s.mockTenantRepo = new(mocks.TenantRepository)
	s.mockIdentityRepo = new(mocks.IdentityRepository)
	s.mockTokenRepo = new(mocks.TokenRepository)
	s.mockMailer = new(servicemocks.Mailer)

	s.cfg = &config.Config{}
	s.cfg.App.Name = "FitTrack Test"
	s.cfg.App.FrontendURL = "http://localhost:3000"
	s.cfg.JWT.SecretKey = "test-secret"
	s.cfg.JWT.AccessTokenTTL = 15 * time.Minute

	s.authService = service.NewAuthService(s.db, s.mockTenantRepo, s.mockIdentityRepo, s.mockTokenRepo, s.mockMailer, s.cfg)
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

// --- RegisterTenantメソッドのテスト ---
func (s *AuthServiceTestSuite) TestRegisterTenant() {
	testCases := []struct {
		name        string
		req         *model.RegisterRequest
		setupMocks  func()
		checkResult func(tenant *model.Tenant, err error)
	}{
		{
			name: "正常系: 登録に成功し確認メールが送信される",
			req:  &model.RegisterRequest{Name: "test", Email: "test@example.com", Password: "password123"},
			setupMocks: func() {
				s.mockTenantRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").Return(nil, model.ErrNotFound).Once()
				s.mockTenantRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Tenant")).Return(nil).Once()
				s.mockIdentityRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Identity")).
					Run(func(args mock.Arguments) {
						identity := args.Get(2).(*model.Identity)
						s.Equal(model.AuthProviderLocal, identity.AuthProvider)
						s.Equal("test@example.com", identity.ProviderID)
					}).Return(nil).Once()
				s.mockTokenRepo.On("CreateVerificationToken", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				s.mockMailer.On("Send", mock.Anything, "test@example.com", mock.Anything, mock.Anything).Return(nil).Once()
			},
			checkResult: func(tenant *model.Tenant, err error) {
				s.NoError(err)
				s.NotNil(tenant)
				s.Equal("test@example.com", tenant.Email)
				s.False(tenant.IsActive)
			},
		},
		{
			name: "異常系: Emailが重複している",
			req:  &model.RegisterRequest{Name: "test", Email: "test@example.com", Password: "password123"},
			setupMocks: func() {
				s.mockTenantRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").Return(&model.Tenant{}, nil).Once()
			},
			checkResult: func(tenant *model.Tenant, err error) {
				s.Nil(tenant)
				s.Error(err)
				var appErr *model.AppError
				s.ErrorAs(err, &appErr)
				s.Equal("DUPLICATE_EMAIL", appErr.Detail.Code)
			},
		},
		{
			name: "異常系: メール送信に失敗するとトランザクションが失敗する",
			req:  &model.RegisterRequest{Name: "test", Email: "test@example.com", Password: "password123"},
			setupMocks: func() {
				s.mockTenantRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").Return(nil, model.ErrNotFound).Once()
				s.mockTenantRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Tenant")).Return(nil).Once()
				s.mockIdentityRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Identity")).Return(nil).Once()
				s.mockTokenRepo.On("CreateVerificationToken", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				s.mockMailer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(model.ErrInternalServer).Once()
			},
			checkResult: func(tenant *model.Tenant, err error) {
				s.Nil(tenant)
				s.Error(err)
				var appErr *model.AppError
				s.ErrorAs(err, &appErr)
				s.Equal("EMAIL_SEND_FAILED", appErr.Detail.Code)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()

			tc.setupMocks()

			createdTenant, err := s.authService.RegisterTenant(context.Background(), tc.req)

			tc.checkResult(createdTenant, err)

			s.mockTenantRepo.AssertExpectations(s.T())
			s.mockIdentityRepo.AssertExpectations(s.T())
			s.mockTokenRepo.AssertExpectations(s.T())
			s.mockMailer.AssertExpectations(s.T())
		})
	}
}

// --- Loginメソッドのテスト ---
func (s *AuthServiceTestSuite) TestLogin() {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	s.Require().NoError(err)

	activeTenant := func() *model.Tenant {
		return &model.Tenant{
			Email:        "test@example.com",
			PasswordHash: string(hashed),
			IsActive:     true,
		}
	}

	testCases := []struct {
		name        string
		req         *model.LoginRequest
		setupMocks  func()
		checkResult func(resp *model.LoginResponse, err error)
	}{
		{
			name: "正常系: ログインに成功してトークンが返る",
			req:  &model.LoginRequest{Email: "test@example.com", Password: "password123"},
			setupMocks: func() {
				s.mockTenantRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").Return(activeTenant(), nil).Once()
			},
			checkResult: func(resp *model.LoginResponse, err error) {
				s.NoError(err)
				s.NotNil(resp)
				s.NotEmpty(resp.AccessToken)
			},
		},
		{
			name: "異常系: パスワードが一致しない",
			req:  &model.LoginRequest{Email: "test@example.com", Password: "wrong-password"},
			setupMocks: func() {
				s.mockTenantRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").Return(activeTenant(), nil).Once()
			},
			checkResult: func(resp *model.LoginResponse, err error) {
				s.Nil(resp)
				var appErr *model.AppError
				s.ErrorAs(err, &appErr)
				s.Equal("AUTHENTICATION_FAILED", appErr.Detail.Code)
			},
		},
		{
			name: "異常系: ユーザーが存在しない",
			req:  &model.LoginRequest{Email: "nobody@example.com", Password: "password123"},
			setupMocks: func() {
				s.mockTenantRepo.On("FindByEmail", mock.Anything, mock.Anything, "nobody@example.com").Return(nil, model.ErrNotFound).Once()
			},
			checkResult: func(resp *model.LoginResponse, err error) {
				s.Nil(resp)
				var appErr *model.AppError
				s.ErrorAs(err, &appErr)
				s.Equal("AUTHENTICATION_FAILED", appErr.Detail.Code)
			},
		},
		{
			name: "異常系: アカウントが未有効化",
			req:  &model.LoginRequest{Email: "test@example.com", Password: "password123"},
			setupMocks: func() {
				inactive := activeTenant()
				inactive.IsActive = false
				s.mockTenantRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").Return(inactive, nil).Once()
			},
			checkResult: func(resp *model.LoginResponse, err error) {
				s.Nil(resp)
				var appErr *model.AppError
				s.ErrorAs(err, &appErr)
				s.Equal("ACCOUNT_NOT_ACTIVE", appErr.Detail.Code)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()

			tc.setupMocks()

			resp, err := s.authService.Login(context.Background(), tc.req)

			tc.checkResult(resp, err)

			s.mockTenantRepo.AssertExpectations(s.T())
		})
	}
}
