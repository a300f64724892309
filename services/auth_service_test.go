package services

import (
	"testing"

	"newscheck-backend/models"
	"newscheck-backend/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestNormalizeRole(t *testing.T) {
	cases := map[string]string{
		"admin":     models.RoleAdmin,
		"ADMIN":     models.RoleAdmin,
		" Member ":  models.RoleMember,
		"reader":    models.RoleReader,
		"overlord":  models.RoleReader,
		"":          models.RoleReader,
		"moderator": models.RoleReader,
	}
	for input, want := range cases {
		assert.Equal(t, want, NormalizeRole(input), "input %q", input)
	}
}

type AuthServiceTestSuite struct {
	suite.Suite
	db       *gorm.DB
	userRepo repositories.UserRepository
	service  AuthService
}

func (suite *AuthServiceTestSuite) SetupSuite() {
	db, err := gorm.Open(sqlite.Open("file:authsvc?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)

	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	suite.Require().NoError(db.AutoMigrate(&models.User{}, &models.Article{}, &models.Vote{}))

	suite.db = db
	suite.userRepo = repositories.NewUserRepository(db)
	suite.service = NewAuthService(suite.userRepo)
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM users")
}

func (suite *AuthServiceTestSuite) register(email, password, role string) (*models.User, error) {
	return suite.service.Register(models.RegisterRequest{
		Name:     "Test",
		Surname:  "User",
		Email:    email,
		Password: password,
		Role:     role,
	})
}

func (suite *AuthServiceTestSuite) TestRegisterDefaultsToReader() {
	user, err := suite.register("plain@example.com", "secret123", "")
	suite.Require().NoError(err)
	suite.Equal(models.RoleReader, user.Role)
	suite.True(user.Visible)
}

func (suite *AuthServiceTestSuite) TestRegisterAdminDomainForcesAdmin() {
	// The domain check is case-insensitive and beats the requested role.
	user, err := suite.register("Boss@Admin.EXPM", "secret123", "member")
	suite.Require().NoError(err)
	suite.Equal(models.RoleAdmin, user.Role)
	// Stored email is trimmed but keeps its original case.
	suite.Equal("Boss@Admin.EXPM", user.Email)
}

func (suite *AuthServiceTestSuite) TestRegisterNormalizesRequestedRole() {
	user, err := suite.register("m@example.com", "secret123", "MeMbEr")
	suite.Require().NoError(err)
	suite.Equal(models.RoleMember, user.Role)

	user, err = suite.register("r@example.com", "secret123", "superuser")
	suite.Require().NoError(err)
	suite.Equal(models.RoleReader, user.Role)
}

func (suite *AuthServiceTestSuite) TestRegisterRejectsBlankCredentials() {
	_, err := suite.register("   ", "secret123", "")
	suite.Require().Error(err)
	suite.IsType(models.ErrorBadRequest{}, err)

	_, err = suite.register("x@example.com", "   ", "")
	suite.Require().Error(err)
	suite.IsType(models.ErrorBadRequest{}, err)
}

func (suite *AuthServiceTestSuite) TestRegisterDuplicateEmailConflicts() {
	_, err := suite.register("dup@example.com", "secret123", "")
	suite.Require().NoError(err)

	_, err = suite.register("dup@example.com", "other456", "")
	suite.Require().Error(err)
	suite.IsType(models.ErrorConflict{}, err)
}

func (suite *AuthServiceTestSuite) TestRegisterStoresSaltedHash() {
	user, err := suite.register("hash@example.com", "secret123", "")
	suite.Require().NoError(err)

	stored, err := suite.userRepo.GetByID(user.ID)
	suite.Require().NoError(err)
	suite.NotEqual("secret123", stored.Password)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
}

func (suite *AuthServiceTestSuite) TestLoginUnknownEmail() {
	_, err := suite.service.Login(models.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	suite.Require().Error(err)
	suite.IsType(models.ErrorNotFound{}, err)
}

func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	_, err := suite.register("login@example.com", "secret123", "")
	suite.Require().NoError(err)

	_, err = suite.service.Login(models.LoginRequest{Email: "login@example.com", Password: "not-it"})
	suite.Require().Error(err)
	suite.IsType(models.ErrorUnauthorized{}, err)
}

func (suite *AuthServiceTestSuite) TestLoginDeactivatedAccountForbidden() {
	user, err := suite.register("inactive@example.com", "secret123", "")
	suite.Require().NoError(err)

	_, err = suite.service.SetUserVisibility(user.ID, false)
	suite.Require().NoError(err)

	// Correct credentials, hidden account.
	_, err = suite.service.Login(models.LoginRequest{Email: "inactive@example.com", Password: "secret123"})
	suite.Require().Error(err)
	suite.IsType(models.ErrorForbidden{}, err)
}

func (suite *AuthServiceTestSuite) TestLoginSuccessIssuesToken() {
	_, err := suite.register("ok@example.com", "secret123", "member")
	suite.Require().NoError(err)

	response, err := suite.service.Login(models.LoginRequest{Email: "ok@example.com", Password: "secret123"})
	suite.Require().NoError(err)
	suite.NotEmpty(response.Token)
	suite.Equal("ok@example.com", response.User.Email)
	suite.Equal(models.RoleMember, response.User.Role)
}

func (suite *AuthServiceTestSuite) TestUpdateRole() {
	user, err := suite.register("promote@example.com", "secret123", "")
	suite.Require().NoError(err)

	updated, err := suite.service.UpdateRole(user.ID, "admin")
	suite.Require().NoError(err)
	suite.Equal(models.RoleAdmin, updated.Role)

	// Unrecognized input silently downgrades to READER.
	updated, err = suite.service.UpdateRole(user.ID, "czar")
	suite.Require().NoError(err)
	suite.Equal(models.RoleReader, updated.Role)
}

func (suite *AuthServiceTestSuite) TestUpdateRoleUnknownUser() {
	_, err := suite.service.UpdateRole(404404, "admin")
	suite.Require().Error(err)
	suite.IsType(models.ErrorNotFound{}, err)
}

func (suite *AuthServiceTestSuite) TestRegisterPersistsRequestedHiddenState() {
	hidden := false
	user, err := suite.service.Register(models.RegisterRequest{
		Email:    "ghostwriter@example.com",
		Password: "secret123",
		Visible:  &hidden,
	})
	suite.Require().NoError(err)
	suite.False(user.Visible)

	// The deactivated flag must survive the round trip to the database.
	stored, err := suite.userRepo.GetByID(user.ID)
	suite.Require().NoError(err)
	suite.False(stored.Visible)

	_, err = suite.service.Login(models.LoginRequest{Email: "ghostwriter@example.com", Password: "secret123"})
	suite.Require().Error(err)
	suite.IsType(models.ErrorForbidden{}, err)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
