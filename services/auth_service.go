package services

import (
	"errors"
	"strings"
	"time"

	"newscheck-backend/config"
	"newscheck-backend/models"
	"newscheck-backend/repositories"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminDomainSuffix forces the ADMIN role on registration regardless of the
// requested role.
const AdminDomainSuffix = "@admin.expm"

type AuthService interface {
	Register(req models.RegisterRequest) (*models.User, error)
	Login(req models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(id uint) (*models.User, error)
	GetUsers() ([]models.User, error)
	UpdateRole(id uint, role string) (*models.User, error)
	SetUserVisibility(id uint, visible bool) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// NormalizeRole maps free-form input onto the three known roles,
// case-insensitively. Anything unrecognized, including the empty string,
// falls back to READER.
func NormalizeRole(role string) string {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "admin":
		return models.RoleAdmin
	case "member":
		return models.RoleMember
	case "reader":
		return models.RoleReader
	default:
		return models.RoleReader
	}
}

func (s *authService) Register(req models.RegisterRequest) (*models.User, error) {
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Password) == "" {
		return nil, models.ErrorBadRequest{Message: "email and password cannot be empty"}
	}

	// The lowercased form is only used for the admin-domain check; the
	// stored email is trimmed but keeps its case, and the duplicate lookup
	// matches that stored form exactly.
	trimmedEmail := strings.TrimSpace(req.Email)
	normalizedEmail := strings.ToLower(trimmedEmail)

	role := models.RoleReader
	if strings.HasSuffix(normalizedEmail, AdminDomainSuffix) {
		role = models.RoleAdmin
	} else if req.Role != "" {
		role = NormalizeRole(req.Role)
	}

	existing, err := s.userRepo.GetByEmail(trimmedEmail)
	if err == nil && existing != nil {
		return nil, models.ErrorConflict{Message: "email already exists"}
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}

	user := &models.User{
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    trimmedEmail,
		Password: string(hashedPassword),
		Role:     role,
		Visible:  visible,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "email not found"}
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.ErrorUnauthorized{Message: "incorrect password"}
	}

	if !user.Visible {
		return nil, models.ErrorForbidden{Message: "your account is currently inactive, you cannot log in"}
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "user not found"}
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) GetUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

func (s *authService) UpdateRole(id uint, role string) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	user.Role = NormalizeRole(role)
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) SetUserVisibility(id uint, visible bool) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	user.Visible = visible
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     now.Add(config.JWTExpiration).Unix(),
		"iat":     now.Unix(),
		"nbf":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(config.JWTSecret)
	if err != nil {
		return "", models.ErrorInternalServer{Message: "failed to sign session token"}
	}

	return signedToken, nil
}
