package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SAQIB-dev7447/SmartCampus/internal/models"
	"github.com/SAQIB-dev7447/SmartCampus/internal/repository"
	"github.com/SAQIB-dev7447/SmartCampus/internal/utils"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const sessionTTL = 24 * time.Hour

type AuthService struct {
	store         repository.Store
	sessionSecret string
}

func NewAuthService(store repository.Store, sessionSecret string) *AuthService {
	return &AuthService{store: store, sessionSecret: sessionSecret}
}

// Register creates a student account. Staff and admin accounts exist only
// through seeding; self-registration never grants a privileged role.
func (a *AuthService) Register(ctx context.Context, fullname, email, password string) (*models.User, error) {
	fullname = strings.TrimSpace(fullname)
	email = strings.TrimSpace(email)
	if fullname == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: all fields are required", ErrValidation)
	}

	users := a.store.Repos().Users
	if existing, _, err := users.GetByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: email is already registered", ErrValidation)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return users.Create(ctx, fullname, email, models.RoleStudent, "", hash)
}

// Login checks credentials and the role the user claims to log in as; a valid
// password under the wrong role tab is still rejected.
func (a *AuthService) Login(ctx context.Context, email, password string, role models.Role) (string, *models.User, error) {
	u, hash, err := a.store.Repos().Users.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if u == nil || !utils.CheckPassword(hash, password) {
		return "", nil, ErrInvalidCredentials
	}
	if u.Role != role {
		return "", nil, fmt.Errorf("%w: please log in as %s", ErrPermissionDenied, u.Role)
	}

	tok, err := utils.SignJWT(a.sessionSecret, u.ID, u.Role, u.Department, sessionTTL)
	if err != nil {
		return "", nil, err
	}
	return tok, u, nil
}

func (a *AuthService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	u, err := a.store.Repos().Users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}
