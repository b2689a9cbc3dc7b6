package auth

import (
	"Go-Pantry-Tracker/domain"
	"Go-Pantry-Tracker/entities"
	"Go-Pantry-Tracker/internal/utils/mailing"
	"Go-Pantry-Tracker/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenDuration = 30 * time.Minute

type (
	// AuthService signs users in and out and reports those changes to
	// listeners registered with OnAuthStateChange.
	AuthService interface {
		SignUp(ctx context.Context, req domain.SignUpRequest) (domain.Session, error)
		SignIn(ctx context.Context, req domain.SignInRequest) (domain.Session, error)
		SignOut(ctx context.Context, token string) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
		NewPassword(ctx context.Context, req domain.NewPasswordRequest) error
		CurrentUser(ctx context.Context, token string) (domain.AuthUser, error)
		OnAuthStateChange(callback func(domain.AuthEvent)) (unsubscribe func())
	}

	authService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		mailer         mailing.Mailer
		appURL         string

		mu        sync.Mutex
		revoked   map[string]struct{}
		listeners map[int]func(domain.AuthEvent)
		nextID    int
	}
)

func NewAuthService(userRepository UserRepository, jwtService jwt.JWTService, mailer mailing.Mailer, appURL string) AuthService {
	return &authService{
		userRepository: userRepository,
		jwtService:     jwtService,
		mailer:         mailer,
		appURL:         appURL,
		revoked:        map[string]struct{}{},
		listeners:      map[int]func(domain.AuthEvent){},
	}
}

func (s *authService) SignUp(ctx context.Context, req domain.SignUpRequest) (domain.Session, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Session{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    normalizeEmail(req.Email),
		Password: string(hashed),
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.Session{}, err
	}

	return s.startSession(user), nil
}

func (s *authService) SignIn(ctx context.Context, req domain.SignInRequest) (domain.Session, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.Session{}, domain.ErrInvalidCredentials
		}
		return domain.Session{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.Session{}, domain.ErrInvalidCredentials
	}

	return s.startSession(user), nil
}

// SignOut revokes token for the rest of its lifetime.
func (s *authService) SignOut(ctx context.Context, token string) error {
	user, err := s.CurrentUser(ctx, token)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.revoked[token] = struct{}{}
	s.mu.Unlock()

	s.emit(domain.AuthEvent{Type: domain.AuthEventSignedOut, User: user})
	return nil
}

// ResetPassword mails a reset link. Unknown addresses succeed silently.
func (s *authService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			log.Infof("auth: password reset requested for unknown address")
			return nil
		}
		return err
	}

	token, err := s.jwtService.GenerateTokenForgetPassword(map[string]any{
		"user_id": user.ID.String(),
		"email":   user.Email,
	}, resetTokenDuration)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", s.appURL, token)
	body := fmt.Sprintf("<p>Hi %s,</p><p>Use <a href=\"%s\">this link</a> to choose a new password. It expires in 30 minutes.</p>", user.Name, link)
	if err := s.mailer.Send(user.Email, "Reset your pantry password", body); err != nil {
		log.Errorf("auth: send reset mail: %v", err)
		return err
	}

	s.emit(domain.AuthEvent{Type: domain.AuthEventPasswordReset, User: toAuthUser(user)})
	return nil
}

func (s *authService) NewPassword(ctx context.Context, req domain.NewPasswordRequest) error {
	claims, err := s.jwtService.ValidateTokenForgetPassword(req.Token)
	if err != nil {
		return err
	}

	rawID, _ := claims["user_id"].(string)
	id, err := uuid.Parse(rawID)
	if err != nil {
		return domain.ErrTokenInvalid
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.userRepository.UpdatePassword(ctx, id, string(hashed))
}

func (s *authService) CurrentUser(ctx context.Context, token string) (domain.AuthUser, error) {
	if token == "" {
		return domain.AuthUser{}, domain.ErrNotSignedIn
	}

	s.mu.Lock()
	_, revoked := s.revoked[token]
	s.mu.Unlock()
	if revoked {
		return domain.AuthUser{}, domain.ErrNotSignedIn
	}

	userID, _, err := s.jwtService.GetUserIDByToken(token)
	if err != nil {
		return domain.AuthUser{}, err
	}
	id, err := uuid.Parse(userID)
	if err != nil {
		return domain.AuthUser{}, domain.ErrParseUUID
	}

	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return domain.AuthUser{}, err
	}
	return toAuthUser(user), nil
}

// OnAuthStateChange registers callback for sign-in, sign-out and password
// recovery events. Callbacks run synchronously on the caller's goroutine.
func (s *authService) OnAuthStateChange(callback func(domain.AuthEvent)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = callback
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *authService) startSession(user *entities.User) domain.Session {
	session := domain.Session{
		Token: s.jwtService.GenerateTokenUser(user.ID.String(), domain.RoleUser),
		User:  toAuthUser(user),
	}
	s.emit(domain.AuthEvent{Type: domain.AuthEventSignedIn, User: session.User})
	return session
}

func (s *authService) emit(event domain.AuthEvent) {
	s.mu.Lock()
	callbacks := make([]func(domain.AuthEvent), 0, len(s.listeners))
	for _, cb := range s.listeners {
		callbacks = append(callbacks, cb)
	}
	s.mu.Unlock()

	for _, cb := range callbacks {
		cb(event)
	}
}

func toAuthUser(user *entities.User) domain.AuthUser {
	return domain.AuthUser{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}
}
