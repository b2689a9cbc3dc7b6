package auth

import (
	"Go-Pantry-Tracker/domain"
	"Go-Pantry-Tracker/pkg/jwt"
	"context"
	"net/url"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	to, subject, body string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *fakeMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{to, subject, body})
	return nil
}

func newAuth() (AuthService, *fakeMailer) {
	mailer := &fakeMailer{}
	return NewAuthService(NewMemoryUserRepository(), jwt.NewJWTService("test-secret"), mailer, "http://pantry.local"), mailer
}

func signUpReq() domain.SignUpRequest {
	return domain.SignUpRequest{Name: "Rin", Email: "Rin@Example.com", Password: "correct-horse"}
}

func TestSignUpAndSignIn(t *testing.T) {
	svc, _ := newAuth()
	ctx := context.Background()

	session, err := svc.SignUp(ctx, signUpReq())
	require.NoError(t, err)
	assert.Equal(t, "rin@example.com", session.User.Email)
	assert.NotEmpty(t, session.Token)

	_, err = svc.SignUp(ctx, signUpReq())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)

	signedIn, err := svc.SignIn(ctx, domain.SignInRequest{Email: "rin@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, session.User, signedIn.User)

	_, err = svc.SignIn(ctx, domain.SignInRequest{Email: "rin@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = svc.SignIn(ctx, domain.SignInRequest{Email: "nobody@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	me, err := svc.CurrentUser(ctx, signedIn.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User, me)
}

func TestSignOutRevokesToken(t *testing.T) {
	svc, _ := newAuth()
	ctx := context.Background()
	session, err := svc.SignUp(ctx, signUpReq())
	require.NoError(t, err)

	require.NoError(t, svc.SignOut(ctx, session.Token))

	_, err = svc.CurrentUser(ctx, session.Token)
	assert.ErrorIs(t, err, domain.ErrNotSignedIn)
	assert.ErrorIs(t, svc.SignOut(ctx, session.Token), domain.ErrNotSignedIn)

	_, err = svc.CurrentUser(ctx, "")
	assert.ErrorIs(t, err, domain.ErrNotSignedIn)
}

func TestOnAuthStateChange(t *testing.T) {
	svc, _ := newAuth()
	ctx := context.Background()

	var events []domain.AuthEventType
	unsubscribe := svc.OnAuthStateChange(func(e domain.AuthEvent) {
		events = append(events, e.Type)
	})

	session, err := svc.SignUp(ctx, signUpReq())
	require.NoError(t, err)
	require.NoError(t, svc.SignOut(ctx, session.Token))

	unsubscribe()
	_, err = svc.SignIn(ctx, domain.SignInRequest{Email: "rin@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	assert.Equal(t, []domain.AuthEventType{domain.AuthEventSignedIn, domain.AuthEventSignedOut}, events)
}

func TestResetPasswordFlow(t *testing.T) {
	svc, mailer := newAuth()
	ctx := context.Background()
	_, err := svc.SignUp(ctx, signUpReq())
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(ctx, domain.ResetPasswordRequest{Email: "nobody@example.com"}))
	assert.Empty(t, mailer.sent)

	require.NoError(t, svc.ResetPassword(ctx, domain.ResetPasswordRequest{Email: "rin@example.com"}))
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "rin@example.com", mailer.sent[0].to)

	match := regexp.MustCompile(`token=([^"]+)`).FindStringSubmatch(mailer.sent[0].body)
	require.Len(t, match, 2)
	token, err := url.QueryUnescape(match[1])
	require.NoError(t, err)

	require.NoError(t, svc.NewPassword(ctx, domain.NewPasswordRequest{Token: token, Password: "battery-staple"}))

	_, err = svc.SignIn(ctx, domain.SignInRequest{Email: "rin@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = svc.SignIn(ctx, domain.SignInRequest{Email: "rin@example.com", Password: "battery-staple"})
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.NewPassword(ctx, domain.NewPasswordRequest{Token: "bogus", Password: "whatever1"}), domain.ErrTokenInvalid)
}
