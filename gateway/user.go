package gateway

import (
	"context"
	"errors"
	"time"

	"hexgames/models"
	"hexgames/prefs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	sessionIssuer   = "hexgames"
	sessionLifetime = 30 * 24 * time.Hour
	resetLifetime   = time.Hour
)

// UserGateway wraps the auth provider. The current session is a signed
// token persisted in the local preference store, so "current user" survives
// restarts; ReadUser resolves it back to an account record.
type UserGateway interface {
	CreateUser(ctx context.Context, user models.User) UserResult
	ReadUser(ctx context.Context) UserResult
	DeleteUser(ctx context.Context) UserResult
	SignIn(ctx context.Context, email, password string) UserResult
	SignOut(ctx context.Context) UserResult
	UserExists(ctx context.Context, email string) UserResult
	RecoverPassword(ctx context.Context, email string) UserResult
}

// AuthGateway implements UserGateway over the users collection.
type AuthGateway struct {
	db      *gorm.DB
	session *prefs.Store
	secret  []byte
	mailer  Mailer
}

func NewAuthGateway(db *gorm.DB, session *prefs.Store, secret string, mailer Mailer) *AuthGateway {
	return &AuthGateway{db: db, session: session, secret: []byte(secret), mailer: mailer}
}

// CreateUser registers an account and opens a session for it.
func (g *AuthGateway) CreateUser(ctx context.Context, user models.User) UserResult {
	if user.Email == "" || user.Password == "" {
		return UserResult{Kind: CreateUserError, Err: models.NewValidationError("email and password are required")}
	}

	var count int64
	if err := g.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return UserResult{Kind: CreateUserError, Err: models.NewInternalError(err)}
	}
	if count > 0 {
		return UserResult{Kind: CreateUserError, Err: models.NewConflictError("account already exists")}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResult{Kind: CreateUserError, Err: models.NewInternalError(err)}
	}

	user.ID = uuid.NewString()
	user.PasswordHash = string(hashed)
	user.Password = ""

	if err := g.db.WithContext(ctx).Create(&user).Error; err != nil {
		return UserResult{Kind: CreateUserError, Err: models.NewInternalError(err)}
	}

	if err := g.openSession(user.ID); err != nil {
		return UserResult{Kind: CreateUserError, Err: models.NewInternalError(err)}
	}

	return UserResult{Kind: CreateUserSuccess}
}

// ReadUser resolves the persisted session to an account record. A missing
// or invalid session means "not signed in", not an error.
func (g *AuthGateway) ReadUser(ctx context.Context) UserResult {
	token := g.session.GetString(prefs.KeySessionToken)
	if token == "" {
		return UserResult{Kind: ReadUserNotFound}
	}

	userID, err := g.parseSession(token)
	if err != nil {
		return UserResult{Kind: ReadUserNotFound}
	}

	var user models.User
	if err := g.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResult{Kind: ReadUserNotFound}
		}
		return UserResult{Kind: ReadUserError, Err: models.NewInternalError(err)}
	}

	user.Password = ""
	user.PasswordHash = ""
	return UserResult{Kind: ReadUserSuccess, User: user}
}

// DeleteUser removes the current account and closes its session.
func (g *AuthGateway) DeleteUser(ctx context.Context) UserResult {
	current := g.ReadUser(ctx)
	switch current.Kind {
	case ReadUserSuccess:
	case ReadUserNotFound:
		return UserResult{Kind: DeleteUserNotFound}
	default:
		return UserResult{Kind: DeleteUserError, Err: current.Err}
	}

	if err := g.db.WithContext(ctx).Delete(&models.User{}, "id = ?", current.User.ID).Error; err != nil {
		return UserResult{Kind: DeleteUserError, Err: models.NewInternalError(err)}
	}

	if err := g.session.SetString(prefs.KeySessionToken, ""); err != nil {
		return UserResult{Kind: DeleteUserError, Err: models.NewInternalError(err)}
	}

	return UserResult{Kind: DeleteUserSuccess}
}

// SignIn checks credentials and opens a session. A wrong password is
// reported as UNAUTHORIZED so callers can surface the specific message.
func (g *AuthGateway) SignIn(ctx context.Context, email, password string) UserResult {
	if email == "" || password == "" {
		return UserResult{Kind: SignInError, Err: models.NewValidationError("email and password are required")}
	}

	var user models.User
	if err := g.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResult{Kind: SignInError, Err: models.NewUnauthorizedError("incorrect email or password")}
		}
		return UserResult{Kind: SignInError, Err: models.NewInternalError(err)}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return UserResult{Kind: SignInError, Err: models.NewUnauthorizedError("incorrect email or password")}
	}

	if err := g.openSession(user.ID); err != nil {
		return UserResult{Kind: SignInError, Err: models.NewInternalError(err)}
	}

	return UserResult{Kind: SignInSuccess}
}

// SignOut closes the current session.
func (g *AuthGateway) SignOut(ctx context.Context) UserResult {
	if err := g.session.SetString(prefs.KeySessionToken, ""); err != nil {
		return UserResult{Kind: SignOutError, Err: models.NewInternalError(err)}
	}
	return UserResult{Kind: SignOutSuccess}
}

// UserExists checks whether an account is registered for the email.
func (g *AuthGateway) UserExists(ctx context.Context, email string) UserResult {
	var count int64
	if err := g.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return UserResult{Kind: UserExistsError, Err: models.NewInternalError(err)}
	}
	if count > 0 {
		return UserResult{Kind: UserFound}
	}
	return UserResult{Kind: UserNotFound}
}

// RecoverPassword mails a signed reset token to the account's address.
func (g *AuthGateway) RecoverPassword(ctx context.Context, email string) UserResult {
	var user models.User
	if err := g.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResult{Kind: RecoverPasswordError, Err: models.NewNotFoundError("User", email)}
		}
		return UserResult{Kind: RecoverPasswordError, Err: models.NewInternalError(err)}
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     user.ID,
		"iss":     sessionIssuer,
		"purpose": "password-reset",
		"iat":     now.Unix(),
		"exp":     now.Add(resetLifetime).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return UserResult{Kind: RecoverPasswordError, Err: models.NewInternalError(err)}
	}

	if err := g.mailer.SendPasswordReset(user.Email, token); err != nil {
		return UserResult{Kind: RecoverPasswordError, Err: models.NewInternalError(err)}
	}

	return UserResult{Kind: RecoverPasswordSuccess}
}

func (g *AuthGateway) openSession(userID string) error {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iss": sessionIssuer,
		"iat": now.Unix(),
		"exp": now.Add(sessionLifetime).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return err
	}
	return g.session.SetString(prefs.KeySessionToken, token)
}

func (g *AuthGateway) parseSession(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return g.secret, nil
	}, jwt.WithIssuer(sessionIssuer), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return "", errors.New("invalid session token")
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid session claims")
	}
	// Reset tokens share the signing key but carry a purpose claim; they
	// must never open a session.
	if _, special := claims["purpose"]; special {
		return "", errors.New("not a session token")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("invalid subject claim")
	}
	return sub, nil
}
