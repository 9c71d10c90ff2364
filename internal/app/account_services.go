package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/accounts"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/config"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/logger"
)

// AvatarFormField is the multipart field carrying the profile picture
const AvatarFormField = "avatar"

// MaxAvatarSize is the largest accepted profile picture in bytes
const MaxAvatarSize = 2 << 20

var allowedAvatarTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
	"image/webp": true,
}

// authService implements the AuthService interface
type authService struct {
	userRepo    accounts.UserRepository
	sessionRepo accounts.SessionRepository
	settings    config.AuthSettings
	now         func() time.Time
	logger      logger.Logger
}

// NewAuthService creates a new authService instance
func NewAuthService(
	userRepo accounts.UserRepository,
	sessionRepo accounts.SessionRepository,
	settings *config.AuthSettings,
	logger logger.Logger,
) (accounts.AuthService, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid auth settings: %w", err)
	}
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		settings:    *settings,
		now:         time.Now,
		logger:      logger,
	}, nil
}

func (s *authService) Register(ctx context.Context, reg *accounts.Registration) (*accounts.User, error) {
	reg.Email = strings.ToLower(strings.TrimSpace(reg.Email))
	if err := reg.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), s.settings.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &accounts.User{
		ID:              uuid.New().String(),
		Email:           reg.Email,
		DisplayName:     reg.DisplayName,
		PasswordHash:    string(hash),
		PostalCode:      reg.PostalCode,
		DateTimeCreated: s.now().UTC(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*accounts.Session, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, accounts.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, accounts.ErrInvalidCredentials
	}

	now := s.now().UTC()
	session := &accounts.Session{
		Token:           uuid.New().String(),
		UserID:          user.ID,
		ExpiresAt:       now.Add(s.settings.SessionTTL),
		DateTimeCreated: now,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("User logged in ", user.ID)
	return session, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.sessionRepo.DeleteByToken(ctx, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Authenticate resolves token to its user. Expired sessions are removed.
func (s *authService) Authenticate(ctx context.Context, token string) (*accounts.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}

	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if session.Expired(s.now()) {
		if err := s.sessionRepo.DeleteByToken(ctx, token); err != nil {
			s.logger.Warn("Failed to delete expired session: ", err)
		}
		return nil, domain.ErrUnauthorized
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// profileService implements the ProfileService interface
type profileService struct {
	userRepo        accounts.UserRepository
	sessionRepo     accounts.SessionRepository
	avatarConnector accounts.AvatarConnector
	logger          logger.Logger
}

// NewProfileService creates a new profileService instance
func NewProfileService(
	userRepo accounts.UserRepository,
	sessionRepo accounts.SessionRepository,
	avatarConnector accounts.AvatarConnector,
	logger logger.Logger,
) (accounts.ProfileService, error) {
	return &profileService{
		userRepo:        userRepo,
		sessionRepo:     sessionRepo,
		avatarConnector: avatarConnector,
		logger:          logger,
	}, nil
}

func (s *profileService) Get(ctx context.Context, userID string) (*accounts.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return user, nil
}

func (s *profileService) Update(ctx context.Context, userID string, update *accounts.ProfileUpdate) (*accounts.User, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	update.Apply(user)
	if err := s.userRepo.UpdateByID(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

// Delete removes sessions, avatar and account in that order. A missing
// avatar blob is ignored.
func (s *profileService) Delete(ctx context.Context, userID string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}

	if err := s.sessionRepo.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete sessions: %w", err)
	}

	if user.AvatarBlob != nil {
		if err := s.avatarConnector.Delete(ctx, *user.AvatarBlob); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("failed to delete avatar: %w", err)
		}
	}

	if err := s.userRepo.DeleteByID(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	s.logger.Info("Deleted user ", userID)
	return nil
}

// UploadAvatar stores the single image found in the avatar field of form
// and replaces the previous picture
func (s *profileService) UploadAvatar(ctx context.Context, userID string, form *multipart.Form) (*accounts.User, error) {
	if form == nil || len(form.File[AvatarFormField]) != 1 {
		return nil, fmt.Errorf("%w: exactly one file expected in field %q", domain.ErrInvalidInput, AvatarFormField)
	}
	fileHeader := form.File[AvatarFormField][0]
	if fileHeader.Size > MaxAvatarSize {
		return nil, fmt.Errorf("%w: avatar exceeds %d bytes", domain.ErrInvalidInput, MaxAvatarSize)
	}

	content, err := readFormFile(fileHeader)
	if err != nil {
		return nil, err
	}

	contentType := http.DetectContentType(content)
	if !allowedAvatarTypes[contentType] {
		return nil, fmt.Errorf("%w: unsupported avatar type %s", domain.ErrInvalidInput, contentType)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	blobName := fmt.Sprintf("%s/%s", userID, uuid.New().String())
	if err := s.avatarConnector.Upload(ctx, blobName, content, contentType); err != nil {
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	previous := user.AvatarBlob
	user.AvatarBlob = &blobName
	user.AvatarContentType = &contentType
	if err := s.userRepo.UpdateByID(ctx, user); err != nil {
		if delErr := s.avatarConnector.Delete(ctx, blobName); delErr != nil {
			s.logger.Warn("Failed to remove orphaned avatar: ", delErr)
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	if previous != nil {
		if err := s.avatarConnector.Delete(ctx, *previous); err != nil && !errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("Failed to delete previous avatar: ", err)
		}
	}
	return user, nil
}

func (s *profileService) DownloadAvatar(ctx context.Context, userID string) (*accounts.Avatar, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if user.AvatarBlob == nil {
		return nil, fmt.Errorf("avatar of user %s: %w", userID, domain.ErrNotFound)
	}

	content, err := s.avatarConnector.Download(ctx, *user.AvatarBlob)
	if err != nil {
		return nil, fmt.Errorf("failed to download avatar: %w", err)
	}

	contentType := http.DetectContentType(content)
	if user.AvatarContentType != nil {
		contentType = *user.AvatarContentType
	}
	return &accounts.Avatar{Content: content, ContentType: contentType}, nil
}

func readFormFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", fileHeader.Filename, err)
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, MaxAvatarSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fileHeader.Filename, err)
	}
	if len(content) > MaxAvatarSize {
		return nil, fmt.Errorf("%w: avatar exceeds %d bytes", domain.ErrInvalidInput, MaxAvatarSize)
	}
	return content, nil
}

// PurgeExpiredSessions deletes the sessions expired at now
func PurgeExpiredSessions(ctx context.Context, sessionRepo accounts.SessionRepository, now time.Time, logger logger.Logger) error {
	removed, err := sessionRepo.DeleteExpired(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to purge expired sessions: %w", err)
	}
	if removed > 0 {
		logger.Info(fmt.Sprintf("Purged %d expired sessions", removed))
	}
	return nil
}
