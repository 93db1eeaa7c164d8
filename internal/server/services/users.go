// Package services contains the business logic between the HTTP layer and
// the repositories.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/signkeeper/internal/common"
	"github.com/dmitrijs2005/signkeeper/internal/dbx"
	"github.com/dmitrijs2005/signkeeper/internal/server/auth"
	sc "github.com/dmitrijs2005/signkeeper/internal/server/config"
	"github.com/dmitrijs2005/signkeeper/internal/server/mail"
	"github.com/dmitrijs2005/signkeeper/internal/server/models"
	"github.com/dmitrijs2005/signkeeper/internal/server/repositories/repomanager"
)

// UserService implements OTP-gated registration and session issuance.
type UserService struct {
	db              *sql.DB
	repomanager     repomanager.RepositoryManager
	notifier        mail.Notifier
	jwtSecret       []byte
	sessionValidity time.Duration
	otpValidity     time.Duration
}

func NewUserService(db *sql.DB, rm repomanager.RepositoryManager, config *sc.Config, notifier mail.Notifier) *UserService {
	return &UserService{
		db:              db,
		repomanager:     rm,
		notifier:        notifier,
		jwtSecret:       []byte(config.SecretKey),
		sessionValidity: config.SessionValidityDuration,
		otpValidity:     config.OTPValidityDuration,
	}
}

// RequestRegistration starts a registration: it stores a pending entry with
// a fresh one-time code and mails the code to the address. Any previous
// pending entry for the email is replaced, so at most one is outstanding.
//
// The pending entry is written before the mail is sent and is not rolled
// back on a notifier failure; the client simply retries registration.
func (s *UserService) RequestRegistration(ctx context.Context, name, email, password string) error {

	userRepo := s.repomanager.Users(s.db)

	_, err := userRepo.GetByEmail(ctx, email)
	if err == nil {
		return common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return common.ErrorInternal
	}

	code, err := common.MakeOTPCode()
	if err != nil {
		return common.ErrorInternal
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return common.ErrorInternal
	}

	payload, err := json.Marshal(models.CandidateUser{Name: name, Email: email, PasswordHash: hash})
	if err != nil {
		return common.ErrorInternal
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		regRepo := s.repomanager.Registrations(tx)
		if err := regRepo.DeleteByEmail(ctx, email); err != nil {
			return err
		}
		return regRepo.Create(ctx, &models.PendingRegistration{Email: email, Code: code, Payload: payload})
	})
	if err != nil {
		return fmt.Errorf("error storing pending registration: %w", err)
	}

	if err := s.notifier.SendRegistrationCode(ctx, email, code); err != nil {
		return fmt.Errorf("error sending registration code: %w", err)
	}

	return nil
}

func (s *UserService) checkCode(code, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(code), []byte(candidate)) == 1
}

// VerifyRegistration consumes a pending registration: on a matching,
// unexpired code it creates the user, deletes the pending entry and issues
// a session token. Absence, mismatch and expiry are indistinguishable to
// the caller.
func (s *UserService) VerifyRegistration(ctx context.Context, email, code string) (*models.User, string, error) {

	regRepo := s.repomanager.Registrations(s.db)

	reg, err := regRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorCodeInvalidOrExpired
		}
		return nil, "", common.ErrorInternal
	}

	if !s.checkCode(reg.Code, code) {
		return nil, "", common.ErrorCodeInvalidOrExpired
	}

	if time.Since(reg.CreatedAt) > s.otpValidity {
		return nil, "", common.ErrorCodeInvalidOrExpired
	}

	var candidate models.CandidateUser
	if err := json.Unmarshal(reg.Payload, &candidate); err != nil {
		return nil, "", common.ErrorInternal
	}

	user := &models.User{
		Name:         candidate.Name,
		Email:        candidate.Email,
		PasswordHash: candidate.PasswordHash,
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		user, err = s.repomanager.Users(tx).Create(ctx, user)
		if err != nil {
			return err
		}
		return s.repomanager.Registrations(tx).DeleteByEmail(ctx, email)
	})
	if err != nil {
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.sessionValidity)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// Login checks credentials and mints a session token. Unknown emails and
// wrong passwords both map to ErrorUnauthorized so the responses are
// indistinguishable.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", common.ErrorInternal
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.sessionValidity)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// Authenticate resolves a session token to a user id.
func (s *UserService) Authenticate(tokenString string) (string, error) {
	userID, err := auth.GetUserIDFromToken(tokenString, s.jwtSecret)
	if err != nil {
		return "", common.ErrorUnauthorized
	}
	return userID, nil
}

// SessionValidity exposes the configured token lifetime (used for cookies).
func (s *UserService) SessionValidity() time.Duration {
	return s.sessionValidity
}
