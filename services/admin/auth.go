package admin

import (
	"context"
	"fmt"

	"sevasetu/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Login checks the shared admin password and issues a session token.
func (s *DefaultAdminService) Login(ctx context.Context, password string) (string, error) {
	if s.PasswordHash == "" || password == "" {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.PasswordHash), []byte(password)); err != nil {
		s.logger().Warn("Admin login rejected")
		return "", ErrInvalidCredentials
	}
	token, err := utils.GenerateToken(utils.AdminRole, utils.AdminRole, s.TokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to issue admin token: %w", err)
	}
	s.logger().Info("Admin logged in", zap.Duration("ttl", s.TokenTTL))
	return token, nil
}
