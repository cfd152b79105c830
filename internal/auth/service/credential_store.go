package service

import (
	"github.com/ishanperera/portfolio-backend/internal/auth/domain"
	"golang.org/x/crypto/bcrypt"
)

// CredentialStore holds the single administrator identity. There is no
// registration flow; the identity comes from configuration.
type CredentialStore struct {
	admin domain.AdminIdentity
}

func NewCredentialStore(admin domain.AdminIdentity) *CredentialStore {
	return &CredentialStore{admin: admin}
}

// Authenticate checks the candidate credentials against the stored
// identity. Unknown email and wrong password return the same error.
func (s *CredentialStore) Authenticate(email, password string) (*domain.AdminIdentity, error) {
	if email != s.admin.Email {
		// Burn a hash comparison anyway so both failure paths take
		// comparable time.
		_ = bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password))
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	admin := s.admin
	return &admin, nil
}
