package service

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"bread-orders/internal/domain"
	"bread-orders/pkg/utils"
)

const minPasswordLen = 8

type UserService struct {
	users domain.UserRepository
	log   *zap.Logger
	now   func() time.Time
}

func NewUserService(users domain.UserRepository, log *zap.Logger) *UserService {
	return &UserService{users: users, log: log, now: time.Now}
}

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	Password string
}

// Register creates a new account. The email is normalized and checked
// for duplicates query-before-insert; against a store without
// transactions two simultaneous registrations can still race, the
// unique index is the backstop.
func (s *UserService) Register(in RegisterInput) (string, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return "", domain.Validation("Nom, email et mot de passe requis")
	}
	email := NormalizeEmail(in.Email)
	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return "", domain.Internal("recherche utilisateur impossible", err)
	}
	if existing != nil {
		return "", domain.Conflict("Un compte existe déjà avec cet email")
	}
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return "", domain.Internal("hachage du mot de passe impossible", err)
	}
	u := &domain.User{
		ID:           utils.NewID(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}
	if err := s.users.Create(u); err != nil {
		return "", domain.Internal("enregistrement de l'utilisateur impossible", err)
	}
	return u.ID, nil
}

// FindByEmail is the login lookup: it resolves a normalized email to a
// profile. No password is verified on this path; change-password is the
// only flow that checks the stored hash.
func (s *UserService) FindByEmail(email string) (*domain.User, error) {
	if email == "" {
		return nil, domain.Validation("Email requis")
	}
	u, err := s.users.FindByEmail(NormalizeEmail(email))
	if err != nil {
		return nil, domain.Internal("recherche utilisateur impossible", err)
	}
	if u == nil {
		return nil, domain.NotFound("Utilisateur introuvable")
	}
	return u, nil
}

// ChangePassword replaces a user's hash after verifying the current
// password. The stored hash is never touched on a failed verification.
func (s *UserService) ChangePassword(userID, currentPassword, newPassword string) error {
	if userID == "" || currentPassword == "" || newPassword == "" {
		return domain.Validation("userId, mot de passe actuel et nouveau mot de passe requis")
	}
	if len(newPassword) < minPasswordLen {
		return domain.Validation("Le nouveau mot de passe doit contenir au moins 8 caractères")
	}
	u, err := s.users.FindByID(userID)
	if err != nil {
		return domain.Internal("recherche utilisateur impossible", err)
	}
	if u == nil {
		return domain.NotFound("Utilisateur introuvable")
	}
	if !utils.CheckPassword(currentPassword, u.PasswordHash) {
		return domain.Unauthorized("Mot de passe actuel incorrect")
	}
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return domain.Internal("hachage du mot de passe impossible", err)
	}
	changedAt := s.now()
	u.PasswordHash = hash
	u.PasswordChangedAt = &changedAt
	if err := s.users.Update(u); err != nil {
		return domain.Internal("mise à jour du mot de passe impossible", err)
	}
	return nil
}

// UpdateProfile applies the provided, non-empty name and phone after
// trimming.
func (s *UserService) UpdateProfile(userID, name, phone string) (map[string]string, error) {
	if userID == "" {
		return nil, domain.Validation("userId requis")
	}
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" && phone == "" {
		return nil, domain.Validation("Aucune donnée à mettre à jour")
	}
	u, err := s.users.FindByID(userID)
	if err != nil {
		return nil, domain.Internal("recherche utilisateur impossible", err)
	}
	if u == nil {
		return nil, domain.NotFound("Utilisateur introuvable")
	}
	applied := map[string]string{}
	if name != "" {
		u.Name = name
		applied["name"] = name
	}
	if phone != "" {
		u.Phone = phone
		applied["phone"] = phone
	}
	if err := s.users.Update(u); err != nil {
		return nil, domain.Internal("mise à jour du profil impossible", err)
	}
	return applied, nil
}

// NormalizeEmail trims and lowercases an address; the result is the
// de-facto unique key for user records.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
