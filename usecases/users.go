package usecases

import (
	"regexp"
	"strings"

	"fitness-server/apperrors"
	"fitness-server/auth"
	"fitness-server/entities"
	"fitness-server/repositories"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type RegisterInput struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Weight   float64 `json:"weight"`
}

type UpdateUserInput struct {
	Name  *string
	Email *string
}

type UserUseCase struct {
	UserRepo   repositories.UserRepository
	Tokens     *auth.TokenManager
	BcryptCost int
}

func NewUserUseCase(userRepo repositories.UserRepository, tokens *auth.TokenManager, bcryptCost int) *UserUseCase {
	return &UserUseCase{
		UserRepo:   userRepo,
		Tokens:     tokens,
		BcryptCost: bcryptCost,
	}
}

// Register validates the input, hashes the password, and creates the user
// together with their initial weight entry in one transaction.
func (uc *UserUseCase) Register(in RegisterInput) (*entities.User, error) {
	if in.Name == "" {
		return nil, apperrors.E(apperrors.KindValidation, "name is required")
	}
	if in.Email == "" {
		return nil, apperrors.E(apperrors.KindValidation, "email is required")
	}
	if in.Password == "" {
		return nil, apperrors.E(apperrors.KindValidation, "password is required")
	}
	if in.Weight <= 0 {
		return nil, apperrors.E(apperrors.KindValidation, "weight is required")
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !emailPattern.MatchString(email) {
		return nil, apperrors.E(apperrors.KindValidation, "email is not valid")
	}
	if len(in.Password) < 6 {
		return nil, apperrors.E(apperrors.KindValidation, "password must be at least 6 characters")
	}

	// Advisory pre-check; the unique index on email is the real enforcement
	// under concurrent registrations.
	if _, err := uc.UserRepo.GetByEmail(email); err == nil {
		return nil, apperrors.E(apperrors.KindConflict, "email already registered")
	}

	hash, err := auth.HashPassword(in.Password, uc.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Name:         in.Name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := uc.UserRepo.CreateWithWeight(user, in.Weight); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and issues a signed token on success.
func (uc *UserUseCase) Login(email, password string) (string, error) {
	if email == "" {
		return "", apperrors.E(apperrors.KindValidation, "email is required")
	}
	if password == "" {
		return "", apperrors.E(apperrors.KindValidation, "password is required")
	}

	user, err := uc.UserRepo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", apperrors.E(apperrors.KindAuthentication, "user not found")
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", apperrors.E(apperrors.KindAuthentication, "password incorrect")
	}

	return uc.Tokens.Generate(user.ID, user.Name, user.Email)
}

// GetUser loads a user by id.
func (uc *UserUseCase) GetUser(id string) (*entities.User, error) {
	if id == "" {
		return nil, apperrors.E(apperrors.KindValidation, "user id is required")
	}
	return uc.UserRepo.GetByID(id)
}

// UpdateUser merges the allow-listed fields into the caller's own record.
func (uc *UserUseCase) UpdateUser(callerID, targetID string, in UpdateUserInput) (*entities.User, error) {
	if targetID == "" {
		return nil, apperrors.E(apperrors.KindValidation, "user id is required")
	}
	if callerID != targetID {
		return nil, apperrors.E(apperrors.KindUnauthorized, "cannot modify another user")
	}

	user, err := uc.UserRepo.GetByID(targetID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, apperrors.E(apperrors.KindValidation, "name cannot be empty")
		}
		user.Name = *in.Name
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if !emailPattern.MatchString(email) {
			return nil, apperrors.E(apperrors.KindValidation, "email is not valid")
		}
		user.Email = email
	}

	if err := uc.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the caller's own account and their tracker records.
func (uc *UserUseCase) DeleteUser(callerID, targetID string) error {
	if targetID == "" {
		return apperrors.E(apperrors.KindValidation, "user id is required")
	}
	if callerID != targetID {
		return apperrors.E(apperrors.KindUnauthorized, "cannot delete another user")
	}

	if _, err := uc.UserRepo.GetByID(targetID); err != nil {
		return err
	}
	return uc.UserRepo.Delete(targetID)
}
