package services

import (
	"errors"
	"strings"
	"time"

	"github.com/rangehub/member_service/internal/domain"
	"github.com/rangehub/member_service/internal/dto"
	"github.com/rangehub/member_service/internal/helper"
	"github.com/rangehub/member_service/internal/repository"
)

type UserService interface {
	Create(actorID uint, input dto.UserCreateRequest) (uint, error)
	List(onlyEnabled bool, search string, sort dto.SortInput) ([]dto.UserResponse, error)
	Get(id uint) (*dto.UserResponse, error)
	FindPermissions(userID uint) ([]string, error)
	Update(actorID, userID uint, input dto.UserUpdateRequest) (uint, error)
	Login(input dto.UserLogin) (*domain.User, error)
}

type userService struct {
	users     repository.UserRepository
	userPerms repository.UserPermissionRepository
	validator *PermissionValidator
	audit     AuditTrail
	auth      helper.Auth
}

func NewUserService(
	users repository.UserRepository,
	userPerms repository.UserPermissionRepository,
	catalog repository.PermissionRepository,
	audit AuditTrail,
	auth helper.Auth,
) UserService {
	return &userService{
		users:     users,
		userPerms: userPerms,
		validator: NewPermissionValidator(catalog),
		audit:     audit,
		auth:      auth,
	}
}

func (u *userService) Create(actorID uint, input dto.UserCreateRequest) (uint, error) {
	if err := u.checkActor(actorID); err != nil {
		return 0, err
	}

	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(strings.ToLower(input.Email))
	username := strings.TrimSpace(input.Username)

	if name == "" || email == "" || username == "" || strings.TrimSpace(input.Password) == "" {
		return 0, errors.New("invalid inputs")
	}

	existingByUsername, err := u.users.FindByUsername(username)
	if err != nil {
		return 0, err
	}
	if existingByUsername != nil {
		return 0, helper.ErrUsernameInUse
	}

	existingByEmail, err := u.users.FindByEmail(email)
	if err != nil {
		return 0, err
	}
	if existingByEmail != nil {
		return 0, helper.ErrEmailInUse
	}

	// gate before anything is persisted: a single unknown code rejects all
	accepted, unknown, err := u.validator.Validate(input.Permissions)
	if err != nil {
		return 0, err
	}
	if len(unknown) > 0 {
		return 0, &helper.UnknownPermissionsError{Codes: unknown}
	}

	passwordHash, err := u.auth.HashPassword(input.Password)
	if err != nil {
		return 0, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
	}
	user.Lifecycle = helper.ResolveLifecycle(input.Disabled, actorID, nil)

	created, err := u.users.Create(user)
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return 0, helper.ErrUsernameInUse
		}
		return 0, err
	}
	u.audit.Record(domain.TableUsers, domain.AuditActionInsert, created.ID, actorID)

	if len(accepted) > 0 {
		permissionIDs := make([]uint, 0, len(accepted))
		for _, p := range accepted {
			permissionIDs = append(permissionIDs, p.ID)
		}
		if err := u.userPerms.ReplaceUserPermissions(created.ID, permissionIDs); err != nil {
			return 0, err
		}
	}

	return created.ID, nil
}

func (u *userService) List(onlyEnabled bool, search string, sort dto.SortInput) ([]dto.UserResponse, error) {
	users, err := u.users.FindAll(repository.ListFilter{
		OnlyEnabled: onlyEnabled,
		Search:      search,
	}, sort)
	if err != nil {
		return nil, err
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(&user, nil))
	}
	return out, nil
}

func (u *userService) Get(id uint) (*dto.UserResponse, error) {
	if id == 0 {
		return nil, errors.New("invalid user id")
	}

	user, err := u.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, helper.ErrNotFound
	}

	permissions, err := u.FindPermissions(id)
	if err != nil {
		return nil, err
	}

	resp := toUserResponse(user, permissions)
	return &resp, nil
}

func (u *userService) FindPermissions(userID uint) ([]string, error) {
	if userID == 0 {
		return nil, errors.New("invalid user id")
	}

	permissions, err := u.userPerms.GetPermissionsByUserID(userID)
	if err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(permissions))
	for _, p := range permissions {
		codes = append(codes, p.Code)
	}
	return codes, nil
}

func (u *userService) Update(actorID, userID uint, input dto.UserUpdateRequest) (uint, error) {
	if userID == 0 {
		return 0, errors.New("invalid user id")
	}
	if err := u.checkActor(actorID); err != nil {
		return 0, err
	}

	user, err := u.users.FindByID(userID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, helper.ErrNotFound
	}

	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		if username != "" && username != user.Username {
			existing, err := u.users.FindByUsername(username)
			if err != nil {
				return 0, err
			}
			if existing != nil {
				return 0, helper.ErrUsernameInUse
			}
			user.Username = username
		}
	}

	if input.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*input.Email))
		if email != "" && email != user.Email {
			existing, err := u.users.FindByEmail(email)
			if err != nil {
				return 0, err
			}
			if existing != nil {
				return 0, helper.ErrEmailInUse
			}
			user.Email = email
		}
	}

	// changing the password requires the current one to match
	password := input.Password
	if input.NewPassword != nil {
		if input.Password == nil {
			return 0, errors.New("current password is required")
		}
		if err := u.auth.VerifyPassword(*input.Password, user.PasswordHash); err != nil {
			return 0, errors.New("current password does not match")
		}
		password = input.NewPassword
	}

	accepted, unknown, err := u.validator.Validate(input.Permissions)
	if err != nil {
		return 0, err
	}
	if len(unknown) > 0 {
		return 0, &helper.UnknownPermissionsError{Codes: unknown}
	}

	if password != nil && strings.TrimSpace(*password) != "" {
		passwordHash, err := u.auth.HashPassword(*password)
		if err != nil {
			return 0, err
		}
		user.PasswordHash = passwordHash
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}

	user.Lifecycle = helper.ResolveLifecycle(input.Disabled, actorID, &user.Lifecycle)

	if err := u.users.Save(user); err != nil {
		if helper.IsUniqueViolation(err) {
			return 0, helper.ErrUsernameInUse
		}
		return 0, err
	}
	u.audit.Record(domain.TableUsers, domain.AuditActionUpdate, user.ID, actorID)

	if input.Permissions != nil {
		permissionIDs := make([]uint, 0, len(accepted))
		for _, p := range accepted {
			permissionIDs = append(permissionIDs, p.ID)
		}
		if err := u.userPerms.ReplaceUserPermissions(user.ID, permissionIDs); err != nil {
			return 0, err
		}
	}

	return user.ID, nil
}

func (u *userService) Login(input dto.UserLogin) (*domain.User, error) {
	username := strings.TrimSpace(input.Username)
	password := strings.TrimSpace(input.Password)

	if username == "" || password == "" {
		return nil, errors.New("invalid username or password")
	}

	user, err := u.users.FindByUsername(username)
	if err != nil || user == nil {
		return nil, errors.New("invalid username or password")
	}

	if user.Disabled {
		return nil, errors.New("account is disabled")
	}

	if err := u.auth.VerifyPassword(password, user.PasswordHash); err != nil {
		return nil, errors.New("invalid username or password")
	}

	return user, nil
}

func (u *userService) checkActor(actorID uint) error {
	if actorID == 0 {
		return errors.New("request user not found")
	}
	actor, err := u.users.FindByID(actorID)
	if err != nil {
		return err
	}
	if actor == nil {
		return errors.New("request user not found")
	}
	return nil
}

func toUserResponse(user *domain.User, permissions []string) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Username:    user.Username,
		Disabled:    user.Disabled,
		Permissions: permissions,
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
	}
}
