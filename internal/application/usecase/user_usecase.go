package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/domain"
	"github.com/jhoicas/Concesionaria-api/internal/domain/authz"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
	"github.com/jhoicas/Concesionaria-api/pkg/logger"
)

// UserUseCase casos de uso CRUD para usuarios. El alta con rol arbitrario es
// de manager (ver también auth.Register); el rol es inmutable para no-managers.
type UserUseCase struct {
	users repository.UserRepository
	now   func() time.Time
	log   *logger.Logger
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository, now func() time.Time, log *logger.Logger) *UserUseCase {
	return &UserUseCase{users: users, now: now, log: log}
}

// Create da de alta un usuario con rol explícito (solo manager). El email debe
// ser único; el constraint de la DB es la garantía definitiva.
func (uc *UserUseCase) Create(actor domain.Actor, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if _, err := authorize(authz.ResourceUser, authz.ActionCreate, actor); err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleCustomer
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	uc.log.Info().Str("actor", actor.ID).Str("user", user.ID).Str("role", user.Role).Msg("usuario creado")
	return toUserResponse(user), nil
}

// List lista todos los usuarios (solo manager).
func (uc *UserUseCase) List(actor domain.Actor) ([]dto.UserResponse, error) {
	if _, err := authorize(authz.ResourceUser, authz.ActionList, actor); err != nil {
		return nil, err
	}
	list, err := uc.users.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// GetByID obtiene un usuario: manager ve a cualquiera, el resto solo a sí mismo.
func (uc *UserUseCase) GetByID(actor domain.Actor, id string) (*dto.UserResponse, error) {
	effect, err := authorize(authz.ResourceUser, authz.ActionGet, actor)
	if err != nil {
		return nil, err
	}
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if effect == authz.AllowOwn && !authz.OwnsUser(actor, user) {
		return nil, domain.ErrForbidden
	}
	return toUserResponse(user), nil
}

// Update actualiza un usuario: manager a cualquiera, el resto solo su propio
// perfil. Cambiar el rol requiere ser manager; cambiar el email re-verifica
// unicidad.
func (uc *UserUseCase) Update(actor domain.Actor, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	effect, err := authorize(authz.ResourceUser, authz.ActionUpdate, actor)
	if err != nil {
		return nil, err
	}
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if effect == authz.AllowOwn && !authz.OwnsUser(actor, user) {
		return nil, domain.ErrForbidden
	}
	if in.Role != nil && *in.Role != user.Role {
		if actor.Role != entity.RoleManager {
			return nil, domain.ErrForbidden
		}
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.Email != nil && *in.Email != user.Email {
		existing, err := uc.users.GetByEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		user.Email = *in.Email
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = uc.now()
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	uc.log.Info().Str("actor", actor.ID).Str("user", user.ID).Msg("usuario actualizado")
	return toUserResponse(user), nil
}

// Delete elimina un usuario (solo manager).
func (uc *UserUseCase) Delete(actor domain.Actor, id string) error {
	if _, err := authorize(authz.ResourceUser, authz.ActionDelete, actor); err != nil {
		return err
	}
	user, err := uc.users.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if err := uc.users.Delete(id); err != nil {
		return err
	}
	uc.log.Info().Str("actor", actor.ID).Str("user", id).Msg("usuario eliminado")
	return nil
}
