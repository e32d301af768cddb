package services

import (
	"context"
	"net/http"

	"github.com/salaspot/rooms-service/internal/models"
	"github.com/salaspot/rooms-service/internal/repositories"
	"github.com/salaspot/rooms-service/internal/utils"
)

// RoomInput carries the mutable room fields. On update, nil pointers leave
// the stored value untouched.
type RoomInput struct {
	EmpresaID    *int64
	Nombre       *string
	Tipo         *string
	Capacidad    *int
	PrecioHora   *float64
	Equipamiento *string
	Disponible   *bool
}

type RoomService interface {
	List(ctx context.Context, f repositories.RoomFilter) ([]*models.Room, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*models.Room, error)
	Search(ctx context.Context, s repositories.RoomSearch) ([]*models.Room, error)
	Create(ctx context.Context, actor *models.User, input RoomInput) (*models.Room, error)
	Get(ctx context.Context, id int64) (*models.Room, error)
	Update(ctx context.Context, actor *models.User, id int64, input RoomInput) (*models.Room, error)
	Delete(ctx context.Context, actor *models.User, id int64) error
	SetImage(ctx context.Context, actor *models.User, id int64, url string) (*models.Room, error)
}

type roomService struct {
	rooms     repositories.RoomRepository
	companies repositories.CompanyRepository
}

func NewRoomService(rooms repositories.RoomRepository, companies repositories.CompanyRepository) RoomService {
	return &roomService{rooms: rooms, companies: companies}
}

func (s *roomService) List(ctx context.Context, f repositories.RoomFilter) ([]*models.Room, error) {
	rooms, err := s.rooms.List(ctx, f)
	if err != nil {
		return nil, internalErr("Could not list rooms", err)
	}
	return rooms, nil
}

func (s *roomService) ListByCompany(ctx context.Context, companyID int64) ([]*models.Room, error) {
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, internalErr("Could not fetch company", err)
	}
	if company == nil {
		return nil, notFoundErr("Company not found")
	}
	rooms, err := s.rooms.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, internalErr("Could not list rooms", err)
	}
	return rooms, nil
}

func (s *roomService) Search(ctx context.Context, search repositories.RoomSearch) ([]*models.Room, error) {
	rooms, err := s.rooms.Search(ctx, search)
	if err != nil {
		return nil, internalErr("Room search failed", err)
	}
	return rooms, nil
}

func (s *roomService) Create(ctx context.Context, actor *models.User, input RoomInput) (*models.Room, error) {
	companyID := utils.Val(input.EmpresaID)
	if _, err := s.ownedParent(ctx, actor, companyID, "add rooms to"); err != nil {
		return nil, err
	}

	disponible := true
	if input.Disponible != nil {
		disponible = *input.Disponible
	}
	room := &models.Room{
		EmpresaID:    companyID,
		Nombre:       utils.Val(input.Nombre),
		Tipo:         utils.Val(input.Tipo),
		Capacidad:    utils.Val(input.Capacidad),
		PrecioHora:   utils.Val(input.PrecioHora),
		Equipamiento: input.Equipamiento,
		Disponible:   disponible,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, internalErr("Could not create room", err)
	}
	return room, nil
}

func (s *roomService) Get(ctx context.Context, id int64) (*models.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, internalErr("Could not fetch room", err)
	}
	if room == nil {
		return nil, notFoundErr("Room not found")
	}
	return room, nil
}

func (s *roomService) Update(ctx context.Context, actor *models.User, id int64, input RoomInput) (*models.Room, error) {
	room, err := s.ownedRoom(ctx, actor, id, "update")
	if err != nil {
		return nil, err
	}

	applyIfSet(&room.Nombre, input.Nombre)
	applyIfSet(&room.Tipo, input.Tipo)
	if input.Capacidad != nil {
		room.Capacidad = *input.Capacidad
	}
	if input.PrecioHora != nil {
		room.PrecioHora = *input.PrecioHora
	}
	if input.Equipamiento != nil {
		room.Equipamiento = input.Equipamiento
	}
	if input.Disponible != nil {
		room.Disponible = *input.Disponible
	}

	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, internalErr("Could not update room", err)
	}
	return room, nil
}

func (s *roomService) Delete(ctx context.Context, actor *models.User, id int64) error {
	if _, err := s.ownedRoom(ctx, actor, id, "delete"); err != nil {
		return err
	}
	if err := s.rooms.Delete(ctx, id); err != nil {
		return internalErr("Could not delete room", err)
	}
	return nil
}

func (s *roomService) SetImage(ctx context.Context, actor *models.User, id int64, url string) (*models.Room, error) {
	room, err := s.ownedRoom(ctx, actor, id, "update")
	if err != nil {
		return nil, err
	}
	room.ImagenURL = &url
	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, internalErr("Could not update room", err)
	}
	return room, nil
}

// ownedRoom fetches the room and enforces ownership through its parent
// company.
func (s *roomService) ownedRoom(ctx context.Context, actor *models.User, id int64, action string) (*models.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, internalErr("Could not fetch room", err)
	}
	if room == nil {
		return nil, notFoundErr("Room not found")
	}
	if _, err := s.ownedParent(ctx, actor, room.EmpresaID, action); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *roomService) ownedParent(ctx context.Context, actor *models.User, companyID int64, action string) (*models.Company, error) {
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, internalErr("Could not fetch company", err)
	}
	if company == nil {
		return nil, notFoundErr("Company not found")
	}
	if company.CreadorID != actor.ID && !actor.HasRole(models.RoleAdmin) {
		return nil, utils.NewAppError(
			http.StatusForbidden, utils.ErrCodeForbidden,
			"Not allowed to "+action+" this company's rooms", utils.ErrForbidden,
		)
	}
	return company, nil
}
