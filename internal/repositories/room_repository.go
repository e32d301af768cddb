package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/salaspot/rooms-service/internal/models"
)

// RoomFilter narrows List results. Disponible is a pointer so "no filter" and
// "only unavailable" stay distinguishable.
type RoomFilter struct {
	Disponible *bool
	Tipo       string
	Limit      int
}

// RoomSearch holds the criteria for the search endpoint. Zero values mean
// "no constraint".
type RoomSearch struct {
	Tipo         string
	CapacidadMin int
	PrecioMax    float64
	Ciudad       string
	Disponible   *bool
	Limit        int
}

type RoomRepository interface {
	Create(ctx context.Context, s *models.Room) error
	GetByID(ctx context.Context, id int64) (*models.Room, error)
	Update(ctx context.Context, s *models.Room) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f RoomFilter) ([]*models.Room, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*models.Room, error)
	Search(ctx context.Context, s RoomSearch) ([]*models.Room, error)
}

type roomRepo struct {
	db DB
}

func NewRoomRepository(db DB) RoomRepository {
	return &roomRepo{db: db}
}

const baseSelectRoom = `
	SELECT id, empresa_id, nombre, tipo, capacidad, precio_hora,
	       equipamiento, disponible, imagen_url
	FROM salas`

func (r *roomRepo) Create(ctx context.Context, s *models.Room) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO salas (empresa_id, nombre, tipo, capacidad, precio_hora, equipamiento, disponible, imagen_url)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id
	`,
		s.EmpresaID, s.Nombre, s.Tipo, s.Capacidad, s.PrecioHora,
		s.Equipamiento, s.Disponible, s.ImagenURL,
	).Scan(&s.ID)
}

func (r *roomRepo) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	row := r.db.QueryRow(ctx, baseSelectRoom+" WHERE id=$1", id)
	return scanRoom(row)
}

func (r *roomRepo) Update(ctx context.Context, s *models.Room) error {
	_, err := r.db.Exec(ctx, `
		UPDATE salas SET
			nombre=$1, tipo=$2, capacidad=$3, precio_hora=$4,
			equipamiento=$5, disponible=$6, imagen_url=$7
		WHERE id=$8
	`,
		s.Nombre, s.Tipo, s.Capacidad, s.PrecioHora,
		s.Equipamiento, s.Disponible, s.ImagenURL, s.ID,
	)
	return err
}

func (r *roomRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM salas WHERE id=$1`, id)
	return err
}

func (r *roomRepo) List(ctx context.Context, f RoomFilter) ([]*models.Room, error) {
	query := baseSelectRoom + " WHERE 1=1"
	args := []interface{}{}

	if f.Disponible != nil {
		args = append(args, *f.Disponible)
		query += fmt.Sprintf(" AND disponible=$%d", len(args))
	}
	if f.Tipo != "" {
		args = append(args, f.Tipo)
		query += fmt.Sprintf(" AND tipo=$%d", len(args))
	}
	args = append(args, listLimit(f.Limit))
	query += fmt.Sprintf(" ORDER BY nombre ASC LIMIT $%d", len(args))

	return r.queryRooms(ctx, query, args...)
}

func (r *roomRepo) ListByCompany(ctx context.Context, companyID int64) ([]*models.Room, error) {
	return r.queryRooms(ctx, baseSelectRoom+" WHERE empresa_id=$1 ORDER BY nombre ASC", companyID)
}

func (r *roomRepo) Search(ctx context.Context, s RoomSearch) ([]*models.Room, error) {
	// ciudad lives on the parent company, so search joins through empresas
	query := `
		SELECT s.id, s.empresa_id, s.nombre, s.tipo, s.capacidad, s.precio_hora,
		       s.equipamiento, s.disponible, s.imagen_url
		FROM salas s
		JOIN empresas e ON e.id = s.empresa_id
		WHERE 1=1`
	args := []interface{}{}

	if s.Tipo != "" {
		args = append(args, s.Tipo)
		query += fmt.Sprintf(" AND s.tipo=$%d", len(args))
	}
	if s.CapacidadMin > 0 {
		args = append(args, s.CapacidadMin)
		query += fmt.Sprintf(" AND s.capacidad >= $%d", len(args))
	}
	if s.PrecioMax > 0 {
		args = append(args, s.PrecioMax)
		query += fmt.Sprintf(" AND s.precio_hora <= $%d", len(args))
	}
	if s.Ciudad != "" {
		args = append(args, s.Ciudad)
		query += fmt.Sprintf(" AND e.ciudad ILIKE $%d", len(args))
	}
	if s.Disponible != nil {
		args = append(args, *s.Disponible)
		query += fmt.Sprintf(" AND s.disponible=$%d", len(args))
	}
	args = append(args, listLimit(s.Limit))
	query += fmt.Sprintf(" ORDER BY s.precio_hora ASC LIMIT $%d", len(args))

	return r.queryRooms(ctx, query, args...)
}

func (r *roomRepo) queryRooms(ctx context.Context, query string, args ...interface{}) ([]*models.Room, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []*models.Room
	for rows.Next() {
		s, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, s)
	}
	return rooms, rows.Err()
}

func scanRoom(row pgx.Row) (*models.Room, error) {
	var s models.Room
	err := row.Scan(
		&s.ID, &s.EmpresaID, &s.Nombre, &s.Tipo, &s.Capacidad,
		&s.PrecioHora, &s.Equipamiento, &s.Disponible, &s.ImagenURL,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
