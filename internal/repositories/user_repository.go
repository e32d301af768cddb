package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/salaspot/rooms-service/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, limit int) ([]*models.User, error)
	UpdatePhotoURL(ctx context.Context, id int64, url string) error
}

type userRepo struct {
	db DB
}

func NewUserRepository(db DB) UserRepository {
	return &userRepo{db: db}
}

const baseSelectUser = `
	SELECT id, nombre, apellido, email, password, telefono, rol, fecha_registro, foto_url
	FROM usuarios`

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO usuarios (nombre, apellido, email, password, telefono, rol, fecha_registro)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`,
		u.Nombre, u.Apellido, u.Email, u.Password, u.Telefono, u.Rol, u.FechaRegistro,
	).Scan(&u.ID)
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser+" WHERE id=$1", id)
	return scanUser(row)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser+" WHERE email=$1", email)
	return scanUser(row)
}

func (r *userRepo) List(ctx context.Context, limit int) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, baseSelectUser+" ORDER BY fecha_registro DESC LIMIT $1", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepo) UpdatePhotoURL(ctx context.Context, id int64, url string) error {
	_, err := r.db.Exec(ctx, `UPDATE usuarios SET foto_url=$1 WHERE id=$2`, url, id)
	return err
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Nombre, &u.Apellido, &u.Email, &u.Password,
		&u.Telefono, &u.Rol, &u.FechaRegistro, &u.FotoURL,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
