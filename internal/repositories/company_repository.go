package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/salaspot/rooms-service/internal/models"
)

// CompanyFilter narrows List results. Zero values mean "no filter".
type CompanyFilter struct {
	Estado string
	Nombre string // substring match, case-insensitive
	Limit  int
}

type CompanyRepository interface {
	Create(ctx context.Context, c *models.Company) error
	GetByID(ctx context.Context, id int64) (*models.Company, error)
	Update(ctx context.Context, c *models.Company) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f CompanyFilter) ([]*models.Company, error)
	ListByCreator(ctx context.Context, creatorID int64, f CompanyFilter) ([]*models.Company, error)
	SetStatus(ctx context.Context, id int64, estado string) error
}

type companyRepo struct {
	db DB
}

func NewCompanyRepository(db DB) CompanyRepository {
	return &companyRepo{db: db}
}

const baseSelectCompany = `
	SELECT id, nombre, direccion, ciudad, codigo_postal, telefono, email,
	       hora_apertura, hora_cierre, dias_operacion, creador_id, estado,
	       fecha_registro, logo_url, banner_url
	FROM empresas`

func (r *companyRepo) Create(ctx context.Context, c *models.Company) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO empresas (
			nombre, direccion, ciudad, codigo_postal, telefono, email,
			hora_apertura, hora_cierre, dias_operacion, creador_id, estado,
			fecha_registro, logo_url, banner_url
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		RETURNING id
	`,
		c.Nombre, c.Direccion, c.Ciudad, c.CodigoPostal, c.Telefono, c.Email,
		c.HoraApertura, c.HoraCierre, c.DiasOperacion, c.CreadorID, c.Estado,
		c.FechaRegistro, c.LogoURL, c.BannerURL,
	).Scan(&c.ID)
}

func (r *companyRepo) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	row := r.db.QueryRow(ctx, baseSelectCompany+" WHERE id=$1", id)
	return scanCompany(row)
}

func (r *companyRepo) Update(ctx context.Context, c *models.Company) error {
	_, err := r.db.Exec(ctx, `
		UPDATE empresas SET
			nombre=$1, direccion=$2, ciudad=$3, codigo_postal=$4, telefono=$5,
			email=$6, hora_apertura=$7, hora_cierre=$8, dias_operacion=$9,
			logo_url=$10, banner_url=$11
		WHERE id=$12
	`,
		c.Nombre, c.Direccion, c.Ciudad, c.CodigoPostal, c.Telefono,
		c.Email, c.HoraApertura, c.HoraCierre, c.DiasOperacion,
		c.LogoURL, c.BannerURL, c.ID,
	)
	return err
}

func (r *companyRepo) Delete(ctx context.Context, id int64) error {
	// validaciones_empresas and salas rows go with it via ON DELETE CASCADE
	_, err := r.db.Exec(ctx, `DELETE FROM empresas WHERE id=$1`, id)
	return err
}

func (r *companyRepo) List(ctx context.Context, f CompanyFilter) ([]*models.Company, error) {
	query := baseSelectCompany + " WHERE 1=1"
	args := []interface{}{}

	if f.Estado != "" {
		args = append(args, f.Estado)
		query += fmt.Sprintf(" AND estado=$%d", len(args))
	}
	if f.Nombre != "" {
		args = append(args, "%"+f.Nombre+"%")
		query += fmt.Sprintf(" AND nombre ILIKE $%d", len(args))
	}
	args = append(args, listLimit(f.Limit))
	query += fmt.Sprintf(" ORDER BY nombre ASC LIMIT $%d", len(args))

	return r.queryCompanies(ctx, query, args...)
}

func (r *companyRepo) ListByCreator(ctx context.Context, creatorID int64, f CompanyFilter) ([]*models.Company, error) {
	query := baseSelectCompany + " WHERE creador_id=$1"
	args := []interface{}{creatorID}

	if f.Estado != "" {
		args = append(args, f.Estado)
		query += fmt.Sprintf(" AND estado=$%d", len(args))
	}
	args = append(args, listLimit(f.Limit))
	query += fmt.Sprintf(" ORDER BY nombre ASC LIMIT $%d", len(args))

	return r.queryCompanies(ctx, query, args...)
}

func (r *companyRepo) SetStatus(ctx context.Context, id int64, estado string) error {
	tag, err := r.db.Exec(ctx, `UPDATE empresas SET estado=$1 WHERE id=$2`, estado, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *companyRepo) queryCompanies(ctx context.Context, query string, args ...interface{}) ([]*models.Company, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []*models.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func scanCompany(row pgx.Row) (*models.Company, error) {
	var c models.Company
	err := row.Scan(
		&c.ID, &c.Nombre, &c.Direccion, &c.Ciudad, &c.CodigoPostal, &c.Telefono,
		&c.Email, &c.HoraApertura, &c.HoraCierre, &c.DiasOperacion, &c.CreadorID,
		&c.Estado, &c.FechaRegistro, &c.LogoURL, &c.BannerURL,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

const defaultListLimit = 15

func listLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	return limit
}
