package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/salaspot/rooms-service/internal/models"
)

type CompanyValidationRepository interface {
	Create(ctx context.Context, v *models.CompanyValidation) error
	GetByCompanyID(ctx context.Context, companyID int64) (*models.CompanyValidation, error)
	Update(ctx context.Context, v *models.CompanyValidation) error
}

type companyValidationRepo struct {
	db DB
}

func NewCompanyValidationRepository(db DB) CompanyValidationRepository {
	return &companyValidationRepo{db: db}
}

const baseSelectValidation = `
	SELECT id, empresa_id, admin_id, comentarios, estado, fecha_solicitud, fecha_resolucion
	FROM validaciones_empresas`

func (r *companyValidationRepo) Create(ctx context.Context, v *models.CompanyValidation) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO validaciones_empresas (empresa_id, admin_id, comentarios, estado, fecha_solicitud, fecha_resolucion)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`,
		v.EmpresaID, v.AdminID, v.Comentarios, v.Estado, v.FechaSolicitud, v.FechaResolucion,
	).Scan(&v.ID)
}

func (r *companyValidationRepo) GetByCompanyID(ctx context.Context, companyID int64) (*models.CompanyValidation, error) {
	row := r.db.QueryRow(ctx, baseSelectValidation+" WHERE empresa_id=$1 LIMIT 1", companyID)

	var v models.CompanyValidation
	err := row.Scan(
		&v.ID, &v.EmpresaID, &v.AdminID, &v.Comentarios,
		&v.Estado, &v.FechaSolicitud, &v.FechaResolucion,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *companyValidationRepo) Update(ctx context.Context, v *models.CompanyValidation) error {
	_, err := r.db.Exec(ctx, `
		UPDATE validaciones_empresas SET
			admin_id=$1, comentarios=$2, estado=$3, fecha_resolucion=$4
		WHERE id=$5
	`,
		v.AdminID, v.Comentarios, v.Estado, v.FechaResolucion, v.ID,
	)
	return err
}
