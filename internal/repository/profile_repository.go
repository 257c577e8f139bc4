package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/idealiza/admin-service/internal/domain"
)

type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository builds the repository.
func NewProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &profileRepository{pool: pool}
}

func (r *profileRepository) Get(ctx context.Context) (domain.Profile, error) {
	var p domain.Profile
	err := r.pool.QueryRow(ctx, `
        SELECT name, email, role, phone, department, join_date
        FROM profile WHERE id = 1`).
		Scan(&p.Name, &p.Email, &p.Role, &p.Phone, &p.Department, &p.JoinDate)
	return p, err
}

func (r *profileRepository) ListDocuments(ctx context.Context) ([]domain.ProfileDocument, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, type, upload_date, size FROM profile_documents ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.ProfileDocument{}
	for rows.Next() {
		var d domain.ProfileDocument
		if err := rows.Scan(&d.ID, &d.Name, &d.Type, &d.UploadDate, &d.Size); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

func (r *profileRepository) GetDocument(ctx context.Context, id string) (*domain.ProfileDocument, error) {
	var d domain.ProfileDocument
	err := r.pool.QueryRow(ctx, `SELECT id, name, type, upload_date, size FROM profile_documents WHERE id = $1`, id).
		Scan(&d.ID, &d.Name, &d.Type, &d.UploadDate, &d.Size)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
