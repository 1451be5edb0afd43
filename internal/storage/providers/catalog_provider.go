package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"serviceatlas/internal/domains"
	"serviceatlas/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CatalogProvider struct {
	db *pgxpool.Pool
}

func NewCatalogProvider(db *pgxpool.Pool) *CatalogProvider {
	return &CatalogProvider{
		db: db,
	}
}

// SearchServices returns every name+content pair, ordered by ascending id.
// A non-empty term narrows the set to rows whose name, title or description
// contains it case-insensitively. The term is always a bound parameter.
func (s CatalogProvider) SearchServices(ctx context.Context, term string) ([]domains.ServiceRow, error) {
	if s.db == nil {
		return nil, fmt.Errorf("search services: %w", storage.ErrUnavailable)
	}

	query, args := searchServicesQuery(term)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search services: %w", err)
	}
	defer rows.Close()

	var result []domains.ServiceRow
	for rows.Next() {
		row, err := scanServiceRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate services: %w", err)
	}

	return result, nil
}

// searchServicesQuery builds the listing statement. The term reaches the
// database only as a bound parameter, and the result order is always
// ascending id.
func searchServicesQuery(term string) (string, []interface{}) {
	query := `
		SELECT sn.id, sn.name, sc.title, sc.description, sc.image_path, sc.details
		FROM service_names sn
		JOIN service_content sc ON sn.id = sc.service_id`

	args := make([]interface{}, 0, 1)
	if term != "" {
		query += `
		WHERE sn.name ILIKE $1
		   OR sc.title ILIKE $1
		   OR sc.description ILIKE $1`
		args = append(args, "%"+term+"%")
	}
	query += `
		ORDER BY sn.id`

	return query, args
}

func (s CatalogProvider) GetServiceByID(ctx context.Context, serviceID int64) (domains.ServiceRow, error) {
	if s.db == nil {
		return domains.ServiceRow{}, fmt.Errorf("get service: %w", storage.ErrUnavailable)
	}

	const query = `
		SELECT sn.id, sn.name, sc.title, sc.description, sc.image_path, sc.details
		FROM service_names sn
		JOIN service_content sc ON sn.id = sc.service_id
		WHERE sn.id = $1`

	row, err := scanServiceRow(s.db.QueryRow(ctx, query, serviceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domains.ServiceRow{}, fmt.Errorf("get service: %w", storage.ErrNotFound)
		}
		return domains.ServiceRow{}, fmt.Errorf("get service: %w", err)
	}
	return row, nil
}

// CreateService inserts the name row, then the content row referencing its
// generated id, in one transaction. If the content insert fails the name row
// is rolled back, so no orphan name can persist.
func (s CatalogProvider) CreateService(ctx context.Context, name, title, description string, details []byte) (int64, error) {
	if s.db == nil {
		return 0, fmt.Errorf("create service: %w", storage.ErrUnavailable)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var serviceID int64
	if err := tx.QueryRow(ctx,
		`INSERT INTO service_names (name) VALUES ($1) RETURNING id`, name,
	).Scan(&serviceID); err != nil {
		return 0, fmt.Errorf("insert service name: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO service_content (service_id, title, description, image_path, details)
		 VALUES ($1, $2, $3, '', $4::jsonb)`,
		serviceID, title, description, string(details),
	); err != nil {
		return 0, fmt.Errorf("insert service content: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	return serviceID, nil
}

// UpdateService applies a partial update in one transaction. Fields the
// caller did not supply stay untouched via COALESCE against the stored value.
// Zero affected rows across both statements means the id does not exist.
func (s CatalogProvider) UpdateService(ctx context.Context, serviceID int64, name *string, content domains.ServiceContentUpdate) error {
	if s.db == nil {
		return fmt.Errorf("update service: %w", storage.ErrUnavailable)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var affected int64

	if name != nil {
		ct, err := tx.Exec(ctx,
			`UPDATE service_names SET name = $1 WHERE id = $2`, *name, serviceID)
		if err != nil {
			return fmt.Errorf("update service name: %w", err)
		}
		affected += ct.RowsAffected()
	}

	var details *string
	if content.Details != nil {
		value := string(content.Details)
		details = &value
	}

	ct, err := tx.Exec(ctx,
		`UPDATE service_content
		 SET title = COALESCE($1, title),
		     description = COALESCE($2, description),
		     details = COALESCE($3::jsonb, details)
		 WHERE service_id = $4`,
		content.Title, content.Description, details, serviceID)
	if err != nil {
		return fmt.Errorf("update service content: %w", err)
	}
	affected += ct.RowsAffected()

	if affected == 0 {
		return fmt.Errorf("update service: %w", storage.ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

// DeleteService removes the content row first, then the name row, to satisfy
// the foreign key. A missing content row is tolerated; a missing name row
// means the id never existed.
func (s CatalogProvider) DeleteService(ctx context.Context, serviceID int64) error {
	if s.db == nil {
		return fmt.Errorf("delete service: %w", storage.ErrUnavailable)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM service_content WHERE service_id = $1`, serviceID); err != nil {
		return fmt.Errorf("delete service content: %w", err)
	}

	ct, err := tx.Exec(ctx,
		`DELETE FROM service_names WHERE id = $1`, serviceID)
	if err != nil {
		return fmt.Errorf("delete service name: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("delete service: %w", storage.ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

func scanServiceRow(row pgx.Row) (domains.ServiceRow, error) {
	var (
		result  domains.ServiceRow
		details []byte
	)
	if err := row.Scan(
		&result.ID,
		&result.Name,
		&result.Title,
		&result.Description,
		&result.ImagePath,
		&details,
	); err != nil {
		return domains.ServiceRow{}, err
	}
	if len(details) > 0 {
		data := make(json.RawMessage, len(details))
		copy(data, details)
		result.Details = data
	}
	return result, nil
}
