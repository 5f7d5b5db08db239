package repositories

import (
	"context"
	"database/sql"

	"github.com/PlumpMath/ros-interop/internal/models"
)

type TargetRepository interface {
	Add(ctx context.Context, target models.Target) (models.Target, error)
	GetById(ctx context.Context, id int64) (models.Target, error)
	GetAll(ctx context.Context) ([]models.Target, error)
	Update(ctx context.Context, id int64, target models.Target) error
	Delete(ctx context.Context, id int64) error
}

type MySQLTargetRepository struct {
	db *sql.DB
}

func NewMySQLTargetRepository(db *sql.DB) *MySQLTargetRepository {
	return &MySQLTargetRepository{
		db: db,
	}
}

const targetColumns = `id, target_type, latitude, longitude, orientation, shape,
	background_color, alphanumeric_color, alphanumeric, description, autonomous`

func (m *MySQLTargetRepository) Add(ctx context.Context, target models.Target) (models.Target, error) {
	createTargetQuery := `INSERT INTO targets
		(target_type, latitude, longitude, orientation, shape,
		background_color, alphanumeric_color, alphanumeric, description, autonomous)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	result, err := m.db.ExecContext(ctx, createTargetQuery,
		target.Type, target.Latitude, target.Longitude, target.Orientation,
		target.Shape, target.BackgroundColor, target.AlphanumericColor,
		target.Alphanumeric, target.Description, target.Autonomous)
	if err != nil {
		return models.Target{}, err
	}
	target.Id, err = result.LastInsertId()
	if err != nil {
		return models.Target{}, err
	}
	return target, nil
}

func (m *MySQLTargetRepository) GetById(ctx context.Context, id int64) (models.Target, error) {
	var t models.Target
	getByIdQuery := `SELECT ` + targetColumns + ` FROM targets WHERE id = ?`
	err := m.db.QueryRowContext(ctx, getByIdQuery, id).
		Scan(&t.Id, &t.Type, &t.Latitude, &t.Longitude, &t.Orientation,
			&t.Shape, &t.BackgroundColor, &t.AlphanumericColor,
			&t.Alphanumeric, &t.Description, &t.Autonomous)
	if err != nil {
		return models.Target{}, err
	}
	return t, nil
}

func (m *MySQLTargetRepository) GetAll(ctx context.Context) ([]models.Target, error) {
	var targets []models.Target
	getAllQuery := `SELECT ` + targetColumns + ` FROM targets`
	rows, err := m.db.QueryContext(ctx, getAllQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		t := new(models.Target)
		if err := rows.Scan(&t.Id, &t.Type, &t.Latitude, &t.Longitude,
			&t.Orientation, &t.Shape, &t.BackgroundColor,
			&t.AlphanumericColor, &t.Alphanumeric, &t.Description,
			&t.Autonomous); err != nil {
			return nil, err
		}
		targets = append(targets, *t)
	}
	return targets, rows.Err()
}

// Update is a full replace of every field except the identifier.
func (m *MySQLTargetRepository) Update(ctx context.Context, id int64, target models.Target) error {
	updateQuery := `UPDATE targets SET target_type = ?, latitude = ?, longitude = ?,
		orientation = ?, shape = ?, background_color = ?, alphanumeric_color = ?,
		alphanumeric = ?, description = ?, autonomous = ? WHERE id = ?`
	res, err := m.db.ExecContext(ctx, updateQuery,
		target.Type, target.Latitude, target.Longitude, target.Orientation,
		target.Shape, target.BackgroundColor, target.AlphanumericColor,
		target.Alphanumeric, target.Description, target.Autonomous, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		// Replacing a row with identical values also reports zero rows
		// affected on MySQL, so double-check existence before failing.
		var exists int64
		if err := m.db.QueryRowContext(ctx,
			`SELECT id FROM targets WHERE id = ?`, id).Scan(&exists); err != nil {
			return err
		}
	}
	return nil
}

func (m *MySQLTargetRepository) Delete(ctx context.Context, id int64) error {
	deleteQuery := `DELETE FROM targets WHERE id = ?`
	return execExpectingRows(ctx, m.db, deleteQuery, id)
}
