package repositories

import (
	"context"
	"database/sql"

	"github.com/PlumpMath/ros-interop/internal/models"
)

type TargetImageRepository interface {
	Set(ctx context.Context, image models.TargetImage) error
	GetByTargetId(ctx context.Context, targetId int64) (models.TargetImage, error)
	Delete(ctx context.Context, targetId int64) error
}

type MySQLTargetImageRepository struct {
	db *sql.DB
}

func NewMySQLTargetImageRepository(db *sql.DB) *MySQLTargetImageRepository {
	return &MySQLTargetImageRepository{
		db: db,
	}
}

// Set inserts or replaces the image for a target.
func (m *MySQLTargetImageRepository) Set(ctx context.Context, image models.TargetImage) error {
	setQuery := `INSERT INTO target_images (target_id, content_type, image)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE content_type = VALUES(content_type), image = VALUES(image)`
	_, err := m.db.ExecContext(ctx, setQuery,
		image.TargetId, image.ContentType, image.Image)
	return err
}

func (m *MySQLTargetImageRepository) GetByTargetId(ctx context.Context, targetId int64) (models.TargetImage, error) {
	var img models.TargetImage
	getQuery := `SELECT target_id, content_type, image FROM target_images WHERE target_id = ?`
	err := m.db.QueryRowContext(ctx, getQuery, targetId).
		Scan(&img.TargetId, &img.ContentType, &img.Image)
	if err != nil {
		return models.TargetImage{}, err
	}
	return img, nil
}

func (m *MySQLTargetImageRepository) Delete(ctx context.Context, targetId int64) error {
	deleteQuery := `DELETE FROM target_images WHERE target_id = ?`
	return execExpectingRows(ctx, m.db, deleteQuery, targetId)
}
