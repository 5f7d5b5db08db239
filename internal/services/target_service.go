package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/PlumpMath/ros-interop/internal/models"
	"github.com/PlumpMath/ros-interop/internal/myerrors"
	"github.com/PlumpMath/ros-interop/internal/repositories"
)

type TargetService interface {
	Add(ctx context.Context, target models.Target) (models.Target, error)
	GetById(ctx context.Context, id int64) (models.Target, error)
	GetAll(ctx context.Context) ([]models.Target, error)
	Update(ctx context.Context, id int64, target models.Target) (models.Target, error)
	DeleteById(ctx context.Context, id int64) error

	SetImage(ctx context.Context, id int64, contentType string, image []byte) error
	GetImage(ctx context.Context, id int64) (models.TargetImage, error)
	DeleteImage(ctx context.Context, id int64) error
}

type DefaultTargetService struct {
	targetRepo repositories.TargetRepository
	imageRepo  repositories.TargetImageRepository
}

func NewDefaultTargetService(targetRepo repositories.TargetRepository, imageRepo repositories.TargetImageRepository) *DefaultTargetService {
	return &DefaultTargetService{
		targetRepo: targetRepo,
		imageRepo:  imageRepo,
	}
}

func (d *DefaultTargetService) Add(ctx context.Context, target models.Target) (models.Target, error) {
	if err := target.Validate(); err != nil {
		return models.Target{}, err
	}
	newTarget, err := d.targetRepo.Add(ctx, target)
	if err != nil {
		return models.Target{}, err
	}
	return newTarget, nil
}

func (d *DefaultTargetService) GetById(ctx context.Context, id int64) (models.Target, error) {
	target, err := d.targetRepo.GetById(ctx, id)
	if err != nil {
		return models.Target{}, targetNotFound(err, id)
	}
	return target, nil
}

func (d *DefaultTargetService) GetAll(ctx context.Context) ([]models.Target, error) {
	targets, err := d.targetRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return targets, nil
}

func (d *DefaultTargetService) Update(ctx context.Context, id int64, target models.Target) (models.Target, error) {
	if err := target.Validate(); err != nil {
		return models.Target{}, err
	}
	if err := d.targetRepo.Update(ctx, id, target); err != nil {
		return models.Target{}, targetNotFound(err, id)
	}
	updated, err := d.targetRepo.GetById(ctx, id)
	if err != nil {
		return models.Target{}, targetNotFound(err, id)
	}
	return updated, nil
}

func (d *DefaultTargetService) DeleteById(ctx context.Context, id int64) error {
	if err := d.targetRepo.Delete(ctx, id); err != nil {
		return targetNotFound(err, id)
	}
	return nil
}

// SetImage attaches or replaces the image of an existing target.
func (d *DefaultTargetService) SetImage(ctx context.Context, id int64, contentType string, image []byte) error {
	if _, err := d.targetRepo.GetById(ctx, id); err != nil {
		return targetNotFound(err, id)
	}
	return d.imageRepo.Set(ctx, models.TargetImage{
		TargetId:    id,
		ContentType: contentType,
		Image:       image,
	})
}

func (d *DefaultTargetService) GetImage(ctx context.Context, id int64) (models.TargetImage, error) {
	img, err := d.imageRepo.GetByTargetId(ctx, id)
	if err != nil {
		return models.TargetImage{}, imageNotFound(err, id)
	}
	return img, nil
}

func (d *DefaultTargetService) DeleteImage(ctx context.Context, id int64) error {
	if err := d.imageRepo.Delete(ctx, id); err != nil {
		return imageNotFound(err, id)
	}
	return nil
}

func targetNotFound(err error, id int64) error {
	if errors.Is(err, sql.ErrNoRows) {
		return &myerrors.NotFoundError{Resource: "target", Id: id}
	}
	return err
}

func imageNotFound(err error, id int64) error {
	if errors.Is(err, sql.ErrNoRows) {
		return &myerrors.NotFoundError{Resource: "target image", Id: id}
	}
	return err
}
