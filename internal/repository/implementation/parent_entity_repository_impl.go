package implementation

import (
	"context"
	"errors"

	"sample-be/internal/entity"
	"sample-be/internal/mapper"
	"sample-be/internal/model"
	"sample-be/internal/repository/contract"
	"sample-be/internal/repository/scope"
	"sample-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ParentEntityRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ParentEntityMapper
}

func NewParentEntityRepository(db *gorm.DB) contract.ParentEntityRepository {
	return &ParentEntityRepositoryImpl{
		db:     db,
		mapper: mapper.NewParentEntityMapper(),
	}
}

func (r *ParentEntityRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Create inserts the row only; children are persisted through their own repository.
func (r *ParentEntityRepositoryImpl) Create(ctx context.Context, parent *entity.ParentEntity) error {
	m := r.mapper.ToModel(parent)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return err
	}
	id := m.Id
	parent.Id = &id
	return nil
}

func (r *ParentEntityRepositoryImpl) Update(ctx context.Context, parent *entity.ParentEntity) error {
	m := r.mapper.ToModel(parent)
	return r.db.WithContext(ctx).Model(m).Select("required_field").Updates(m).Error
}

func (r *ParentEntityRepositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.ParentEntity{}, id).Error
}

func (r *ParentEntityRepositoryImpl) ExistsById(ctx context.Context, id int64) (bool, error) {
	count, err := r.Count(ctx, specification.ByID{ID: id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ParentEntityRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ParentEntity, error) {
	var m model.ParentEntity
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ParentEntityRepositoryImpl) FindOneWithChildren(ctx context.Context, id int64) (*entity.ParentEntity, error) {
	var m model.ParentEntity
	query := r.db.WithContext(ctx).Scopes(scope.PreloadChildren)
	query = specification.ByID{ID: id}.Apply(query)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ParentEntityRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ParentEntity, error) {
	var models []*model.ParentEntity
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ParentEntityRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ParentEntity{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
