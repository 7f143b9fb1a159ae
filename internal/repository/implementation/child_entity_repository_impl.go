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

type ChildEntityRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChildEntityMapper
}

func NewChildEntityRepository(db *gorm.DB) contract.ChildEntityRepository {
	return &ChildEntityRepositoryImpl{
		db:     db,
		mapper: mapper.NewChildEntityMapper(),
	}
}

func (r *ChildEntityRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Create inserts the row with its owner and parent foreign keys. The referenced
// rows must already exist.
func (r *ChildEntityRepositoryImpl) Create(ctx context.Context, child *entity.ChildEntity) error {
	m := r.mapper.ToModel(child)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return err
	}
	id := m.Id
	child.Id = &id
	return nil
}

// Update overwrites every column, a nil ChildField is written as NULL.
func (r *ChildEntityRepositoryImpl) Update(ctx context.Context, child *entity.ChildEntity) error {
	m := r.mapper.ToModel(child)
	return r.db.WithContext(ctx).Model(m).Select("child_field", "user_id", "parent_id").Updates(m).Error
}

func (r *ChildEntityRepositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.ChildEntity{}, id).Error
}

func (r *ChildEntityRepositoryImpl) ExistsById(ctx context.Context, id int64) (bool, error) {
	count, err := r.Count(ctx, specification.ByID{ID: id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ChildEntityRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChildEntity, error) {
	var m model.ChildEntity
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ChildEntityRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChildEntity, error) {
	var models []*model.ChildEntity
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ChildEntityRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ChildEntity{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ChildEntityRepositoryImpl) FindOneWithRelationships(ctx context.Context, id int64) (*entity.ChildEntity, error) {
	var m model.ChildEntity
	query := r.db.WithContext(ctx).Scopes(scope.JoinOwnerAndParent)
	query = specification.ByID{ID: id}.Apply(query)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

// FindAllWithRelationships returns each child once even if a join produced
// duplicate rows. Pagination specs apply to the joined query, so Count must be
// used for totals.
func (r *ChildEntityRepositoryImpl) FindAllWithRelationships(ctx context.Context, specs ...specification.Specification) ([]*entity.ChildEntity, error) {
	var models []*model.ChildEntity
	query := r.applySpecifications(r.db.WithContext(ctx).Scopes(scope.JoinOwnerAndParent), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	seen := make(map[int64]struct{}, len(models))
	unique := models[:0]
	for _, m := range models {
		if _, ok := seen[m.Id]; ok {
			continue
		}
		seen[m.Id] = struct{}{}
		unique = append(unique, m)
	}
	return r.mapper.ToEntities(unique), nil
}
