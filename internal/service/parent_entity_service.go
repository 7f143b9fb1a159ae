package service

import (
	"context"
	"fmt"
	"strings"

	"sample-be/internal/apperror"
	"sample-be/internal/constant"
	"sample-be/internal/dto"
	"sample-be/internal/mapper"
	"sample-be/internal/pkg/logger"
	"sample-be/internal/repository/specification"
	"sample-be/internal/repository/unitofwork"
	"sample-be/pkg/events"
)

type IParentEntityService interface {
	Create(ctx context.Context, req *dto.ParentEntityDTO) (*dto.ParentEntityDTO, error)
	Update(ctx context.Context, req *dto.ParentEntityDTO) (*dto.ParentEntityDTO, error)
	// PartialUpdate returns (nil, nil) when the entity no longer exists.
	PartialUpdate(ctx context.Context, patch *dto.ParentEntityPatch) (*dto.ParentEntityDTO, error)
	FindAll(ctx context.Context, page dto.PageRequest) (*dto.Page[*dto.ParentEntityDTO], error)
	// FindOne returns (nil, nil) when absent. withChildren adds child summaries.
	FindOne(ctx context.Context, id int64, withChildren bool) (*dto.ParentEntityDTO, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type parentEntityService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
	dtoMapper        *mapper.ParentEntityDtoMapper
}

func NewParentEntityService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	logger logger.ILogger,
) IParentEntityService {
	return &parentEntityService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           logger,
		dtoMapper:        mapper.NewParentEntityDtoMapper(),
	}
}

func validateRequiredField(v *string) error {
	if v == nil {
		return apperror.ValidationFailure(constant.ParentEntityName, "requiredField", "must not be null")
	}
	if strings.TrimSpace(*v) == "" {
		return apperror.ValidationFailure(constant.ParentEntityName, "requiredField", "must not be blank")
	}
	return nil
}

func (s *parentEntityService) Create(ctx context.Context, req *dto.ParentEntityDTO) (*dto.ParentEntityDTO, error) {
	s.logger.Debug("ParentEntityService", "Request to save ParentEntity", map[string]interface{}{"requiredField": req.RequiredField})

	if err := validateRequiredField(req.RequiredField); err != nil {
		return nil, err
	}

	parent := s.dtoMapper.ToEntity(req)
	parent.Id = nil

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ParentEntityRepository().Create(ctx, parent); err != nil {
		return nil, fmt.Errorf("failed to save parent entity: %w", err)
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publisherService.PublishEntityEvent(ctx, events.ParentEntityCreated, constant.ParentEntityName, *parent.Id, nil)
	return s.dtoMapper.ToDto(parent), nil
}

func (s *parentEntityService) Update(ctx context.Context, req *dto.ParentEntityDTO) (*dto.ParentEntityDTO, error) {
	s.logger.Debug("ParentEntityService", "Request to update ParentEntity", map[string]interface{}{"id": req.Id})

	if req.Id == nil {
		return nil, apperror.MissingIdentity(constant.ParentEntityName)
	}
	if err := validateRequiredField(req.RequiredField); err != nil {
		return nil, err
	}

	parent := s.dtoMapper.ToEntity(req)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	repo := uow.ParentEntityRepository()
	exists, err := repo.ExistsById(ctx, *parent.Id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.NotFound(constant.ParentEntityName)
	}
	if err := repo.Update(ctx, parent); err != nil {
		return nil, fmt.Errorf("failed to update parent entity: %w", err)
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publisherService.PublishEntityEvent(ctx, events.ParentEntityUpdated, constant.ParentEntityName, *parent.Id, nil)
	return s.dtoMapper.ToDto(parent), nil
}

func (s *parentEntityService) PartialUpdate(ctx context.Context, patch *dto.ParentEntityPatch) (*dto.ParentEntityDTO, error) {
	s.logger.Debug("ParentEntityService", "Request to partially update ParentEntity", map[string]interface{}{"id": patch.Id})

	if patch.Id == nil {
		return nil, apperror.MissingIdentity(constant.ParentEntityName)
	}
	if patch.RequiredField.Present {
		var value *string
		if !patch.RequiredField.Null {
			value = &patch.RequiredField.Value
		}
		if err := validateRequiredField(value); err != nil {
			return nil, err
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	repo := uow.ParentEntityRepository()
	parent, err := repo.FindOne(ctx, specification.ByID{ID: *patch.Id})
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, nil
	}

	s.dtoMapper.PartialUpdate(parent, patch)
	if err := repo.Update(ctx, parent); err != nil {
		return nil, fmt.Errorf("failed to update parent entity: %w", err)
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publisherService.PublishEntityEvent(ctx, events.ParentEntityUpdated, constant.ParentEntityName, *parent.Id, nil)
	return s.dtoMapper.ToDto(parent), nil
}

func (s *parentEntityService) FindAll(ctx context.Context, page dto.PageRequest) (*dto.Page[*dto.ParentEntityDTO], error) {
	s.logger.Debug("ParentEntityService", "Request to get all ParentEntities", map[string]interface{}{"page": page.Page, "size": page.Size})

	specs, err := pageSpecifications(constant.ParentEntityName, page, parentEntitySortColumns)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ParentEntityRepository()

	parents, err := repo.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	total, err := repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.Page[*dto.ParentEntityDTO]{
		Content:       s.dtoMapper.ToDtos(parents),
		Number:        page.Page,
		Size:          page.Size,
		TotalElements: total,
	}, nil
}

func (s *parentEntityService) FindOne(ctx context.Context, id int64, withChildren bool) (*dto.ParentEntityDTO, error) {
	s.logger.Debug("ParentEntityService", "Request to get ParentEntity", map[string]interface{}{"id": id, "withChildren": withChildren})

	repo := s.uowFactory.NewUnitOfWork(ctx).ParentEntityRepository()
	if !withChildren {
		parent, err := repo.FindOne(ctx, specification.ByID{ID: id})
		if err != nil || parent == nil {
			return nil, err
		}
		return s.dtoMapper.ToDto(parent), nil
	}

	parent, err := repo.FindOneWithChildren(ctx, id)
	if err != nil || parent == nil {
		return nil, err
	}
	return s.dtoMapper.ToDtoWithChildren(parent), nil
}

func (s *parentEntityService) Exists(ctx context.Context, id int64) (bool, error) {
	return s.uowFactory.NewUnitOfWork(ctx).ParentEntityRepository().ExistsById(ctx, id)
}

// Delete removes the parent. An absent row is not an error; a parent that still
// has children is rejected since children cannot exist without one.
func (s *parentEntityService) Delete(ctx context.Context, id int64) error {
	s.logger.Debug("ParentEntityService", "Request to delete ParentEntity", map[string]interface{}{"id": id})

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	exists, err := uow.ParentEntityRepository().ExistsById(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return uow.Commit()
	}

	children, err := uow.ChildEntityRepository().Count(ctx, specification.ByParentID{ParentID: id})
	if err != nil {
		return err
	}
	if children > 0 {
		return apperror.HasChildren(constant.ParentEntityName)
	}

	if err := uow.ParentEntityRepository().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete parent entity: %w", err)
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.publisherService.PublishEntityEvent(ctx, events.ParentEntityDeleted, constant.ParentEntityName, id, nil)
	return nil
}
