package service

import (
	"context"
	"fmt"

	"sample-be/internal/apperror"
	"sample-be/internal/constant"
	"sample-be/internal/dto"
	"sample-be/internal/entity"
	"sample-be/internal/mapper"
	"sample-be/internal/pkg/logger"
	"sample-be/internal/repository/specification"
	"sample-be/internal/repository/unitofwork"
	"sample-be/pkg/events"
)

// ChildEntityFilter narrows a child listing.
type ChildEntityFilter struct {
	// EagerLoad joins owner and parent so their summaries are complete.
	EagerLoad bool
	// OwnerId restricts the listing to one owner when non-empty.
	OwnerId string
}

type IChildEntityService interface {
	Create(ctx context.Context, req *dto.ChildEntityDTO) (*dto.ChildEntityDTO, error)
	Update(ctx context.Context, req *dto.ChildEntityDTO) (*dto.ChildEntityDTO, error)
	// PartialUpdate returns (nil, nil) when the entity no longer exists.
	PartialUpdate(ctx context.Context, patch *dto.ChildEntityPatch) (*dto.ChildEntityDTO, error)
	FindAll(ctx context.Context, page dto.PageRequest, filter ChildEntityFilter) (*dto.Page[*dto.ChildEntityDTO], error)
	// FindOne returns (nil, nil) when absent.
	FindOne(ctx context.Context, id int64) (*dto.ChildEntityDTO, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type childEntityService struct {
	uowFactory        unitofwork.RepositoryFactory
	identityDirectory IIdentityDirectory
	publisherService  IPublisherService
	logger            logger.ILogger
	dtoMapper         *mapper.ChildEntityDtoMapper
}

func NewChildEntityService(
	uowFactory unitofwork.RepositoryFactory,
	identityDirectory IIdentityDirectory,
	publisherService IPublisherService,
	logger logger.ILogger,
) IChildEntityService {
	return &childEntityService{
		uowFactory:        uowFactory,
		identityDirectory: identityDirectory,
		publisherService:  publisherService,
		logger:            logger,
		dtoMapper:         mapper.NewChildEntityDtoMapper(),
	}
}

// resolveOwner checks the owner reference against the identity directory. It
// runs before the transaction: the directory may call a remote service.
func (s *childEntityService) resolveOwner(ctx context.Context, owner *dto.UserDTO) (*entity.User, error) {
	if owner == nil || owner.Id == "" {
		return nil, apperror.ValidationFailure(constant.ChildEntityName, "owner", "must not be null")
	}
	user, err := s.identityDirectory.FindUser(ctx, owner.Id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ValidationFailure(constant.ChildEntityName, "owner", "unknown user")
	}
	return user, nil
}

func parentIdOf(req *dto.ChildEntityDTO) (int64, error) {
	if req.Parent == nil || req.Parent.Id == nil {
		return 0, apperror.ValidationFailure(constant.ChildEntityName, "parent", "must not be null")
	}
	return *req.Parent.Id, nil
}

// attach links child to its owner and to the persisted parent inside the unit
// of work. The owner row is mirrored locally so the foreign key holds.
func (s *childEntityService) attach(ctx context.Context, uow unitofwork.UnitOfWork, child *entity.ChildEntity, owner *entity.User, parentId int64) error {
	if err := uow.UserRepository().Upsert(ctx, owner); err != nil {
		return fmt.Errorf("failed to store owner: %w", err)
	}
	parent, err := uow.ParentEntityRepository().FindOne(ctx, specification.ByID{ID: parentId})
	if err != nil {
		return err
	}
	if parent == nil {
		return apperror.ValidationFailure(constant.ChildEntityName, "parent", "unknown parent")
	}
	child.Owner = owner
	entity.LinkChild(parent, child)
	return nil
}

func (s *childEntityService) Create(ctx context.Context, req *dto.ChildEntityDTO) (*dto.ChildEntityDTO, error) {
	s.logger.Debug("ChildEntityService", "Request to save ChildEntity", map[string]interface{}{"childField": req.ChildField})

	parentId, err := parentIdOf(req)
	if err != nil {
		return nil, err
	}
	owner, err := s.resolveOwner(ctx, req.Owner)
	if err != nil {
		return nil, err
	}

	child := s.dtoMapper.ToEntity(req)
	child.Id = nil

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := s.attach(ctx, uow, child, owner, parentId); err != nil {
		return nil, err
	}
	if err := uow.ChildEntityRepository().Create(ctx, child); err != nil {
		return nil, fmt.Errorf("failed to save child entity: %w", err)
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publisherService.PublishEntityEvent(ctx, events.ChildEntityCreated, constant.ChildEntityName, *child.Id, map[string]interface{}{
		"parent_id": parentId,
		"user_id":   owner.Id,
	})
	return s.dtoMapper.ToDto(child), nil
}

// Update overwrites every field from the request; an absent childField is
// stored as NULL.
func (s *childEntityService) Update(ctx context.Context, req *dto.ChildEntityDTO) (*dto.ChildEntityDTO, error) {
	s.logger.Debug("ChildEntityService", "Request to update ChildEntity", map[string]interface{}{"id": req.Id})

	if req.Id == nil {
		return nil, apperror.MissingIdentity(constant.ChildEntityName)
	}
	parentId, err := parentIdOf(req)
	if err != nil {
		return nil, err
	}
	owner, err := s.resolveOwner(ctx, req.Owner)
	if err != nil {
		return nil, err
	}

	child := s.dtoMapper.ToEntity(req)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	repo := uow.ChildEntityRepository()
	exists, err := repo.ExistsById(ctx, *child.Id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.NotFound(constant.ChildEntityName)
	}
	if err := s.attach(ctx, uow, child, owner, parentId); err != nil {
		return nil, err
	}
	if err := repo.Update(ctx, child); err != nil {
		return nil, fmt.Errorf("failed to update child entity: %w", err)
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publisherService.PublishEntityEvent(ctx, events.ChildEntityUpdated, constant.ChildEntityName, *child.Id, map[string]interface{}{
		"parent_id": parentId,
		"user_id":   owner.Id,
	})
	return s.dtoMapper.ToDto(child), nil
}

// PartialUpdate changes scalar fields only; owner and parent stay as stored.
func (s *childEntityService) PartialUpdate(ctx context.Context, patch *dto.ChildEntityPatch) (*dto.ChildEntityDTO, error) {
	s.logger.Debug("ChildEntityService", "Request to partially update ChildEntity", map[string]interface{}{"id": patch.Id})

	if patch.Id == nil {
		return nil, apperror.MissingIdentity(constant.ChildEntityName)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	repo := uow.ChildEntityRepository()
	child, err := repo.FindOneWithRelationships(ctx, *patch.Id)
	if err != nil {
		return nil, err
	}
	if child == nil {
		return nil, nil
	}

	s.dtoMapper.PartialUpdate(child, patch)
	if err := repo.Update(ctx, child); err != nil {
		return nil, fmt.Errorf("failed to update child entity: %w", err)
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publisherService.PublishEntityEvent(ctx, events.ChildEntityUpdated, constant.ChildEntityName, *child.Id, nil)
	return s.dtoMapper.ToDto(child), nil
}

// FindAll lists one page. The total always comes from a separate COUNT over the
// same filter, never from the joined query.
func (s *childEntityService) FindAll(ctx context.Context, page dto.PageRequest, filter ChildEntityFilter) (*dto.Page[*dto.ChildEntityDTO], error) {
	s.logger.Debug("ChildEntityService", "Request to get all ChildEntities", map[string]interface{}{
		"page":      page.Page,
		"size":      page.Size,
		"eagerload": filter.EagerLoad,
	})

	pageSpecs, err := pageSpecifications(constant.ChildEntityName, page, childEntitySortColumns)
	if err != nil {
		return nil, err
	}

	var filters []specification.Specification
	if filter.OwnerId != "" {
		filters = append(filters, specification.ByOwnerID{OwnerID: filter.OwnerId})
	}

	repo := s.uowFactory.NewUnitOfWork(ctx).ChildEntityRepository()
	specs := append(append([]specification.Specification{}, filters...), pageSpecs...)

	var children []*entity.ChildEntity
	if filter.EagerLoad {
		children, err = repo.FindAllWithRelationships(ctx, specs...)
	} else {
		children, err = repo.FindAll(ctx, specs...)
	}
	if err != nil {
		return nil, err
	}

	total, err := repo.Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	return &dto.Page[*dto.ChildEntityDTO]{
		Content:       s.dtoMapper.ToDtos(children),
		Number:        page.Page,
		Size:          page.Size,
		TotalElements: total,
	}, nil
}

func (s *childEntityService) FindOne(ctx context.Context, id int64) (*dto.ChildEntityDTO, error) {
	s.logger.Debug("ChildEntityService", "Request to get ChildEntity", map[string]interface{}{"id": id})

	child, err := s.uowFactory.NewUnitOfWork(ctx).ChildEntityRepository().FindOneWithRelationships(ctx, id)
	if err != nil || child == nil {
		return nil, err
	}
	return s.dtoMapper.ToDto(child), nil
}

func (s *childEntityService) Exists(ctx context.Context, id int64) (bool, error) {
	return s.uowFactory.NewUnitOfWork(ctx).ChildEntityRepository().ExistsById(ctx, id)
}

// Delete is absorbing: deleting an absent child succeeds.
func (s *childEntityService) Delete(ctx context.Context, id int64) error {
	s.logger.Debug("ChildEntityService", "Request to delete ChildEntity", map[string]interface{}{"id": id})

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	repo := uow.ChildEntityRepository()
	exists, err := repo.ExistsById(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return uow.Commit()
	}
	if err := repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete child entity: %w", err)
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.publisherService.PublishEntityEvent(ctx, events.ChildEntityDeleted, constant.ChildEntityName, id, nil)
	return nil
}
