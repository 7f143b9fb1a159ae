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
	"sample-be/internal/repository/unitofwork"
	"sample-be/pkg/events"
)

type IRelationshipService interface {
	// LinkChild moves a persisted child under another parent. Both aggregates
	// are updated and the child row is written in one transaction.
	LinkChild(ctx context.Context, parentId, childId int64) (*dto.ChildEntityDTO, error)
}

type relationshipService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
	dtoMapper        *mapper.ChildEntityDtoMapper
}

func NewRelationshipService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	logger logger.ILogger,
) IRelationshipService {
	return &relationshipService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           logger,
		dtoMapper:        mapper.NewChildEntityDtoMapper(),
	}
}

func (s *relationshipService) LinkChild(ctx context.Context, parentId, childId int64) (*dto.ChildEntityDTO, error) {
	s.logger.Debug("RelationshipService", "Request to link ChildEntity", map[string]interface{}{"parent_id": parentId, "child_id": childId})

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	child, err := uow.ChildEntityRepository().FindOneWithRelationships(ctx, childId)
	if err != nil {
		return nil, err
	}
	if child == nil {
		return nil, apperror.Missing(constant.ChildEntityName)
	}
	parent, err := uow.ParentEntityRepository().FindOneWithChildren(ctx, parentId)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, apperror.Missing(constant.ParentEntityName)
	}

	previous := child.Parent()
	if previous != nil && previous.Equals(parent) {
		// already linked
		if err := uow.Commit(); err != nil {
			return nil, err
		}
		return s.dtoMapper.ToDto(child), nil
	}

	entity.LinkChild(parent, child)
	if err := uow.ChildEntityRepository().Update(ctx, child); err != nil {
		return nil, fmt.Errorf("failed to relink child entity: %w", err)
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	extra := map[string]interface{}{"parent_id": parentId}
	if previous != nil && previous.Id != nil {
		extra["previous_parent_id"] = *previous.Id
	}
	s.publisherService.PublishEntityEvent(ctx, events.ChildEntityRelinked, constant.ChildEntityName, childId, extra)
	return s.dtoMapper.ToDto(child), nil
}
