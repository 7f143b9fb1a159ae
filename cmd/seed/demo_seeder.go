package main

import (
	"context"
	"fmt"
	"log"

	"sample-be/internal/dto"
	"sample-be/internal/entity"
	"sample-be/internal/repository/unitofwork"
	"sample-be/internal/service"
)

type demoUser struct {
	Id    string
	Login string
}

type demoParent struct {
	RequiredField string
	Children      []string
}

var demoParents = []demoParent{
	{RequiredField: "Inbox", Children: []string{"Call back supplier", "Renew certificate"}},
	{RequiredField: "Projects", Children: []string{"Draft roadmap", "Review budget", "Plan offsite"}},
	{RequiredField: "Archive"},
}

type demoSeeder struct {
	uowFactory unitofwork.RepositoryFactory
	parents    service.IParentEntityService
	children   service.IChildEntityService
}

// Seed inserts the demo owner and the demo parents with their children. It
// does nothing when parents already exist.
func (s *demoSeeder) Seed(ctx context.Context, owner demoUser) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.ParentEntityRepository().Count(ctx)
	if err != nil {
		return err
	}
	if existing > 0 {
		log.Printf("%d parent entities already exist, skipping...", existing)
		return nil
	}

	if err := uow.UserRepository().Upsert(ctx, &entity.User{Id: owner.Id, Login: owner.Login}); err != nil {
		return fmt.Errorf("failed to seed owner %s: %w", owner.Id, err)
	}

	for _, p := range demoParents {
		requiredField := p.RequiredField
		parent, err := s.parents.Create(ctx, &dto.ParentEntityDTO{RequiredField: &requiredField})
		if err != nil {
			return fmt.Errorf("failed to create parent %q: %w", p.RequiredField, err)
		}
		log.Printf("Created parent entity: %s (%d)", p.RequiredField, *parent.Id)

		for _, c := range p.Children {
			childField := c
			_, err := s.children.Create(ctx, &dto.ChildEntityDTO{
				ChildField: &childField,
				Owner:      &dto.UserDTO{Id: owner.Id},
				Parent:     &dto.ParentEntitySummaryDTO{Id: parent.Id},
			})
			if err != nil {
				return fmt.Errorf("failed to create child %q: %w", c, err)
			}
		}
	}
	return nil
}
