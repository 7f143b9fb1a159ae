// Package resource guards the mutation endpoints: identity preconditions are
// checked here before anything reaches a service. It never writes.
package resource

import (
	"context"
	"strconv"

	"sample-be/internal/apperror"
)

// ExistenceChecker answers whether a persisted entity has the given id.
type ExistenceChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Validator struct {
	entityName string
	checker    ExistenceChecker
}

func NewValidator(entityName string, checker ExistenceChecker) *Validator {
	return &Validator{
		entityName: entityName,
		checker:    checker,
	}
}

// ValidateCreate rejects a client-assigned id.
func (v *Validator) ValidateCreate(bodyId *int64) error {
	if bodyId != nil {
		return apperror.ConflictingIdentity(v.entityName, "A new entity cannot already have an ID")
	}
	return nil
}

// ValidateUpdate applies to full and partial updates. Checks run in a fixed
// order: missing body id, then path/body mismatch, then existence.
func (v *Validator) ValidateUpdate(ctx context.Context, pathId int64, bodyId *int64) error {
	if bodyId == nil {
		return apperror.MissingIdentity(v.entityName)
	}
	if *bodyId != pathId {
		return apperror.IdentityMismatch(v.entityName)
	}
	exists, err := v.checker.Exists(ctx, pathId)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NotFound(v.entityName)
	}
	return nil
}

// ParseId reads a path id. Delete has no other precondition.
func (v *Validator) ParseId(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperror.IdentityMismatch(v.entityName)
	}
	return id, nil
}
