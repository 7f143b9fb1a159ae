package service

import (
	"context"
	"sync"
	"testing"

	"sample-be/internal/pkg/logger"
	"sample-be/internal/repository/unitofwork"
	"sample-be/internal/testutil"

	"gorm.io/gorm"
)

type recordedEvent struct {
	Type  string
	Id    int64
	Extra map[string]interface{}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (p *recordingPublisher) PublishEntityEvent(ctx context.Context, eventType, entityName string, id int64, extra map[string]interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{Type: eventType, Id: id, Extra: extra})
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

type fixture struct {
	db           *gorm.DB
	publisher    *recordingPublisher
	parents      IParentEntityService
	children     IChildEntityService
	relationship IRelationshipService
}

func newFixture(t *testing.T) *fixture {
	db := testutil.NewDB(t)
	uowFactory := unitofwork.NewRepositoryFactory(db)
	pub := &recordingPublisher{}
	log := logger.NewNopLogger()

	return &fixture{
		db:           db,
		publisher:    pub,
		parents:      NewParentEntityService(uowFactory, pub, log),
		children:     NewChildEntityService(uowFactory, NewLocalIdentityDirectory(uowFactory), pub, log),
		relationship: NewRelationshipService(uowFactory, pub, log),
	}
}

func strPtr(s string) *string { return &s }
func int64Ptr(v int64) *int64 { return &v }
