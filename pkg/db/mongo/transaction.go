package mongo

import (
	"context"
	"fmt"

	apperrors "parkwise/pkg/errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// TransactionFunc runs a unit of work. When a real transaction is open, ctx
// is a mongo.SessionContext and repository calls made with it join the
// transaction.
type TransactionFunc func(ctx context.Context) error

type TransactionManager interface {
	ExecuteTransaction(ctx context.Context, fn TransactionFunc) error
	// Transactional reports whether fn runs atomically. Callers that get
	// false must compensate partial writes themselves.
	Transactional() bool
}

type mongoTransactionManager struct {
	client *mongo.Client
}

// NewTransactionManager returns a session-backed manager when enabled is true.
// Transactions need a replica set, so standalone deployments run with the
// sequential manager instead.
func NewTransactionManager(client *mongo.Client, enabled bool) TransactionManager {
	if !enabled || client == nil {
		return sequentialTransactionManager{}
	}
	return &mongoTransactionManager{
		client: client,
	}
}

func (m *mongoTransactionManager) Transactional() bool {
	return true
}

func (m *mongoTransactionManager) ExecuteTransaction(ctx context.Context, fn TransactionFunc) error {
	session, err := m.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		return nil, fn(sessCtx)
	})

	if err != nil {
		if apperrors.IsAppError(err) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

type sequentialTransactionManager struct{}

func (sequentialTransactionManager) Transactional() bool {
	return false
}

func (sequentialTransactionManager) ExecuteTransaction(ctx context.Context, fn TransactionFunc) error {
	return fn(ctx)
}
