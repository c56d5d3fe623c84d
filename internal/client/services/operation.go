package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/calcfront/internal/client/api"
	"github.com/dmitrijs2005/calcfront/internal/client/models"
	"github.com/dmitrijs2005/calcfront/internal/client/session"
)

// Validation failures of the submission form. They are shown to the user
// as-is, before any request is made.
var (
	ErrUnknownOperationType  = errors.New("unknown operation type")
	ErrFirstOperandRequired  = errors.New("first operand is required")
	ErrSecondOperandRequired = errors.New("second operand is required")
)

// OperationService validates and submits operations, and reconciles the
// server-returned balance into the session store. The server is authoritative
// for both the result and the balance; nothing is computed locally.
type OperationService struct {
	client api.Client
	store  *session.Store
}

func NewOperationService(client api.Client, store *session.Store) *OperationService {
	return &OperationService{client: client, store: store}
}

// Submit validates the operands against the operation type, sends the
// operation, dispatches the returned balance, and returns the result value.
// Extra operands beyond what the type requires are dropped, so a square root
// never carries a second argument and a random string carries none at all.
func (s *OperationService) Submit(ctx context.Context, typ models.OperationType, args []float64) (models.ResponseValue, error) {
	if !typ.Valid() {
		return "", ErrUnknownOperationType
	}

	want := typ.ArgCount()
	if want >= 1 && len(args) < 1 {
		return "", ErrFirstOperandRequired
	}
	if want == 2 && len(args) < 2 {
		return "", ErrSecondOperandRequired
	}

	st := s.store.State()
	if !st.LoggedIn() {
		return "", ErrNotAuthenticated
	}

	req := api.OperationRequest{Type: typ}
	if want > 0 {
		req.Args = args[:want]
	}

	res, err := s.client.CreateOperation(ctx, req, *st.AccessToken)
	if err != nil {
		return "", err
	}

	if err := s.store.Dispatch(ctx, session.UpdateBalance{Balance: res.UserBalance.String()}); err != nil {
		return "", err
	}

	return res.OperationResponse, nil
}
