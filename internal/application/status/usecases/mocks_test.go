package usecases

import (
	"context"

	"claimdesk/internal/application/status/dto"
	"claimdesk/internal/domain/claim"
	"claimdesk/internal/domain/status"
	"claimdesk/internal/shared/logger"
)

type mockStatusRepository struct {
	SaveFunc       func(ctx context.Context, s *status.Status) error
	UpdateFunc     func(ctx context.Context, s *status.Status) error
	DeleteFunc     func(ctx context.Context, statusID uint) error
	GetByIDFunc    func(ctx context.Context, statusID uint) (*status.Status, error)
	GetByNameFunc  func(ctx context.Context, name string) (*status.Status, error)
	GetByIDsFunc   func(ctx context.Context, statusIDs []uint) (map[uint]*status.Status, error)
	GetDefaultFunc func(ctx context.Context) (*status.Status, error)
	ListFunc       func(ctx context.Context) ([]*status.Status, error)
}

func (m *mockStatusRepository) Save(ctx context.Context, s *status.Status) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func (m *mockStatusRepository) Update(ctx context.Context, s *status.Status) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockStatusRepository) Delete(ctx context.Context, statusID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, statusID)
	}
	return nil
}

func (m *mockStatusRepository) GetByID(ctx context.Context, statusID uint) (*status.Status, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, statusID)
	}
	return nil, nil
}

func (m *mockStatusRepository) GetByName(ctx context.Context, name string) (*status.Status, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockStatusRepository) GetByIDs(ctx context.Context, statusIDs []uint) (map[uint]*status.Status, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, statusIDs)
	}
	return map[uint]*status.Status{}, nil
}

func (m *mockStatusRepository) GetDefault(ctx context.Context) (*status.Status, error) {
	if m.GetDefaultFunc != nil {
		return m.GetDefaultFunc(ctx)
	}
	return nil, nil
}

func (m *mockStatusRepository) List(ctx context.Context) ([]*status.Status, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockSubStatusRepository struct {
	SaveFunc           func(ctx context.Context, ss *status.SubStatus) error
	UpdateFunc         func(ctx context.Context, ss *status.SubStatus) error
	DeleteFunc         func(ctx context.Context, subStatusID uint) error
	GetByIDFunc        func(ctx context.Context, subStatusID uint) (*status.SubStatus, error)
	GetByNameFunc      func(ctx context.Context, statusID uint, name string) (*status.SubStatus, error)
	GetByIDsFunc       func(ctx context.Context, subStatusIDs []uint) (map[uint]*status.SubStatus, error)
	ListByStatusFunc   func(ctx context.Context, statusID uint) ([]*status.SubStatus, error)
	ListFunc           func(ctx context.Context) ([]*status.SubStatus, error)
	DeleteByStatusFunc func(ctx context.Context, statusID uint) error
}

func (m *mockSubStatusRepository) Save(ctx context.Context, ss *status.SubStatus) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, ss)
	}
	return nil
}

func (m *mockSubStatusRepository) Update(ctx context.Context, ss *status.SubStatus) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, ss)
	}
	return nil
}

func (m *mockSubStatusRepository) Delete(ctx context.Context, subStatusID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, subStatusID)
	}
	return nil
}

func (m *mockSubStatusRepository) GetByID(ctx context.Context, subStatusID uint) (*status.SubStatus, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, subStatusID)
	}
	return nil, nil
}

func (m *mockSubStatusRepository) GetByName(ctx context.Context, statusID uint, name string) (*status.SubStatus, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, statusID, name)
	}
	return nil, nil
}

func (m *mockSubStatusRepository) GetByIDs(ctx context.Context, subStatusIDs []uint) (map[uint]*status.SubStatus, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, subStatusIDs)
	}
	return map[uint]*status.SubStatus{}, nil
}

func (m *mockSubStatusRepository) ListByStatus(ctx context.Context, statusID uint) ([]*status.SubStatus, error) {
	if m.ListByStatusFunc != nil {
		return m.ListByStatusFunc(ctx, statusID)
	}
	return nil, nil
}

func (m *mockSubStatusRepository) List(ctx context.Context) ([]*status.SubStatus, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockSubStatusRepository) DeleteByStatus(ctx context.Context, statusID uint) error {
	if m.DeleteByStatusFunc != nil {
		return m.DeleteByStatusFunc(ctx, statusID)
	}
	return nil
}

type mockTransitionRepository struct {
	SaveFunc           func(ctx context.Context, t *status.Transition) error
	UpdateFunc         func(ctx context.Context, t *status.Transition) error
	DeleteFunc         func(ctx context.Context, transitionID uint) error
	GetByIDFunc        func(ctx context.Context, transitionID uint) (*status.Transition, error)
	GetByEdgeFunc      func(ctx context.Context, fromStatusID, toStatusID uint) (*status.Transition, error)
	ListFromFunc       func(ctx context.Context, fromStatusID uint) ([]*status.Transition, error)
	ListFunc           func(ctx context.Context) ([]*status.Transition, error)
	DeleteByStatusFunc func(ctx context.Context, statusID uint) error
}

func (m *mockTransitionRepository) Save(ctx context.Context, t *status.Transition) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTransitionRepository) Update(ctx context.Context, t *status.Transition) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTransitionRepository) Delete(ctx context.Context, transitionID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, transitionID)
	}
	return nil
}

func (m *mockTransitionRepository) GetByID(ctx context.Context, transitionID uint) (*status.Transition, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, transitionID)
	}
	return nil, nil
}

func (m *mockTransitionRepository) GetByEdge(ctx context.Context, fromStatusID, toStatusID uint) (*status.Transition, error) {
	if m.GetByEdgeFunc != nil {
		return m.GetByEdgeFunc(ctx, fromStatusID, toStatusID)
	}
	return nil, nil
}

func (m *mockTransitionRepository) ListFrom(ctx context.Context, fromStatusID uint) ([]*status.Transition, error) {
	if m.ListFromFunc != nil {
		return m.ListFromFunc(ctx, fromStatusID)
	}
	return nil, nil
}

func (m *mockTransitionRepository) List(ctx context.Context) ([]*status.Transition, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockTransitionRepository) DeleteByStatus(ctx context.Context, statusID uint) error {
	if m.DeleteByStatusFunc != nil {
		return m.DeleteByStatusFunc(ctx, statusID)
	}
	return nil
}

type mockClaimRepository struct {
	SaveFunc               func(ctx context.Context, c *claim.Claim) error
	UpdateFunc             func(ctx context.Context, c *claim.Claim) error
	DeleteFunc             func(ctx context.Context, claimID uint) error
	GetByIDFunc            func(ctx context.Context, claimID uint) (*claim.Claim, error)
	ListFunc               func(ctx context.Context, filters claim.ClaimFilter) ([]*claim.Claim, int64, error)
	CountByStatusIDFunc    func(ctx context.Context, statusID uint) (int64, error)
	CountBySubStatusIDFunc func(ctx context.Context, subStatusID uint) (int64, error)
}

func (m *mockClaimRepository) Save(ctx context.Context, c *claim.Claim) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockClaimRepository) Update(ctx context.Context, c *claim.Claim) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockClaimRepository) Delete(ctx context.Context, claimID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, claimID)
	}
	return nil
}

func (m *mockClaimRepository) GetByID(ctx context.Context, claimID uint) (*claim.Claim, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, claimID)
	}
	return nil, nil
}

func (m *mockClaimRepository) List(ctx context.Context, filters claim.ClaimFilter) ([]*claim.Claim, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters)
	}
	return nil, 0, nil
}

func (m *mockClaimRepository) CountByStatusID(ctx context.Context, statusID uint) (int64, error) {
	if m.CountByStatusIDFunc != nil {
		return m.CountByStatusIDFunc(ctx, statusID)
	}
	return 0, nil
}

func (m *mockClaimRepository) CountBySubStatusID(ctx context.Context, subStatusID uint) (int64, error) {
	if m.CountBySubStatusIDFunc != nil {
		return m.CountBySubStatusIDFunc(ctx, subStatusID)
	}
	return 0, nil
}

type mockCatalogCache struct {
	GetStatusListFunc func(ctx context.Context) ([]dto.StatusDTO, bool)
	SetStatusListFunc func(ctx context.Context, statuses []dto.StatusDTO)
	InvalidateFunc    func(ctx context.Context)
	invalidations     int
}

func (m *mockCatalogCache) GetStatusList(ctx context.Context) ([]dto.StatusDTO, bool) {
	if m.GetStatusListFunc != nil {
		return m.GetStatusListFunc(ctx)
	}
	return nil, false
}

func (m *mockCatalogCache) SetStatusList(ctx context.Context, statuses []dto.StatusDTO) {
	if m.SetStatusListFunc != nil {
		m.SetStatusListFunc(ctx, statuses)
	}
}

func (m *mockCatalogCache) Invalidate(ctx context.Context) {
	m.invalidations++
	if m.InvalidateFunc != nil {
		m.InvalidateFunc(ctx)
	}
}

type mockTransactor struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct {
	InfowFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	DebugwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}
func (m *mockLogger) Fatal(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}
