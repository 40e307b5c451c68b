// Package repositorymock provides gomock implementations of the repository
// query interfaces.
package repositorymock

import (
	"context"
	"reflect"
	"time"

	"resource-booking-api/internal/infra/sqlq"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// MockUnitAuthorizationQueries mocks repository.UnitAuthorizationQueries.
type MockUnitAuthorizationQueries struct {
	ctrl     *gomock.Controller
	recorder *MockUnitAuthorizationQueriesMockRecorder
}

type MockUnitAuthorizationQueriesMockRecorder struct {
	mock *MockUnitAuthorizationQueries
}

func NewMockUnitAuthorizationQueries(ctrl *gomock.Controller) *MockUnitAuthorizationQueries {
	mock := &MockUnitAuthorizationQueries{ctrl: ctrl}
	mock.recorder = &MockUnitAuthorizationQueriesMockRecorder{mock}
	return mock
}

func (m *MockUnitAuthorizationQueries) EXPECT() *MockUnitAuthorizationQueriesMockRecorder {
	return m.recorder
}

func (m *MockUnitAuthorizationQueries) CreateUnitAuthorization(ctx context.Context, db sqlq.DBTX, arg sqlq.CreateUnitAuthorizationParams) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateUnitAuthorization", ctx, db, arg)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockUnitAuthorizationQueriesMockRecorder) CreateUnitAuthorization(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateUnitAuthorization", reflect.TypeOf((*MockUnitAuthorizationQueries)(nil).CreateUnitAuthorization), ctx, db, arg)
}

func (m *MockUnitAuthorizationQueries) GetAuthorizationLevels(ctx context.Context, db sqlq.DBTX, arg sqlq.GetAuthorizationLevelsParams) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAuthorizationLevels", ctx, db, arg)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUnitAuthorizationQueriesMockRecorder) GetAuthorizationLevels(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAuthorizationLevels", reflect.TypeOf((*MockUnitAuthorizationQueries)(nil).GetAuthorizationLevels), ctx, db, arg)
}

// MockCalendarLinkWriteQueries mocks repository.CalendarLinkWriteQueries.
type MockCalendarLinkWriteQueries struct {
	ctrl     *gomock.Controller
	recorder *MockCalendarLinkWriteQueriesMockRecorder
}

type MockCalendarLinkWriteQueriesMockRecorder struct {
	mock *MockCalendarLinkWriteQueries
}

func NewMockCalendarLinkWriteQueries(ctrl *gomock.Controller) *MockCalendarLinkWriteQueries {
	mock := &MockCalendarLinkWriteQueries{ctrl: ctrl}
	mock.recorder = &MockCalendarLinkWriteQueriesMockRecorder{mock}
	return mock
}

func (m *MockCalendarLinkWriteQueries) EXPECT() *MockCalendarLinkWriteQueriesMockRecorder {
	return m.recorder
}

func (m *MockCalendarLinkWriteQueries) CreateCalendarLink(ctx context.Context, db sqlq.DBTX, arg sqlq.CreateCalendarLinkParams) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateCalendarLink", ctx, db, arg)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockCalendarLinkWriteQueriesMockRecorder) CreateCalendarLink(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateCalendarLink", reflect.TypeOf((*MockCalendarLinkWriteQueries)(nil).CreateCalendarLink), ctx, db, arg)
}

func (m *MockCalendarLinkWriteQueries) UpdateCalendarLinkSyncState(ctx context.Context, db sqlq.DBTX, arg sqlq.UpdateCalendarLinkSyncStateParams) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateCalendarLinkSyncState", ctx, db, arg)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockCalendarLinkWriteQueriesMockRecorder) UpdateCalendarLinkSyncState(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateCalendarLinkSyncState", reflect.TypeOf((*MockCalendarLinkWriteQueries)(nil).UpdateCalendarLinkSyncState), ctx, db, arg)
}

func (m *MockCalendarLinkWriteQueries) DeleteCalendarLink(ctx context.Context, db sqlq.DBTX, id uuid.UUID) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteCalendarLink", ctx, db, id)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockCalendarLinkWriteQueriesMockRecorder) DeleteCalendarLink(ctx, db, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteCalendarLink", reflect.TypeOf((*MockCalendarLinkWriteQueries)(nil).DeleteCalendarLink), ctx, db, id)
}

func (m *MockCalendarLinkWriteQueries) UpsertEventMapping(ctx context.Context, db sqlq.DBTX, arg sqlq.UpsertEventMappingParams) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertEventMapping", ctx, db, arg)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockCalendarLinkWriteQueriesMockRecorder) UpsertEventMapping(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertEventMapping", reflect.TypeOf((*MockCalendarLinkWriteQueries)(nil).UpsertEventMapping), ctx, db, arg)
}

func (m *MockCalendarLinkWriteQueries) DeleteEventMapping(ctx context.Context, db sqlq.DBTX, linkID, reservationID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteEventMapping", ctx, db, linkID, reservationID)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockCalendarLinkWriteQueriesMockRecorder) DeleteEventMapping(ctx, db, linkID, reservationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteEventMapping", reflect.TypeOf((*MockCalendarLinkWriteQueries)(nil).DeleteEventMapping), ctx, db, linkID, reservationID)
}

// MockSyncQueueWriteQueries mocks repository.SyncQueueWriteQueries.
type MockSyncQueueWriteQueries struct {
	ctrl     *gomock.Controller
	recorder *MockSyncQueueWriteQueriesMockRecorder
}

type MockSyncQueueWriteQueriesMockRecorder struct {
	mock *MockSyncQueueWriteQueries
}

func NewMockSyncQueueWriteQueries(ctrl *gomock.Controller) *MockSyncQueueWriteQueries {
	mock := &MockSyncQueueWriteQueries{ctrl: ctrl}
	mock.recorder = &MockSyncQueueWriteQueriesMockRecorder{mock}
	return mock
}

func (m *MockSyncQueueWriteQueries) EXPECT() *MockSyncQueueWriteQueriesMockRecorder {
	return m.recorder
}

func (m *MockSyncQueueWriteQueries) EnqueueSyncEntry(ctx context.Context, db sqlq.DBTX, arg sqlq.EnqueueSyncEntryParams) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EnqueueSyncEntry", ctx, db, arg)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockSyncQueueWriteQueriesMockRecorder) EnqueueSyncEntry(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EnqueueSyncEntry", reflect.TypeOf((*MockSyncQueueWriteQueries)(nil).EnqueueSyncEntry), ctx, db, arg)
}

func (m *MockSyncQueueWriteQueries) DeleteSyncEntry(ctx context.Context, db sqlq.DBTX, id uuid.UUID) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteSyncEntry", ctx, db, id)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockSyncQueueWriteQueriesMockRecorder) DeleteSyncEntry(ctx, db, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteSyncEntry", reflect.TypeOf((*MockSyncQueueWriteQueries)(nil).DeleteSyncEntry), ctx, db, id)
}

// MockTokenRequestQueries mocks repository.TokenRequestQueries.
type MockTokenRequestQueries struct {
	ctrl     *gomock.Controller
	recorder *MockTokenRequestQueriesMockRecorder
}

type MockTokenRequestQueriesMockRecorder struct {
	mock *MockTokenRequestQueries
}

func NewMockTokenRequestQueries(ctrl *gomock.Controller) *MockTokenRequestQueries {
	mock := &MockTokenRequestQueries{ctrl: ctrl}
	mock.recorder = &MockTokenRequestQueriesMockRecorder{mock}
	return mock
}

func (m *MockTokenRequestQueries) EXPECT() *MockTokenRequestQueriesMockRecorder {
	return m.recorder
}

func (m *MockTokenRequestQueries) CreateTokenRequest(ctx context.Context, db sqlq.DBTX, arg sqlq.CreateTokenRequestParams) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateTokenRequest", ctx, db, arg)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockTokenRequestQueriesMockRecorder) CreateTokenRequest(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateTokenRequest", reflect.TypeOf((*MockTokenRequestQueries)(nil).CreateTokenRequest), ctx, db, arg)
}

func (m *MockTokenRequestQueries) GetTokenRequest(ctx context.Context, db sqlq.DBTX, state string) (sqlq.TokenRequestRow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTokenRequest", ctx, db, state)
	ret0, _ := ret[0].(sqlq.TokenRequestRow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockTokenRequestQueriesMockRecorder) GetTokenRequest(ctx, db, state any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTokenRequest", reflect.TypeOf((*MockTokenRequestQueries)(nil).GetTokenRequest), ctx, db, state)
}

func (m *MockTokenRequestQueries) DeleteTokenRequest(ctx context.Context, db sqlq.DBTX, state string) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteTokenRequest", ctx, db, state)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockTokenRequestQueriesMockRecorder) DeleteTokenRequest(ctx, db, state any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteTokenRequest", reflect.TypeOf((*MockTokenRequestQueries)(nil).DeleteTokenRequest), ctx, db, state)
}

// MockUserWriteQueries mocks repository.UserWriteQueries.
type MockUserWriteQueries struct {
	ctrl     *gomock.Controller
	recorder *MockUserWriteQueriesMockRecorder
}

type MockUserWriteQueriesMockRecorder struct {
	mock *MockUserWriteQueries
}

func NewMockUserWriteQueries(ctrl *gomock.Controller) *MockUserWriteQueries {
	mock := &MockUserWriteQueries{ctrl: ctrl}
	mock.recorder = &MockUserWriteQueriesMockRecorder{mock}
	return mock
}

func (m *MockUserWriteQueries) EXPECT() *MockUserWriteQueriesMockRecorder {
	return m.recorder
}

func (m *MockUserWriteQueries) SetUserStaff(ctx context.Context, db sqlq.DBTX, id uuid.UUID) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetUserStaff", ctx, db, id)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUserWriteQueriesMockRecorder) SetUserStaff(ctx, db, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetUserStaff", reflect.TypeOf((*MockUserWriteQueries)(nil).SetUserStaff), ctx, db, id)
}

func (m *MockUserWriteQueries) UpdateUserLastLogin(ctx context.Context, db sqlq.DBTX, id uuid.UUID, at time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateUserLastLogin", ctx, db, id, at)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockUserWriteQueriesMockRecorder) UpdateUserLastLogin(ctx, db, id, at any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateUserLastLogin", reflect.TypeOf((*MockUserWriteQueries)(nil).UpdateUserLastLogin), ctx, db, id, at)
}
