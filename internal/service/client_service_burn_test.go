package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-secret-share/internal/adapter"
	"github.com/MKhiriev/go-secret-share/internal/app"
	"github.com/MKhiriev/go-secret-share/internal/logger"
	"github.com/MKhiriev/go-secret-share/internal/mock"
	"github.com/MKhiriev/go-secret-share/internal/store"
)

func newTestBurnSvc(t *testing.T, ctrl *gomock.Controller) (*burnService, *mock.MockSecretAPI, *mock.MockLedgerRepository) {
	t.Helper()
	api := mock.NewMockSecretAPI(ctrl)
	ledger := mock.NewMockLedgerRepository(ctrl)
	svc := NewBurnService(api, ledger, logger.Nop()).(*burnService)
	svc.now = func() time.Time { return time.Unix(100, 0) }
	return svc, api, ledger
}

func TestBurnService_Burn_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, api, ledger := newTestBurnSvc(t, ctrl)

	gomock.InOrder(
		api.EXPECT().BurnSecret(gomock.Any(), "abc").Return(nil),
		ledger.EXPECT().MarkBurned(gomock.Any(), "abc", time.Unix(100, 0)).Return(nil),
	)

	require.NoError(t, svc.Burn(context.Background(), "abc"))
}

func TestBurnService_Burn_NotInLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, api, ledger := newTestBurnSvc(t, ctrl)

	api.EXPECT().BurnSecret(gomock.Any(), "abc").Return(nil)
	ledger.EXPECT().MarkBurned(gomock.Any(), "abc", gomock.Any()).Return(store.ErrLedgerEntryNotFound)

	assert.NoError(t, svc.Burn(context.Background(), "abc"))
}

func TestBurnService_Burn_LedgerFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, api, ledger := newTestBurnSvc(t, ctrl)

	api.EXPECT().BurnSecret(gomock.Any(), "abc").Return(nil)
	ledger.EXPECT().MarkBurned(gomock.Any(), "abc", gomock.Any()).Return(errors.New("locked"))

	assert.NoError(t, svc.Burn(context.Background(), "abc"))
}

func TestBurnService_Burn_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, api, _ := newTestBurnSvc(t, ctrl)

	api.EXPECT().BurnSecret(gomock.Any(), "abc").Return(adapter.ErrNotFound)

	err := svc.Burn(context.Background(), "abc")
	require.ErrorIs(t, err, adapter.ErrNotFound)
	assert.Equal(t, app.MsgSecretNotFound, NewFeedback(err).Banner)
}

func TestBurnService_Burn_EmptyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestBurnSvc(t, ctrl)

	assert.ErrorIs(t, svc.Burn(context.Background(), ""), ErrInvalidState)
}
