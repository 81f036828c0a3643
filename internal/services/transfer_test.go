package services

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finledger/wallet-ledger/internal/models"
)

type transferServiceMocks struct {
	wallets  *MockWalletReader
	locker   *MockWalletLocker
	txns     *MockTransactionSaver
	sums     *MockExpenseSummer
	signer   *MockTransactionSigner
	approval *MockApprovalDecider
	audits   *MockAuditor
	events   *MockTransactionPublisher
}

func newTransferService(t *testing.T, ctrl *gomock.Controller) (*TransferService, transferServiceMocks, sqlmock.Sqlmock) {
	t.Helper()
	db, dbMock := newTxDB(t)
	m := transferServiceMocks{
		wallets:  NewMockWalletReader(ctrl),
		locker:   NewMockWalletLocker(ctrl),
		txns:     NewMockTransactionSaver(ctrl),
		sums:     NewMockExpenseSummer(ctrl),
		signer:   NewMockTransactionSigner(ctrl),
		approval: NewMockApprovalDecider(ctrl),
		audits:   NewMockAuditor(ctrl),
		events:   NewMockTransactionPublisher(ctrl),
	}
	svc := NewTransferService(db, m.wallets, m.locker, m.txns, m.sums,
		NewLedger(), m.signer, m.approval, m.audits, m.events)
	return svc, m, dbMock
}

func TestTransferService_Transfer_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, m, _ := newTransferService(t, ctrl)

	sourceID := uuid.New()
	targetID := uuid.New()

	_, _, err := svc.Transfer(ctx, uuid.New(), sourceID, targetID, 0, "")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, _, err = svc.Transfer(ctx, uuid.New(), sourceID, sourceID, 100, "")
	assert.ErrorIs(t, err, ErrSameWallet)

	source := &models.WalletDB{WalletID: sourceID, Currency: "USD", Balance: 1000, AvailableBalance: 1000, IsActive: true}
	target := &models.WalletDB{WalletID: targetID, Currency: "EUR", Balance: 0, AvailableBalance: 0, IsActive: true}
	m.wallets.EXPECT().GetByID(ctx, sourceID).Return(source, nil)
	m.wallets.EXPECT().GetByID(ctx, targetID).Return(target, nil)

	_, _, err = svc.Transfer(ctx, uuid.New(), sourceID, targetID, 100, "")
	assert.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestTransferService_Transfer_Completed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	// Fixed ids so the expected lock order is deterministic.
	sourceID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	targetID := uuid.MustParse("11111111-1111-1111-1111-111111111111")

	svc, m, dbMock := newTransferService(t, ctrl)

	source := &models.WalletDB{WalletID: sourceID, Currency: "USD", Balance: 1000, AvailableBalance: 1000, IsActive: true}
	target := &models.WalletDB{WalletID: targetID, Currency: "USD", Balance: 500, AvailableBalance: 500, IsActive: true}
	lockedSource := &models.WalletDB{WalletID: sourceID, Currency: "USD", Balance: 1000, AvailableBalance: 1000, IsActive: true}
	lockedTarget := &models.WalletDB{WalletID: targetID, Currency: "USD", Balance: 500, AvailableBalance: 500, IsActive: true}

	m.wallets.EXPECT().GetByID(ctx, sourceID).Return(source, nil)
	m.wallets.EXPECT().GetByID(ctx, targetID).Return(target, nil)
	m.sums.EXPECT().SumExpensesSince(ctx, sourceID, gomock.Any()).Return(0.0, nil).Times(4)
	m.approval.EXPECT().Decide(source, 200.0).Return(false, nil)

	var outgoing, incoming *models.TransactionDB
	m.signer.EXPECT().Attach(gomock.Any()).Do(func(txn *models.TransactionDB) { outgoing = txn })
	m.signer.EXPECT().Attach(gomock.Any()).Do(func(txn *models.TransactionDB) { incoming = txn })

	dbMock.ExpectBegin()
	// The target id sorts first, so its lock must be taken first.
	gomock.InOrder(
		m.locker.EXPECT().GetForUpdate(ctx, gomock.Any(), targetID).Return(lockedTarget, nil),
		m.locker.EXPECT().GetForUpdate(ctx, gomock.Any(), sourceID).Return(lockedSource, nil),
	)
	m.txns.EXPECT().Save(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.locker.EXPECT().UpdateBalances(ctx, gomock.Any(), lockedSource).Return(nil)
	m.locker.EXPECT().UpdateBalances(ctx, gomock.Any(), lockedTarget).Return(nil)
	m.audits.EXPECT().Log(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(2)
	dbMock.ExpectCommit()
	m.events.EXPECT().Publish(ctx, gomock.Any()).Times(2)

	gotOut, gotIn, err := svc.Transfer(ctx, userID, sourceID, targetID, 200, "invoice 42")
	assert.NoError(t, err)
	assert.Same(t, outgoing, gotOut)
	assert.Same(t, incoming, gotIn)

	// Both legs share one correlation id and link to each other.
	assert.Equal(t, gotOut.Reference, gotIn.Reference)
	require.NotNil(t, gotOut.LinkedID)
	require.NotNil(t, gotIn.LinkedID)
	assert.Equal(t, gotIn.TransactionID, *gotOut.LinkedID)
	assert.Equal(t, gotOut.TransactionID, *gotIn.LinkedID)

	outMeta, err := models.ParseMetadata(gotOut.Metadata)
	assert.NoError(t, err)
	assert.Equal(t, models.DirectionOutgoing, outMeta.Direction)
	inMeta, err := models.ParseMetadata(gotIn.Metadata)
	assert.NoError(t, err)
	assert.Equal(t, models.DirectionIncoming, inMeta.Direction)

	// Funds are conserved across the pair.
	assert.Equal(t, 800.0, lockedSource.Balance)
	assert.Equal(t, 700.0, lockedTarget.Balance)
	assert.Equal(t, 1500.0, lockedSource.Balance+lockedTarget.Balance)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestTransferService_Transfer_HeldForApproval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	sourceID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	targetID := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	svc, m, dbMock := newTransferService(t, ctrl)

	limit := 100.0
	source := &models.WalletDB{WalletID: sourceID, Currency: "USD", Balance: 5000, AvailableBalance: 5000, IsActive: true, RequireApproval: true, ApprovalLimit: &limit}
	target := &models.WalletDB{WalletID: targetID, Currency: "USD", Balance: 0, AvailableBalance: 0, IsActive: true}
	lockedSource := &models.WalletDB{WalletID: sourceID, Currency: "USD", Balance: 5000, AvailableBalance: 5000, IsActive: true, RequireApproval: true, ApprovalLimit: &limit}
	lockedTarget := &models.WalletDB{WalletID: targetID, Currency: "USD", Balance: 0, AvailableBalance: 0, IsActive: true}

	m.wallets.EXPECT().GetByID(ctx, sourceID).Return(source, nil)
	m.wallets.EXPECT().GetByID(ctx, targetID).Return(target, nil)
	m.sums.EXPECT().SumExpensesSince(ctx, sourceID, gomock.Any()).Return(0.0, nil).Times(4)
	m.approval.EXPECT().Decide(source, 1500.0).Return(true, models.ChainForAmount(1500))
	m.signer.EXPECT().Attach(gomock.Any()).Times(2)

	dbMock.ExpectBegin()
	m.locker.EXPECT().GetForUpdate(ctx, gomock.Any(), sourceID).Return(lockedSource, nil)
	m.locker.EXPECT().GetForUpdate(ctx, gomock.Any(), targetID).Return(lockedTarget, nil)
	m.txns.EXPECT().Save(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(2)
	// Only the source carries the hold; the target is untouched until approval.
	m.locker.EXPECT().UpdateBalances(ctx, gomock.Any(), lockedSource).Return(nil)
	m.audits.EXPECT().Log(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(2)
	dbMock.ExpectCommit()

	gotOut, gotIn, err := svc.Transfer(ctx, uuid.New(), sourceID, targetID, 1500, "")
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, gotOut.Status)
	assert.Equal(t, models.StatusPending, gotIn.Status)

	assert.Equal(t, 5000.0, lockedSource.Balance)
	assert.Equal(t, 3500.0, lockedSource.AvailableBalance)
	assert.Equal(t, 1500.0, lockedSource.PendingBalance)
	assert.Equal(t, 0.0, lockedTarget.Balance)

	outMeta, err := models.ParseMetadata(gotOut.Metadata)
	assert.NoError(t, err)
	require.NotNil(t, outMeta.ApprovalChain)
	assert.Len(t, outMeta.ApprovalChain.Levels, 2)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestTransferService_Transfer_SpendPolicyRecheckUnderLock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	sourceID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	targetID := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	svc, m, dbMock := newTransferService(t, ctrl)

	source := &models.WalletDB{WalletID: sourceID, Currency: "USD", Balance: 1000, AvailableBalance: 1000, IsActive: true}
	target := &models.WalletDB{WalletID: targetID, Currency: "USD", Balance: 0, AvailableBalance: 0, IsActive: true}
	// By the time the lock is held, a concurrent spend drained the wallet.
	lockedSource := &models.WalletDB{WalletID: sourceID, Currency: "USD", Balance: 100, AvailableBalance: 100, IsActive: true}
	lockedTarget := &models.WalletDB{WalletID: targetID, Currency: "USD", Balance: 0, AvailableBalance: 0, IsActive: true}

	m.wallets.EXPECT().GetByID(ctx, sourceID).Return(source, nil)
	m.wallets.EXPECT().GetByID(ctx, targetID).Return(target, nil)
	m.sums.EXPECT().SumExpensesSince(ctx, sourceID, gomock.Any()).Return(0.0, nil).Times(4)
	m.approval.EXPECT().Decide(source, 500.0).Return(false, nil)
	m.signer.EXPECT().Attach(gomock.Any()).Times(2)

	dbMock.ExpectBegin()
	m.locker.EXPECT().GetForUpdate(ctx, gomock.Any(), sourceID).Return(lockedSource, nil)
	m.locker.EXPECT().GetForUpdate(ctx, gomock.Any(), targetID).Return(lockedTarget, nil)
	dbMock.ExpectRollback()

	_, _, err := svc.Transfer(ctx, uuid.New(), sourceID, targetID, 500, "")
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
