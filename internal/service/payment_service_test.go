package service

import (
	"context"
	"testing"

	"dealership/internal/model"
	"dealership/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPaymentService(t *testing.T) (PaymentService, ApplicationService) {
	t.Helper()
	appStore := newFakeApplicationStore()
	paymentStore := newFakePaymentStore()
	tx := &fakeTxManager{}
	appSvc := NewApplicationService(appStore, &fakeStatusStore{}, tx, nil, ApplicationConfig{})
	paymentSvc := NewPaymentService(paymentStore, appStore, tx)
	return paymentSvc, appSvc
}

func TestRecordPaymentDefaultsToPending(t *testing.T) {
	paymentSvc, appSvc := newTestPaymentService(t)

	app, err := appSvc.Create(context.Background(), validCreateRequest(), "")
	require.NoError(t, err)

	payment, err := paymentSvc.Record(context.Background(), CreatePaymentRequest{
		ApplicationID: app.ID.String(),
		Amount:        decimal.RequireFromString("50000.00"),
		PaymentMethod: "UPI",
		UPIReference:  "upi-ref-1",
	})
	require.NoError(t, err)
	assert.Equal(t, model.PaymentPending, payment.Status)
	assert.Nil(t, payment.TransactionID)

	listed, err := paymentSvc.ListByApplication(context.Background(), app.ID.String())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, payment.ID, listed[0].ID)
}

func TestRecordPaymentApplicationNotFound(t *testing.T) {
	paymentSvc, _ := newTestPaymentService(t)

	_, err := paymentSvc.Record(context.Background(), CreatePaymentRequest{
		ApplicationID: uuid.NewString(),
		Amount:        decimal.RequireFromString("100.00"),
		PaymentMethod: "UPI",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.NotFound, apperror.KindOf(err))
}

func TestUpdatePaymentPartialLeavesOtherFieldsAlone(t *testing.T) {
	paymentSvc, appSvc := newTestPaymentService(t)

	app, err := appSvc.Create(context.Background(), validCreateRequest(), "")
	require.NoError(t, err)

	payment, err := paymentSvc.Record(context.Background(), CreatePaymentRequest{
		ApplicationID: app.ID.String(),
		Amount:        decimal.RequireFromString("50000.00"),
		PaymentMethod: "UPI",
		UPIReference:  "upi-ref-2",
	})
	require.NoError(t, err)

	completed := model.PaymentCompleted
	updated, err := paymentSvc.Update(context.Background(), payment.ID.String(), UpdatePaymentRequest{
		Status: &completed,
	})
	require.NoError(t, err)
	assert.Equal(t, model.PaymentCompleted, updated.Status)
	assert.True(t, updated.Amount.Equal(payment.Amount))
	assert.Equal(t, "upi-ref-2", updated.UPIReference)
	assert.Nil(t, updated.TransactionID)
}

func TestUpdatePaymentRejectsUnknownStatus(t *testing.T) {
	paymentSvc, appSvc := newTestPaymentService(t)

	app, err := appSvc.Create(context.Background(), validCreateRequest(), "")
	require.NoError(t, err)

	payment, err := paymentSvc.Record(context.Background(), CreatePaymentRequest{
		ApplicationID: app.ID.String(),
		Amount:        decimal.RequireFromString("10.00"),
		PaymentMethod: "UPI",
	})
	require.NoError(t, err)

	bogus := "SETTLED"
	_, err = paymentSvc.Update(context.Background(), payment.ID.String(), UpdatePaymentRequest{Status: &bogus})
	require.Error(t, err)
	assert.Equal(t, apperror.Validation, apperror.KindOf(err))
}

func TestUpdatePaymentDuplicateTransactionID(t *testing.T) {
	paymentSvc, appSvc := newTestPaymentService(t)

	app, err := appSvc.Create(context.Background(), validCreateRequest(), "")
	require.NoError(t, err)

	first, err := paymentSvc.Record(context.Background(), CreatePaymentRequest{
		ApplicationID: app.ID.String(),
		Amount:        decimal.RequireFromString("100.00"),
		PaymentMethod: "UPI",
	})
	require.NoError(t, err)
	second, err := paymentSvc.Record(context.Background(), CreatePaymentRequest{
		ApplicationID: app.ID.String(),
		Amount:        decimal.RequireFromString("200.00"),
		PaymentMethod: "UPI",
	})
	require.NoError(t, err)

	txn := "TXN-123"
	_, err = paymentSvc.Update(context.Background(), first.ID.String(), UpdatePaymentRequest{TransactionID: &txn})
	require.NoError(t, err)

	_, err = paymentSvc.Update(context.Background(), second.ID.String(), UpdatePaymentRequest{TransactionID: &txn})
	require.Error(t, err)
	assert.Equal(t, apperror.Conflict, apperror.KindOf(err))
}

func TestUpdatePaymentNotFound(t *testing.T) {
	paymentSvc, _ := newTestPaymentService(t)

	completed := model.PaymentCompleted
	_, err := paymentSvc.Update(context.Background(), uuid.NewString(), UpdatePaymentRequest{Status: &completed})
	require.Error(t, err)
	assert.Equal(t, apperror.NotFound, apperror.KindOf(err))
}

func TestListPaymentsApplicationNotFound(t *testing.T) {
	paymentSvc, _ := newTestPaymentService(t)

	_, err := paymentSvc.ListByApplication(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.Equal(t, apperror.NotFound, apperror.KindOf(err))
}
