package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/innovationlabs/trackify/internal/clock"
	paymentdomain "github.com/innovationlabs/trackify/internal/payment/domain"
	paymentrepo "github.com/innovationlabs/trackify/internal/payment/repository"
	pricingdomain "github.com/innovationlabs/trackify/internal/pricing/domain"
	"github.com/innovationlabs/trackify/pkg/id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (paymentdomain.Service, *gorm.DB, *clock.FakeClock) {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&paymentdomain.Record{}))

	fake := clock.NewFakeClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	svc := New(Params{
		DB:    conn,
		Log:   zap.NewNop(),
		GenID: id.New(),
		Clock: fake,
		Repo:  paymentrepo.Provide(),
	})
	return svc, conn, fake
}

func testBreakdown() pricingdomain.Breakdown {
	return pricingdomain.Breakdown{
		ServiceKind: pricingdomain.KindPrinter3D,
		Description: "3D Printing: 150g PLA, 2.5h",
		LineItems: []pricingdomain.LineItem{
			{Label: "Filament cost", Amount: 18000},
			{Label: "Power cost", Amount: 1250},
		},
		Total: 19250,
	}
}

func TestRecord_PersistsPayment(t *testing.T) {
	svc, _, fake := newTestService(t)

	record, err := svc.Record(context.Background(), paymentdomain.RecordRequest{
		PayerID:       "member-42",
		PaymentMethod: paymentdomain.MethodCash,
		Breakdown:     testBreakdown(),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(record.PaymentID, "pay_"))
	assert.Len(t, record.PaymentID, len("pay_")+8)
	assert.Equal(t, "member-42", record.PayerID)
	assert.Equal(t, int64(19250), record.Amount)
	assert.Equal(t, paymentdomain.StatusCompleted, record.Status)
	assert.Equal(t, fake.Now(), record.RecordedAt)
	assert.Equal(t, fake.Now(), record.ServiceDate)
	assert.JSONEq(t, `{
		"service_kind": "printer_3d",
		"description": "3D Printing: 150g PLA, 2.5h",
		"line_items": [
			{"label": "Filament cost", "amount": 18000},
			{"label": "Power cost", "amount": 1250}
		],
		"total": 19250
	}`, string(record.ServiceDetails))

	fetched, err := svc.Get(context.Background(), record.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, record.PaymentID, fetched.PaymentID)
	assert.Equal(t, record.Amount, fetched.Amount)
}

func TestRecord_Validation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Record(ctx, paymentdomain.RecordRequest{
		PayerID:       "  ",
		PaymentMethod: paymentdomain.MethodCash,
		Breakdown:     testBreakdown(),
	})
	assert.ErrorIs(t, err, paymentdomain.ErrInvalidPayer)

	_, err = svc.Record(ctx, paymentdomain.RecordRequest{
		PayerID:       "member-42",
		PaymentMethod: "crypto",
		Breakdown:     testBreakdown(),
	})
	assert.ErrorIs(t, err, paymentdomain.ErrInvalidPaymentMethod)

	negative := testBreakdown()
	negative.Total = -1
	_, err = svc.Record(ctx, paymentdomain.RecordRequest{
		PayerID:       "member-42",
		PaymentMethod: paymentdomain.MethodCash,
		Breakdown:     negative,
	})
	assert.ErrorIs(t, err, paymentdomain.ErrInvalidAmount)
}

func TestRecord_IdempotencyKeyReplay(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	req := paymentdomain.RecordRequest{
		PayerID:        "member-42",
		PaymentMethod:  paymentdomain.MethodCard,
		Breakdown:      testBreakdown(),
		IdempotencyKey: "submit-attempt-1",
	}

	first, err := svc.Record(ctx, req)
	require.NoError(t, err)
	second, err := svc.Record(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.PaymentID, second.PaymentID)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpdateStatus_PendingTransitions(t *testing.T) {
	svc, conn, fake := newTestService(t)
	ctx := context.Background()

	pending := &paymentdomain.Record{
		PaymentID:     "pay_pending1",
		PayerID:       "member-7",
		ServiceKind:   string(pricingdomain.KindSoldering),
		Description:   "Soldering Station: 1.5h",
		Amount:        1500,
		PaymentMethod: paymentdomain.MethodCash,
		Status:        paymentdomain.StatusPending,
		ServiceDate:   fake.Now(),
		RecordedAt:    fake.Now(),
		UpdatedAt:     fake.Now(),
	}
	require.NoError(t, conn.Create(pending).Error)

	fake.Advance(time.Hour)
	updated, err := svc.UpdateStatus(ctx, "pay_pending1", paymentdomain.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, paymentdomain.StatusCompleted, updated.Status)
	assert.Equal(t, fake.Now(), updated.UpdatedAt)

	// Completed payments are final.
	_, err = svc.UpdateStatus(ctx, "pay_pending1", paymentdomain.StatusFailed)
	assert.ErrorIs(t, err, paymentdomain.ErrInvalidStatusTransition)
}

func TestUpdateStatus_Invalid(t *testing.T) {
	svc, conn, fake := newTestService(t)
	ctx := context.Background()

	pending := &paymentdomain.Record{
		PaymentID:     "pay_pending2",
		PayerID:       "member-7",
		ServiceKind:   string(pricingdomain.KindSoldering),
		Description:   "Soldering Station: 1h",
		Amount:        1000,
		PaymentMethod: paymentdomain.MethodCash,
		Status:        paymentdomain.StatusPending,
		ServiceDate:   fake.Now(),
		RecordedAt:    fake.Now(),
		UpdatedAt:     fake.Now(),
	}
	require.NoError(t, conn.Create(pending).Error)

	_, err := svc.UpdateStatus(ctx, "pay_pending2", "refunded")
	assert.ErrorIs(t, err, paymentdomain.ErrInvalidStatus)

	_, err = svc.UpdateStatus(ctx, "pay_pending2", paymentdomain.StatusPending)
	assert.ErrorIs(t, err, paymentdomain.ErrInvalidStatusTransition)

	_, err = svc.UpdateStatus(ctx, "pay_missing", paymentdomain.StatusCompleted)
	assert.ErrorIs(t, err, paymentdomain.ErrNotFound)
}

func TestGet_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Get(context.Background(), "pay_missing1")
	assert.ErrorIs(t, err, paymentdomain.ErrNotFound)
}

func TestList_NewestFirst(t *testing.T) {
	svc, _, fake := newTestService(t)
	ctx := context.Background()

	first, err := svc.Record(ctx, paymentdomain.RecordRequest{
		PayerID:       "member-1",
		PaymentMethod: paymentdomain.MethodCash,
		Breakdown:     testBreakdown(),
	})
	require.NoError(t, err)

	fake.Advance(time.Minute)
	second, err := svc.Record(ctx, paymentdomain.RecordRequest{
		PayerID:       "member-2",
		PaymentMethod: paymentdomain.MethodPaypal,
		Breakdown:     testBreakdown(),
	})
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.PaymentID, all[0].PaymentID)
	assert.Equal(t, first.PaymentID, all[1].PaymentID)
}
