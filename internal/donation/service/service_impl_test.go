package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/innovationlabs/trackify/internal/clock"
	donationdomain "github.com/innovationlabs/trackify/internal/donation/domain"
	donationrepo "github.com/innovationlabs/trackify/internal/donation/repository"
	"github.com/innovationlabs/trackify/pkg/id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (donationdomain.Service, *clock.FakeClock) {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&donationdomain.Record{}))

	fake := clock.NewFakeClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	svc := New(Params{
		DB:    conn,
		Log:   zap.NewNop(),
		GenID: id.New(),
		Clock: fake,
		Repo:  donationrepo.Provide(),
	})
	return svc, fake
}

func amount(v int64) *int64 { return &v }

func TestRecord_Monetary(t *testing.T) {
	svc, fake := newTestService(t)

	record, err := svc.Record(context.Background(), donationdomain.RecordInput{
		DonorName: "Juan dela Cruz",
		Type:      donationdomain.TypeMonetary,
		Amount:    amount(50000),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(record.DonationID, "don_"))
	assert.Len(t, record.DonationID, len("don_")+8)
	require.NotNil(t, record.DonorName)
	assert.Equal(t, "Juan dela Cruz", *record.DonorName)
	require.NotNil(t, record.Amount)
	assert.Equal(t, int64(50000), *record.Amount)
	assert.Nil(t, record.ItemDescription)
	assert.Nil(t, record.EstimatedValue)
	assert.Nil(t, record.Condition)
	assert.Equal(t, fake.Now(), record.RecordedAt)
	assert.Equal(t, fake.Now(), record.DonationDate)
}

func TestRecord_MonetaryAnonymous(t *testing.T) {
	svc, _ := newTestService(t)

	record, err := svc.Record(context.Background(), donationdomain.RecordInput{
		Type:   donationdomain.TypeMonetary,
		Amount: amount(2500),
	})
	require.NoError(t, err)
	assert.Nil(t, record.DonorName)
}

func TestRecord_Item(t *testing.T) {
	svc, _ := newTestService(t)

	record, err := svc.Record(context.Background(), donationdomain.RecordInput{
		DonorName:       "Maria Santos",
		Type:            donationdomain.TypeItem,
		ItemDescription: "Prusa MK3S 3D printer",
		EstimatedValue:  amount(2500000),
		Condition:       "good",
	})
	require.NoError(t, err)

	assert.Nil(t, record.Amount)
	require.NotNil(t, record.ItemDescription)
	assert.Equal(t, "Prusa MK3S 3D printer", *record.ItemDescription)
	require.NotNil(t, record.EstimatedValue)
	assert.Equal(t, int64(2500000), *record.EstimatedValue)
	require.NotNil(t, record.Condition)
	assert.Equal(t, donationdomain.ConditionGood, *record.Condition)
}

func TestRecord_ItemMinimal(t *testing.T) {
	svc, _ := newTestService(t)

	record, err := svc.Record(context.Background(), donationdomain.RecordInput{
		Type:            donationdomain.TypeItem,
		ItemDescription: "Box of jumper wires",
	})
	require.NoError(t, err)
	assert.Nil(t, record.EstimatedValue)
	assert.Nil(t, record.Condition)
}

func TestRecord_Validation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Record(ctx, donationdomain.RecordInput{Type: "services"})
	assert.ErrorIs(t, err, donationdomain.ErrInvalidDonationType)

	_, err = svc.Record(ctx, donationdomain.RecordInput{Type: donationdomain.TypeMonetary})
	assert.ErrorIs(t, err, donationdomain.ErrInvalidAmount)

	_, err = svc.Record(ctx, donationdomain.RecordInput{Type: donationdomain.TypeMonetary, Amount: amount(0)})
	assert.ErrorIs(t, err, donationdomain.ErrInvalidAmount)

	_, err = svc.Record(ctx, donationdomain.RecordInput{Type: donationdomain.TypeMonetary, Amount: amount(-500)})
	assert.ErrorIs(t, err, donationdomain.ErrInvalidAmount)

	_, err = svc.Record(ctx, donationdomain.RecordInput{
		Type:            donationdomain.TypeMonetary,
		Amount:          amount(500),
		ItemDescription: "Also a printer",
	})
	assert.ErrorIs(t, err, donationdomain.ErrAmbiguousInput)

	_, err = svc.Record(ctx, donationdomain.RecordInput{Type: donationdomain.TypeItem})
	assert.ErrorIs(t, err, donationdomain.ErrMissingDescription)

	_, err = svc.Record(ctx, donationdomain.RecordInput{
		Type:            donationdomain.TypeItem,
		ItemDescription: "Multimeter",
		Amount:          amount(500),
	})
	assert.ErrorIs(t, err, donationdomain.ErrAmbiguousInput)

	_, err = svc.Record(ctx, donationdomain.RecordInput{
		Type:            donationdomain.TypeItem,
		ItemDescription: "Multimeter",
		EstimatedValue:  amount(-1),
	})
	assert.ErrorIs(t, err, donationdomain.ErrInvalidValue)

	_, err = svc.Record(ctx, donationdomain.RecordInput{
		Type:            donationdomain.TypeItem,
		ItemDescription: "Multimeter",
		Condition:       "rusty",
	})
	assert.ErrorIs(t, err, donationdomain.ErrInvalidCondition)
}

func TestGetAndList(t *testing.T) {
	svc, fake := newTestService(t)
	ctx := context.Background()

	first, err := svc.Record(ctx, donationdomain.RecordInput{
		Type:   donationdomain.TypeMonetary,
		Amount: amount(10000),
	})
	require.NoError(t, err)

	fake.Advance(time.Minute)
	second, err := svc.Record(ctx, donationdomain.RecordInput{
		Type:            donationdomain.TypeItem,
		ItemDescription: "Soldering iron",
	})
	require.NoError(t, err)

	fetched, err := svc.Get(ctx, first.DonationID)
	require.NoError(t, err)
	assert.Equal(t, first.DonationID, fetched.DonationID)

	_, err = svc.Get(ctx, "don_missing1")
	assert.ErrorIs(t, err, donationdomain.ErrNotFound)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.DonationID, all[0].DonationID)
	assert.Equal(t, first.DonationID, all[1].DonationID)
}
