package service

import (
	"context"
	"testing"
	"time"

	"github.com/avc/starstore/internal/domain"
	domainmocks "github.com/avc/starstore/internal/domain/mocks"
	"github.com/avc/starstore/internal/repository/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestReferralService(t *testing.T) (*ReferralService, *domainmocks.ReferralRepositoryMock, *domainmocks.NotifierMock) {
	t.Helper()

	repo := domainmocks.NewReferralRepositoryMock(t)
	notifier := domainmocks.NewNotifierMock(t)
	logger, _ := zap.NewDevelopment()

	return NewReferralService(repo, notifier, 10, logger), repo, notifier
}

func TestReferralService_CreateReferral(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, repo, _ := newTestReferralService(t)

		repo.EXPECT().CreateReferral(mock.Anything, int64(1), int64(2)).Return(nil).Once()

		err := svc.CreateReferral(ctx, 1, 2)
		require.NoError(t, err)
	})

	t.Run("Self referral ignored", func(t *testing.T) {
		svc, _, _ := newTestReferralService(t)

		err := svc.CreateReferral(ctx, 1, 1)
		require.NoError(t, err)
	})

	t.Run("Existing referral ignored", func(t *testing.T) {
		svc, repo, _ := newTestReferralService(t)

		repo.EXPECT().CreateReferral(mock.Anything, int64(1), int64(2)).
			Return(postgres.ErrReferralExists).Once()

		err := svc.CreateReferral(ctx, 1, 2)
		require.NoError(t, err)
	})
}

func TestReferralService_ActivateOnPurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("Activates and notifies referrer", func(t *testing.T) {
		svc, repo, notifier := newTestReferralService(t)

		referral := &domain.Referral{ReferrerID: 1, ReferredID: 2, Status: domain.ReferralStatusActive}
		repo.EXPECT().ActivatePendingReferral(mock.Anything, int64(2)).Return(referral, nil).Once()
		notifier.EXPECT().Notify(mock.Anything, int64(1), mock.Anything).Return(nil).Once()

		err := svc.ActivateOnPurchase(ctx, 2, "bob")
		require.NoError(t, err)
	})

	t.Run("No pending referral", func(t *testing.T) {
		svc, repo, _ := newTestReferralService(t)

		repo.EXPECT().ActivatePendingReferral(mock.Anything, int64(2)).
			Return(nil, postgres.ErrReferralNotFound).Once()

		err := svc.ActivateOnPurchase(ctx, 2, "bob")
		require.NoError(t, err)
	})
}

func TestReferralService_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("Counts and recent referrals", func(t *testing.T) {
		svc, repo, _ := newTestReferralService(t)

		now := time.Now()
		referrals := []*domain.Referral{
			{ReferrerID: 1, ReferredID: 2, Status: domain.ReferralStatusActive, ReferredAt: now.Add(-24 * time.Hour)},
			{ReferrerID: 1, ReferredID: 3, Status: domain.ReferralStatusActive, ReferredAt: now.Add(-72 * time.Hour)},
			{ReferrerID: 1, ReferredID: 4, Status: domain.ReferralStatusPending, ReferredAt: now.Add(-96 * time.Hour)},
			{ReferrerID: 1, ReferredID: 5, Status: domain.ReferralStatusPending, ReferredAt: now.Add(-120 * time.Hour)},
		}
		repo.EXPECT().ListReferralsByReferrer(mock.Anything, int64(1)).Return(referrals, nil).Once()

		summary, err := svc.Summary(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 4, summary.Count)
		assert.Equal(t, 20, summary.EarnedStars)
		require.Len(t, summary.RecentReferrals, 3)
		assert.Equal(t, int64(2), summary.RecentReferrals[0].Name)
		assert.Equal(t, 1, summary.RecentReferrals[0].DaysAgo)
		assert.Equal(t, 3, summary.RecentReferrals[1].DaysAgo)
	})

	t.Run("Empty", func(t *testing.T) {
		svc, repo, _ := newTestReferralService(t)

		repo.EXPECT().ListReferralsByReferrer(mock.Anything, int64(1)).Return(nil, nil).Once()

		summary, err := svc.Summary(ctx, 1)
		require.NoError(t, err)
		assert.Zero(t, summary.Count)
		assert.Zero(t, summary.EarnedStars)
		assert.Empty(t, summary.RecentReferrals)
	})
}
