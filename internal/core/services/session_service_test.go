package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fintrackpro/fintrack_app/internal/apperrors"
	portsrepo "github.com/fintrackpro/fintrack_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackpro/fintrack_app/internal/core/ports/services"
	"github.com/fintrackpro/fintrack_app/internal/core/services"
	"github.com/fintrackpro/fintrack_app/internal/repositories/memory"
	"github.com/stretchr/testify/suite"
)

// flakyStore wraps the in-memory store and fails FetchAll on demand, to
// exercise the failed-initial-load path.
type flakyStore struct {
	*memory.Store
	failFetch bool
}

func (f *flakyStore) FetchAll(ctx context.Context, userID string) (*portsrepo.Snapshot, error) {
	if f.failFetch {
		return nil, errors.New("store unavailable")
	}
	return f.Store.FetchAll(ctx, userID)
}

type SessionServiceTestSuite struct {
	suite.Suite
	store   *flakyStore
	service portssvc.SessionSvcFacade
}

func (suite *SessionServiceTestSuite) SetupTest() {
	suite.store = &flakyStore{Store: memory.NewStore()}
	reconciler := services.NewReconcilerService(suite.store, &recordingScheduler{})
	suite.service = services.NewSessionService(suite.store, reconciler, "test-secret", time.Hour, "fintrack-test")
}

func (suite *SessionServiceTestSuite) TestLogin_SeedsAndLoadsFirstTimeUser() {
	sess, token, err := suite.service.Login(context.Background(), "Alice Chen")
	suite.Require().NoError(err)
	suite.NotEmpty(token)

	suite.True(sess.Seeded)
	suite.False(sess.LoadFailed)
	suite.Equal("Alice Chen", sess.User.Name)
	suite.Equal("alice.chen@example.com", sess.User.Email)
	suite.Contains(sess.User.AvatarURL, "ui-avatars.com")

	accounts, transactions, stocks := sess.View()
	suite.NotEmpty(accounts)
	suite.NotEmpty(transactions)
	suite.NotEmpty(stocks)
}

func (suite *SessionServiceTestSuite) TestLogin_EmptyNameRejected() {
	_, _, err := suite.service.Login(context.Background(), "   ")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SessionServiceTestSuite) TestRestore_ReseedCheckDoesNotDuplicateData() {
	ctx := context.Background()
	sess, token, err := suite.service.Login(ctx, "Bob")
	suite.Require().NoError(err)
	seedCount := suite.store.Count(sess.User.UserID, portsrepo.KindAccount)

	restored, err := suite.service.Restore(ctx, token)
	suite.Require().NoError(err)
	suite.Equal(sess.User.UserID, restored.User.UserID)
	suite.False(restored.Seeded, "second seed check must be a no-op")
	suite.Equal(seedCount, suite.store.Count(sess.User.UserID, portsrepo.KindAccount))
}

func (suite *SessionServiceTestSuite) TestRestore_GarbageTokenRejected() {
	_, err := suite.service.Restore(context.Background(), "not-a-jwt")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *SessionServiceTestSuite) TestRestore_TokenSignedWithOtherSecretRejected() {
	other := services.NewSessionService(suite.store, services.NewReconcilerService(suite.store, &recordingScheduler{}), "other-secret", time.Hour, "fintrack-test")
	_, token, err := other.Login(context.Background(), "Mallory")
	suite.Require().NoError(err)

	_, err = suite.service.Restore(context.Background(), token)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *SessionServiceTestSuite) TestLogin_FetchFailureLeavesSessionUsable() {
	suite.store.failFetch = true

	sess, token, err := suite.service.Login(context.Background(), "Carol")
	suite.Require().NoError(err, "login itself succeeds even when the load fails")
	suite.NotEmpty(token)
	suite.True(sess.LoadFailed)

	accounts, transactions, stocks := sess.View()
	suite.Empty(accounts)
	suite.Empty(transactions)
	suite.Empty(stocks)
}

func (suite *SessionServiceTestSuite) TestReload_RecoversAfterFetchFailure() {
	ctx := context.Background()
	suite.store.failFetch = true
	sess, _, err := suite.service.Login(ctx, "Dave")
	suite.Require().NoError(err)
	suite.True(sess.LoadFailed)

	suite.store.failFetch = false
	reloaded, err := suite.service.Reload(ctx, sess.User.UserID)
	suite.Require().NoError(err)
	suite.False(reloaded.LoadFailed)

	accounts, _, _ := reloaded.View()
	suite.NotEmpty(accounts, "reload picks up the seeded collections")
}

func (suite *SessionServiceTestSuite) TestLogoutRemovesActiveSession() {
	sess, _, err := suite.service.Login(context.Background(), "Eve")
	suite.Require().NoError(err)

	_, ok := suite.service.Active(sess.User.UserID)
	suite.True(ok)

	suite.service.Logout(sess.User.UserID)
	_, ok = suite.service.Active(sess.User.UserID)
	suite.False(ok)

	_, err = suite.service.Reload(context.Background(), sess.User.UserID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}
