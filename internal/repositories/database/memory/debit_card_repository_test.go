package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/SscSPs/debit_card_app/internal/apperrors"
	"github.com/SscSPs/debit_card_app/internal/core/domain"
	"github.com/SscSPs/debit_card_app/internal/repositories/database/memory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DebitCardRepositoryTestSuite struct {
	suite.Suite
	repo   *memory.DebitCardRepository
	ctx    context.Context
	cardID uuid.UUID
}

func (suite *DebitCardRepositoryTestSuite) SetupTest() {
	suite.repo = memory.NewDebitCardRepository()
	suite.ctx = context.Background()
	suite.cardID = uuid.New()
}

func bd(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func (suite *DebitCardRepositoryTestSuite) TestSave_StoresCardAndFlushesChanges() {
	card := domain.NewDebitCardWithID(suite.cardID).
		AssignLimit(bd("10")).
		Charge(uuid.New(), bd("5")).
		Block().
		Unblock()

	saved, err := suite.repo.Save(suite.ctx, card)

	suite.Require().NoError(err)
	suite.Empty(saved.PendingChanges())
	suite.Equal(int64(1), saved.Version())

	read, err := suite.repo.GetByUUID(suite.ctx, suite.cardID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), read.Version())
	suite.True(read.ToSummary().Equal(card.ToSummary()))
}

func (suite *DebitCardRepositoryTestSuite) TestGetSummaryByUUID() {
	card := domain.NewDebitCardWithID(suite.cardID).
		AssignLimit(bd("-10")).
		Charge(uuid.New(), bd("5"))
	_, err := suite.repo.Save(suite.ctx, card)
	suite.Require().NoError(err)

	summary, err := suite.repo.GetSummaryByUUID(suite.ctx, suite.cardID)

	suite.Require().NoError(err)
	suite.True(summary.Equal(card.ToSummary()))
	suite.True(summary.Balance.Equal(bd("-5")))
	suite.Require().NotNil(summary.Limit)
	suite.True(summary.Limit.Equal(bd("-10")))
}

func (suite *DebitCardRepositoryTestSuite) TestGetByUUID_NotFound() {
	_, err := suite.repo.GetByUUID(suite.ctx, uuid.New())
	suite.ErrorIs(err, apperrors.ErrNotFound)

	summary, err := suite.repo.GetSummaryByUUID(suite.ctx, uuid.New())
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(summary)
}

func (suite *DebitCardRepositoryTestSuite) TestSave_IncrementsVersionOncePerSave() {
	saved, err := suite.repo.Save(suite.ctx, domain.NewDebitCardWithID(suite.cardID))
	suite.Require().NoError(err)

	for want := int64(2); want <= 4; want++ {
		loaded, err := suite.repo.GetByUUID(suite.ctx, suite.cardID)
		suite.Require().NoError(err)
		saved, err = suite.repo.Save(suite.ctx, loaded.PayOff(uuid.New(), bd("1")))
		suite.Require().NoError(err)
		suite.Equal(want, saved.Version())
	}

	summary, err := suite.repo.GetSummaryByUUID(suite.ctx, suite.cardID)
	suite.Require().NoError(err)
	suite.True(summary.Balance.Equal(bd("3")))
}

func (suite *DebitCardRepositoryTestSuite) TestSave_RejectsStaleObject() {
	_, err := suite.repo.Save(suite.ctx, domain.NewDebitCardWithID(suite.cardID).AssignLimit(bd("10")))
	suite.Require().NoError(err)

	sameCard1, err := suite.repo.GetByUUID(suite.ctx, suite.cardID)
	suite.Require().NoError(err)
	sameCard2, err := suite.repo.GetByUUID(suite.ctx, suite.cardID)
	suite.Require().NoError(err)

	sameCard1 = sameCard1.Charge(uuid.New(), bd("5"))
	sameCard2 = sameCard2.Block().Unblock()

	_, err = suite.repo.Save(suite.ctx, sameCard1)
	suite.Require().NoError(err)

	_, err = suite.repo.Save(suite.ctx, sameCard2)
	suite.ErrorIs(err, apperrors.ErrStaleWrite)

	summary, err := suite.repo.GetSummaryByUUID(suite.ctx, suite.cardID)
	suite.Require().NoError(err)
	suite.True(summary.Equal(sameCard1.ToSummary()))
}

func (suite *DebitCardRepositoryTestSuite) TestSave_DuplicateNewCard() {
	_, err := suite.repo.Save(suite.ctx, domain.NewDebitCardWithID(suite.cardID))
	suite.Require().NoError(err)

	_, err = suite.repo.Save(suite.ctx, domain.NewDebitCardWithID(suite.cardID).Block())

	suite.ErrorIs(err, apperrors.ErrStaleWrite)
	summary, err := suite.repo.GetSummaryByUUID(suite.ctx, suite.cardID)
	suite.Require().NoError(err)
	suite.False(summary.Blocked)
}

func (suite *DebitCardRepositoryTestSuite) TestSave_UnknownPersistedCard() {
	card := domain.RestoreDebitCard(uuid.New(), 3, bd("0"), nil, false)

	_, err := suite.repo.Save(suite.ctx, card)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *DebitCardRepositoryTestSuite) TestSave_ConcurrentWritersExactlyOneWins() {
	_, err := suite.repo.Save(suite.ctx, domain.NewDebitCardWithID(suite.cardID))
	suite.Require().NoError(err)
	loaded, err := suite.repo.GetByUUID(suite.ctx, suite.cardID)
	suite.Require().NoError(err)

	const writers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.repo.Save(suite.ctx, loaded.PayOff(uuid.New(), bd("1")))
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
			} else if suite.ErrorIs(err, apperrors.ErrStaleWrite) {
				conflicts++
			}
		}()
	}
	wg.Wait()

	suite.Equal(1, successes)
	suite.Equal(writers-1, conflicts)
	summary, err := suite.repo.GetSummaryByUUID(suite.ctx, suite.cardID)
	suite.Require().NoError(err)
	suite.True(summary.Balance.Equal(bd("1")))
}

func (suite *DebitCardRepositoryTestSuite) TestClean() {
	_, err := suite.repo.Save(suite.ctx, domain.NewDebitCardWithID(suite.cardID))
	suite.Require().NoError(err)

	suite.repo.Clean()

	_, err = suite.repo.GetByUUID(suite.ctx, suite.cardID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestDebitCardRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DebitCardRepositoryTestSuite))
}
