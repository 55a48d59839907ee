package pgsql_test

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/SscSPs/debit_card_app/internal/apperrors"
	"github.com/SscSPs/debit_card_app/internal/core/domain"
	"github.com/SscSPs/debit_card_app/internal/repositories/database/pgsql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

var (
	insertCardSQL  = regexp.QuoteMeta("INSERT INTO debit_cards (")
	updateCardSQL  = regexp.QuoteMeta("UPDATE debit_cards")
	existsCardSQL  = regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM debit_cards")
	insertEventSQL = regexp.QuoteMeta("INSERT INTO debit_card_events")
	selectCardSQL  = regexp.QuoteMeta("FROM debit_cards")
)

// decimalArg matches a bound decimal.Decimal or decimal.NullDecimal by numeric value.
type decimalArg struct {
	want *decimal.Decimal
}

func moneyArg(value string) decimalArg {
	d := decimal.RequireFromString(value)
	return decimalArg{want: &d}
}

func (a decimalArg) Match(v any) bool {
	switch got := v.(type) {
	case decimal.Decimal:
		return a.want != nil && got.Equal(*a.want)
	case decimal.NullDecimal:
		if a.want == nil {
			return !got.Valid
		}
		return got.Valid && got.Decimal.Equal(*a.want)
	default:
		return false
	}
}

type PgxDebitCardRepositoryTestSuite struct {
	suite.Suite
	mock   pgxmock.PgxPoolIface
	repo   *pgsql.PgxDebitCardRepository
	ctx    context.Context
	cardID uuid.UUID
}

func (suite *PgxDebitCardRepositoryTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	suite.Require().NoError(err)
	suite.mock = mock
	suite.repo = pgsql.NewPgxDebitCardRepository(mock)
	suite.ctx = context.Background()
	suite.cardID = uuid.New()
}

func (suite *PgxDebitCardRepositoryTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func bd(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func (suite *PgxDebitCardRepositoryTestSuite) TestSave_InsertsNewCard() {
	card := domain.NewDebitCardWithID(suite.cardID)

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(insertCardSQL).
		WithArgs(suite.cardID, int64(1), moneyArg("0"), decimalArg{}, false).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	suite.mock.ExpectCommit()

	saved, err := suite.repo.Save(suite.ctx, card)

	suite.Require().NoError(err)
	suite.Equal(int64(1), saved.Version())
	suite.Empty(saved.PendingChanges())
}

func (suite *PgxDebitCardRepositoryTestSuite) TestSave_DuplicateInsertIsStaleWrite() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(insertCardSQL).
		WithArgs(suite.cardID, int64(1), moneyArg("0"), decimalArg{}, false).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	suite.mock.ExpectRollback()

	_, err := suite.repo.Save(suite.ctx, domain.NewDebitCardWithID(suite.cardID))

	suite.ErrorIs(err, apperrors.ErrStaleWrite)
}

func (suite *PgxDebitCardRepositoryTestSuite) TestSave_UpdatesAtExpectedVersionWithExactAmounts() {
	loaded := domain.RestoreDebitCard(suite.cardID, 2, bd("0"), nil, false)
	txID := uuid.New()
	card := loaded.AssignLimit(bd("-20.00005")).Charge(txID, bd("0.00001"))

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(updateCardSQL).
		WithArgs(suite.cardID, int64(3), moneyArg("-0.00001"), moneyArg("-20.00005"), false, int64(2)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mock.ExpectExec(insertEventSQL).
		WithArgs(suite.cardID, int64(3), 0, string(domain.EventLimitAssigned), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	suite.mock.ExpectExec(insertEventSQL).
		WithArgs(suite.cardID, int64(3), 1, string(domain.EventTransactionAccepted), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	suite.mock.ExpectCommit()

	saved, err := suite.repo.Save(suite.ctx, card)

	suite.Require().NoError(err)
	suite.Equal(int64(3), saved.Version())
	suite.True(saved.Balance().Equal(bd("-0.00001")))
}

func (suite *PgxDebitCardRepositoryTestSuite) TestSave_StaleVersion() {
	card := domain.RestoreDebitCard(suite.cardID, 4, bd("10"), nil, false).Block()

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(updateCardSQL).
		WithArgs(suite.cardID, int64(5), moneyArg("10"), decimalArg{}, true, int64(4)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	suite.mock.ExpectQuery(existsCardSQL).
		WithArgs(suite.cardID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	suite.mock.ExpectRollback()

	_, err := suite.repo.Save(suite.ctx, card)

	suite.ErrorIs(err, apperrors.ErrStaleWrite)
}

func (suite *PgxDebitCardRepositoryTestSuite) TestSave_UnknownCard() {
	card := domain.RestoreDebitCard(suite.cardID, 1, bd("0"), nil, false).Block()

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(updateCardSQL).
		WithArgs(suite.cardID, int64(2), moneyArg("0"), decimalArg{}, true, int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	suite.mock.ExpectQuery(existsCardSQL).
		WithArgs(suite.cardID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	suite.mock.ExpectRollback()

	_, err := suite.repo.Save(suite.ctx, card)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.NotErrorIs(err, apperrors.ErrStaleWrite)
}

func (suite *PgxDebitCardRepositoryTestSuite) TestSave_DuplicateEventsAreStaleWrite() {
	card := domain.RestoreDebitCard(suite.cardID, 1, bd("0"), nil, false).Block()

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(updateCardSQL).
		WithArgs(suite.cardID, int64(2), moneyArg("0"), decimalArg{}, true, int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mock.ExpectExec(insertEventSQL).
		WithArgs(suite.cardID, int64(2), 0, string(domain.EventCardBlocked), pgxmock.AnyArg()).
		WillReturnError(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}))
	suite.mock.ExpectRollback()

	_, err := suite.repo.Save(suite.ctx, card)

	suite.ErrorIs(err, apperrors.ErrStaleWrite)
}

func (suite *PgxDebitCardRepositoryTestSuite) TestSave_BeginFailure() {
	suite.mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	_, err := suite.repo.Save(suite.ctx, domain.NewDebitCardWithID(suite.cardID))

	var appErr *apperrors.AppError
	suite.ErrorAs(err, &appErr)
	suite.NotErrorIs(err, apperrors.ErrStaleWrite)
}

func (suite *PgxDebitCardRepositoryTestSuite) TestGetByUUID_RestoresExactAmounts() {
	now := time.Now()
	suite.mock.ExpectQuery(selectCardSQL).
		WithArgs(suite.cardID).
		WillReturnRows(pgxmock.NewRows([]string{"card_id", "version", "balance", "card_limit", "blocked", "created_at", "updated_at"}).
			AddRow(suite.cardID.String(), int64(7), "-0.00001", "-20.00005", true, now, now))

	card, err := suite.repo.GetByUUID(suite.ctx, suite.cardID)

	suite.Require().NoError(err)
	suite.Equal(suite.cardID, card.ID())
	suite.Equal(int64(7), card.Version())
	suite.True(card.Balance().Equal(bd("-0.00001")))
	suite.Require().True(card.HasLimit())
	suite.True(card.Limit().Equal(bd("-20.00005")))
	suite.True(card.Blocked())
}

func (suite *PgxDebitCardRepositoryTestSuite) TestGetByUUID_NotFound() {
	suite.mock.ExpectQuery(selectCardSQL).
		WithArgs(suite.cardID).
		WillReturnError(pgx.ErrNoRows)

	_, err := suite.repo.GetByUUID(suite.ctx, suite.cardID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PgxDebitCardRepositoryTestSuite) TestGetSummaryByUUID_NotFound() {
	suite.mock.ExpectQuery(selectCardSQL).
		WithArgs(suite.cardID).
		WillReturnError(pgx.ErrNoRows)

	summary, err := suite.repo.GetSummaryByUUID(suite.ctx, suite.cardID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(summary)
}

func TestPgxDebitCardRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PgxDebitCardRepositoryTestSuite))
}
