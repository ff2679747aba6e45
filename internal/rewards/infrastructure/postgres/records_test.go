package postgres

import (
	"testing"
	"time"

	"github.com/Sudeep845/Raktsewa-sub001/internal/pkg/database"
	"github.com/Sudeep845/Raktsewa-sub001/internal/pkg/logging"
	"github.com/Sudeep845/Raktsewa-sub001/internal/rewards/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedemptionLog_Append(t *testing.T) {
	t.Parallel()

	record := domain.RedemptionRecord{
		RedemptionId: "3f1a9c2e-64c7-4f25-9f6e-0d6ad62f3a11",
		AccountId:    1,
		ItemId:       7,
		PointsSpent:  300,
		Outcome:      domain.OutcomeCommitted,
		CreatedAt:    time.Date(2026, 2, 14, 10, 30, 0, 0, time.UTC),
	}

	type testCase struct {
		name string

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedErr error
	}

	tests := []testCase{
		{
			name: "record and outbox entry share one transaction",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectExec("INSERT INTO redemptions").
					WithArgs(record.RedemptionId, record.AccountId, record.ItemId,
						record.PointsSpent, string(record.Outcome), "", record.CreatedAt).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec("INSERT INTO audit_outbox").
					WithArgs(record.RedemptionId, pgxmock.AnyArg()).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectCommit()
			},
			expectedErr: nil,
		},
		{
			name: "record insert failure rolls back",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectExec("INSERT INTO redemptions").
					WithArgs(record.RedemptionId, record.AccountId, record.ItemId,
						record.PointsSpent, string(record.Outcome), "", record.CreatedAt).
					WillReturnError(assert.AnError)
				mock.ExpectRollback()
			},
			expectedErr: assert.AnError,
		},
		{
			name: "outbox insert failure rolls back the record too",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectExec("INSERT INTO redemptions").
					WithArgs(record.RedemptionId, record.AccountId, record.ItemId,
						record.PointsSpent, string(record.Outcome), "", record.CreatedAt).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec("INSERT INTO audit_outbox").
					WithArgs(record.RedemptionId, pgxmock.AnyArg()).
					WillReturnError(assert.AnError)
				mock.ExpectRollback()
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			log := NewRedemptionLog(database.NewDelegateTxManager(mock, logging.NopLogger))
			err = log.Append(t.Context(), record)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
