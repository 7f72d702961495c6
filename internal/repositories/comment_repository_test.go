package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_ReplyCountsGroupsInOneQuery(t *testing.T) {
	gdb, mock, db := newMockDB(t)
	defer db.Close()
	repo := NewCommentRepository(gdb)

	first := uuid.New()
	second := uuid.New()
	third := uuid.New()
	mock.ExpectQuery(`SELECT parent_id, COUNT\(\*\) AS count FROM "comments" WHERE parent_id IN .+ GROUP BY`).
		WillReturnRows(sqlmock.NewRows([]string{"parent_id", "count"}).
			AddRow(first.String(), 4).
			AddRow(third.String(), 1))

	out, err := repo.ReplyCounts(context.Background(), []uuid.UUID{first, second, third})
	require.NoError(t, err)
	assert.Equal(t, int64(4), out[first])
	assert.Equal(t, int64(1), out[third])
	// Comments without replies simply have no row.
	assert.Zero(t, out[second])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_ReplyCountsEmptyInput(t *testing.T) {
	gdb, mock, db := newMockDB(t)
	defer db.Close()
	repo := NewCommentRepository(gdb)

	out, err := repo.ReplyCounts(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_CountTopLevelExcludesReplies(t *testing.T) {
	gdb, mock, db := newMockDB(t)
	defer db.Close()
	repo := NewCommentRepository(gdb)

	placeID := uuid.New()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "comments" WHERE place_id = \$1 AND parent_id IS NULL`).
		WithArgs(placeID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	n, err := repo.CountTopLevel(context.Background(), placeID)
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_GetByIDMissingRowIsNilNil(t *testing.T) {
	gdb, mock, db := newMockDB(t)
	defer db.Close()
	repo := NewCommentRepository(gdb)

	mock.ExpectQuery(`SELECT \* FROM "comments" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	comment, err := repo.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, comment)
	assert.NoError(t, mock.ExpectationsWereMet())
}
