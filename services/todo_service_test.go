package services

import (
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"tickoff-app/tickoff/models"
	"tickoff-app/tickoff/testutils"
	"tickoff-app/tickoff/utils/request"
)

func todoRows(todos ...models.Todo) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "user_id", "todo", "noted", "completed", "created_at", "updated_at"})
	for _, t := range todos {
		rows.AddRow(t.ID, t.UserID, t.Todo, t.Noted, t.Completed, t.CreatedAt, t.UpdatedAt)
	}
	return rows
}

func TestCreateTodo_ForcesOwner(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "todos"`).
		WithArgs(7, "buy milk", nil, nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	todoService := &TodoService{}
	created, err := todoService.CreateTodo(db, 7, models.CreateTodoRequest{Todo: "buy milk"})
	assert.NoError(t, err)
	assert.Equal(t, uint(7), created.UserID)
	assert.Equal(t, "buy milk", created.Todo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTodoById_Success(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM "todos" WHERE id = \$1 AND user_id = \$2 ORDER BY "todos"."id" LIMIT \$3`).
		WithArgs(3, 7, 1).
		WillReturnRows(todoRows(models.Todo{ID: 3, UserID: 7, Todo: "buy milk", CreatedAt: now, UpdatedAt: now}))

	todoService := &TodoService{}
	todo, err := todoService.GetTodoById(db, 3, 7)
	assert.NoError(t, err)
	assert.Equal(t, "buy milk", todo.Todo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTodoById_OtherUserReadsAsNotFound(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	// Row id 3 belongs to user 7; user 8 must not be able to tell it
	// apart from a missing row.
	mock.ExpectQuery(`SELECT (.+) FROM "todos" WHERE id = \$1 AND user_id = \$2 ORDER BY "todos"."id" LIMIT \$3`).
		WithArgs(3, 8, 1).
		WillReturnRows(todoRows())

	todoService := &TodoService{}
	_, err := todoService.GetTodoById(db, 3, 8)
	assert.ErrorIs(t, err, ErrTodoNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTodos_AppliesListParams(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT (.+) FROM "todos" WHERE user_id = \$1 ORDER BY created_at DESC LIMIT \$2 OFFSET \$3`).
		WithArgs(7, 10, 5).
		WillReturnRows(todoRows())

	todoService := &TodoService{}
	params := request.ListParams{Skip: 5, Limit: 10, OrderBy: "created_at", Sort: "DESC"}
	todos, err := todoService.GetTodos(db, 7, params)
	assert.NoError(t, err)
	assert.Empty(t, todos)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCompletedTodos_FiltersByFlag(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	completed := true
	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM "todos" WHERE user_id = \$1 AND completed = \$2`).
		WithArgs(7, true).
		WillReturnRows(todoRows(models.Todo{ID: 1, UserID: 7, Todo: "done", Completed: &completed, CreatedAt: now, UpdatedAt: now}))

	todoService := &TodoService{}
	todos, err := todoService.GetCompletedTodos(db, 7)
	assert.NoError(t, err)
	assert.Len(t, todos, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUncompletedTodos_FiltersByFlag(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT (.+) FROM "todos" WHERE user_id = \$1 AND completed = \$2`).
		WithArgs(7, false).
		WillReturnRows(todoRows())

	todoService := &TodoService{}
	todos, err := todoService.GetUncompletedTodos(db, 7)
	assert.NoError(t, err)
	assert.Empty(t, todos)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTodo_PartialMergeKeepsOtherFields(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	noted := "freezer aisle"
	created := time.Now().Add(-time.Hour)
	mock.ExpectQuery(`SELECT (.+) FROM "todos" WHERE id = \$1 AND user_id = \$2 ORDER BY "todos"."id" LIMIT \$3`).
		WithArgs(3, 7, 1).
		WillReturnRows(todoRows(models.Todo{ID: 3, UserID: 7, Todo: "buy milk", Noted: &noted, CreatedAt: created, UpdatedAt: created}))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "todos" SET`).
		WithArgs(7, "buy milk", "freezer aisle", true, sqlmock.AnyArg(), sqlmock.AnyArg(), 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	todoService := &TodoService{}
	completed := true
	updated, err := todoService.UpdateTodo(db, 3, 7, models.UpdateTodoRequest{Completed: &completed})
	assert.NoError(t, err)
	assert.Equal(t, "buy milk", updated.Todo)
	assert.Equal(t, &noted, updated.Noted)
	assert.True(t, *updated.Completed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTodo_NotFound(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT (.+) FROM "todos" WHERE id = \$1 AND user_id = \$2 ORDER BY "todos"."id" LIMIT \$3`).
		WithArgs(99, 7, 1).
		WillReturnRows(todoRows())

	todoService := &TodoService{}
	title := "nope"
	_, err := todoService.UpdateTodo(db, 99, 7, models.UpdateTodoRequest{Todo: &title})
	assert.ErrorIs(t, err, ErrTodoNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTodo_Success(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "todos" WHERE id = \$1 AND user_id = \$2`).
		WithArgs(3, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	todoService := &TodoService{}
	err := todoService.DeleteTodo(db, 3, 7)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTodo_OtherUserReadsAsNotFound(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "todos" WHERE id = \$1 AND user_id = \$2`).
		WithArgs(3, 8).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	todoService := &TodoService{}
	err := todoService.DeleteTodo(db, 3, 8)
	assert.ErrorIs(t, err, ErrTodoNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
