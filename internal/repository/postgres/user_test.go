package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"fixie/internal/domain"
)

func TestUserRepo_GetUser(t *testing.T) {
	tests := []struct {
		name          string
		userName      string
		mockRows      *sqlmock.Rows
		mockError     error
		expectedNil   bool
		expectedError bool
	}{
		{
			name:     "user found",
			userName: "alice",
			mockRows: sqlmock.NewRows([]string{"name", "chat_id", "points"}).
				AddRow("alice", int64(42), 10),
			expectedNil:   false,
			expectedError: false,
		},
		{
			name:     "user without bound chat",
			userName: "bob",
			mockRows: sqlmock.NewRows([]string{"name", "chat_id", "points"}).
				AddRow("bob", nil, 0),
			expectedNil:   false,
			expectedError: false,
		},
		{
			name:          "user not found",
			userName:      "ghost",
			mockError:     sql.ErrNoRows,
			expectedNil:   true,
			expectedError: false,
		},
		{
			name:          "database error",
			userName:      "alice",
			mockError:     fmt.Errorf("connection lost"),
			expectedNil:   true,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewUserRepo(db)

			query := mock.ExpectQuery("SELECT name, chat_id, points FROM users").
				WithArgs(tt.userName)
			if tt.mockError != nil {
				query.WillReturnError(tt.mockError)
			} else {
				query.WillReturnRows(tt.mockRows)
			}

			user, err := repo.GetUser(tt.userName)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectedNil {
				assert.Nil(t, user)
			} else {
				assert.Equal(t, tt.userName, user.Name)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepo_CreateUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("alice", int64(42), 0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.CreateUser(domain.User{Name: "alice", ChatID: 42})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_AddPoints(t *testing.T) {
	tests := []struct {
		name           string
		userName       string
		delta          int
		mockRows       *sqlmock.Rows
		mockError      error
		expectedPoints int
		expectedError  bool
	}{
		{
			name:           "award teach points",
			userName:       "alice",
			delta:          5,
			mockRows:       sqlmock.NewRows([]string{"points"}).AddRow(15),
			expectedPoints: 15,
		},
		{
			name:          "database error",
			userName:      "alice",
			delta:         1,
			mockError:     fmt.Errorf("connection lost"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewUserRepo(db)

			query := mock.ExpectQuery("UPDATE users").
				WithArgs(tt.userName, tt.delta)
			if tt.mockError != nil {
				query.WillReturnError(tt.mockError)
			} else {
				query.WillReturnRows(tt.mockRows)
			}

			points, err := repo.AddPoints(tt.userName, tt.delta)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedPoints, points)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepo_BindChat(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	mock.ExpectExec("UPDATE users SET chat_id").
		WithArgs("alice", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.BindChat("alice", 42)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
