package postgres

import (
	"database/sql"

	"fixie/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// GetUser returns the user with the given name, or nil if none exists
func (r *UserRepo) GetUser(name string) (*domain.User, error) {
	query := `SELECT name, chat_id, points FROM users WHERE name = $1`
	return r.scanUser(r.db.QueryRow(query, name))
}

// GetUserByChat returns the user bound to the given chat, or nil if none
func (r *UserRepo) GetUserByChat(chatID int64) (*domain.User, error) {
	query := `SELECT name, chat_id, points FROM users WHERE chat_id = $1`
	return r.scanUser(r.db.QueryRow(query, chatID))
}

// CreateUser inserts a new user record, ignoring duplicates
func (r *UserRepo) CreateUser(user domain.User) error {
	query := `
		INSERT INTO users (name, chat_id, points)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO NOTHING
	`
	_, err := r.db.Exec(query, user.Name, user.ChatID, user.Points)
	return err
}

// BindChat attaches a chat to an existing user so sessions can be restored
func (r *UserRepo) BindChat(name string, chatID int64) error {
	query := `UPDATE users SET chat_id = $2 WHERE name = $1`
	_, err := r.db.Exec(query, name, chatID)
	return err
}

// AddPoints adds delta to the user's point total and returns the new total
func (r *UserRepo) AddPoints(name string, delta int) (int, error) {
	query := `
		UPDATE users
		SET points = points + $2
		WHERE name = $1
		RETURNING points
	`
	var points int
	err := r.db.QueryRow(query, name, delta).Scan(&points)
	return points, err
}

func (r *UserRepo) scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	var chatID sql.NullInt64
	err := row.Scan(&u.Name, &chatID, &u.Points)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if chatID.Valid {
		u.ChatID = chatID.Int64
	}

	return &u, nil
}
