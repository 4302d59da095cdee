package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/wordbook/internal/error_values"
	"github.com/limbo/wordbook/pkg/entity"
)

const userColumns = `user_id, name, hashed_password, is_admin, nickname, email, phone`

// Name of the partial index allowing a single admin row.
const singleAdminIndex = "user_single_admin"

var usersSchema = []string{
	`CREATE TABLE IF NOT EXISTS "user" (
		user_id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		hashed_password TEXT NOT NULL,
		is_admin BOOLEAN NOT NULL DEFAULT FALSE,
		nickname TEXT,
		email TEXT UNIQUE,
		phone TEXT UNIQUE
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS user_single_admin ON "user" (is_admin) WHERE is_admin;`,
}

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) CreateSchema(ctx context.Context) error {
	if err := execAll(ctx, ur.conn, usersSchema); err != nil {
		return fmt.Errorf("creating users schema error: %w", err)
	}
	return nil
}

func scanUser(row scanner) (*entity.User, error) {
	var user entity.User
	err := row.Scan(&user.ID, &user.Name, &user.PasswordHash, &user.IsAdmin, &user.Nickname, &user.Email, &user.Phone)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}
	query := `INSERT INTO "user" (name, hashed_password, is_admin, nickname, email, phone)
		VALUES ($1, $2, NOT EXISTS (SELECT 1 FROM "user"), $3, $4, $5)
		RETURNING ` + userColumns + `;`
	var created *entity.User
	var err error
	// Two first registrations may both see an empty table; the one losing
	// on the admin index is inserted again and sees a non-empty table.
	for attempt := 0; attempt < 2; attempt++ {
		created, err = scanUser(ur.conn.QueryRow(ctx, query, user.Name, user.PasswordHash, user.Nickname, user.Email, user.Phone))
		if pgErr, ok := isPgError(err, codeUniqueViolation); ok && pgErr.ConstraintName == singleAdminIndex {
			continue
		}
		break
	}
	if err != nil {
		if _, ok := isPgError(err, codeUniqueViolation); ok {
			return nil, errorvalues.ErrDuplicateRecord
		}
		return nil, fmt.Errorf("creating user db error: %w", err)
	}
	return created, nil
}

func (ur *UsersRepository) Find(ctx context.Context, key entity.UserKey) (*entity.User, error) {
	col, val := userKeyColumn(key)
	user, err := scanUser(ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM "user" WHERE `+col+` = $1;`, val))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.NotFound(errorvalues.EntityUser)
		}
		return nil, fmt.Errorf("searching user by %s error: %w", key, err)
	}
	return user, nil
}

func (ur *UsersRepository) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := ur.conn.Query(ctx, `SELECT `+userColumns+` FROM "user" ORDER BY user_id;`)
	if err != nil {
		return nil, fmt.Errorf("listing users error: %w", err)
	}
	defer rows.Close()
	users := make([]*entity.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning user error: %w", err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("listing users error: %w", err)
	}
	return users, nil
}

func (ur *UsersRepository) Update(ctx context.Context, key entity.UserKey, changes *entity.UserChanges) (*entity.User, error) {
	var set setClause
	if changes != nil {
		if changes.Name.Set {
			set.add("name", changes.Name.Value)
		}
		if changes.PasswordHash.Set {
			set.add("hashed_password", changes.PasswordHash.Value)
		}
		if changes.Nickname.Set {
			set.add("nickname", changes.Nickname.Value)
		}
		if changes.Email.Set {
			set.add("email", changes.Email.Value)
		}
		if changes.Phone.Set {
			set.add("phone", changes.Phone.Value)
		}
	}
	if set.empty() {
		return ur.Find(ctx, key)
	}
	col, val := userKeyColumn(key)
	query := `UPDATE "user" SET ` + set.String() + ` WHERE ` + col + ` = ` + set.arg(val) + ` RETURNING ` + userColumns + `;`
	user, err := scanUser(ur.conn.QueryRow(ctx, query, set.args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.NotFound(errorvalues.EntityUser)
		}
		if _, ok := isPgError(err, codeUniqueViolation); ok {
			return nil, errorvalues.ErrDuplicateRecord
		}
		return nil, fmt.Errorf("updating user error: %w", err)
	}
	return user, nil
}

func (ur *UsersRepository) UpdatePasswordHash(ctx context.Context, id int64, hash string) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE "user" SET hashed_password = $1 WHERE user_id = $2;`, hash, id)
	if err != nil {
		return fmt.Errorf("updating password hash error: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.NotFound(errorvalues.EntityUser)
	}
	return nil
}

func (ur *UsersRepository) Delete(ctx context.Context, key entity.UserKey) (*entity.User, error) {
	col, val := userKeyColumn(key)
	user, err := scanUser(ur.conn.QueryRow(ctx, `DELETE FROM "user" WHERE `+col+` = $1 RETURNING `+userColumns+`;`, val))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.NotFound(errorvalues.EntityUser)
		}
		return nil, fmt.Errorf("deleting user error: %w", err)
	}
	return user, nil
}
