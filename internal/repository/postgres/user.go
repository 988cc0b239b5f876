package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/myflix-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const userColumns = `id, username, password_hash, email, birthday, city, created_at, updated_at`

// Unique index names from the users migration.
const (
	usernameConstraint = "users_username_key"
	emailConstraint    = "users_email_key"
)

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(username) = lower($1)`

	user, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := r.loadLists(ctx, &user); err != nil {
		return model.User{}, err
	}

	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := r.loadLists(ctx, &user); err != nil {
		return model.User{}, err
	}

	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (id, username, password_hash, email, birthday, city, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING ` + userColumns

	saved, err := scanUser(r.db.QueryRow(ctx, query,
		user.ID, user.Username, user.PasswordHash, user.Email, user.Birthday, user.City,
		user.CreatedAt, user.UpdatedAt,
	))
	if err != nil {
		if dup := duplicateIdentity(err); dup != nil {
			return model.User{}, dup
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	saved.FavoriteMovies = []uuid.UUID{}
	saved.ToWatch = []uuid.UUID{}

	return saved, nil
}

func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, update model.UserUpdate) (model.User, error) {
	var (
		sets []string
		args []any
	)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Username != nil {
		set("username", *update.Username)
	}
	if update.PasswordHash != nil {
		set("password_hash", *update.PasswordHash)
	}
	if update.Email != nil {
		set("email", *update.Email)
	}
	if update.Birthday != nil {
		set("birthday", *update.Birthday)
	}
	if update.City != nil {
		set("city", *update.City)
	}
	sets = append(sets, "updated_at = now()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		if dup := duplicateIdentity(err); dup != nil {
			return model.User{}, dup
		}
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	if err := r.loadLists(ctx, &user); err != nil {
		return model.User{}, err
	}

	return user, nil
}

func (r *UserRepository) Delete(ctx context.Context, username string) error {
	query := `DELETE FROM users WHERE lower(username) = lower($1)`

	tag, err := r.db.Exec(ctx, query, username)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *UserRepository) AddToList(ctx context.Context, userID uuid.UUID, list model.ListKind, movieID uuid.UUID) error {
	table, err := listTable(list)
	if err != nil {
		return err
	}

	query := `INSERT INTO ` + table + ` (user_id, movie_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`

	tag, err := r.db.Exec(ctx, query, userID, movieID)
	if err != nil {
		if code, _ := pgErrorCode(err); code == codeForeignKeyViolation {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to add movie to %s: %w", list, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAlreadyInList
	}

	return nil
}

func (r *UserRepository) RemoveFromList(ctx context.Context, userID uuid.UUID, list model.ListKind, movieID uuid.UUID) error {
	table, err := listTable(list)
	if err != nil {
		return err
	}

	query := `DELETE FROM ` + table + ` WHERE user_id = $1 AND movie_id = $2`

	tag, err := r.db.Exec(ctx, query, userID, movieID)
	if err != nil {
		return fmt.Errorf("failed to remove movie from %s: %w", list, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotInList
	}

	return nil
}

func (r *UserRepository) loadLists(ctx context.Context, user *model.User) error {
	favorites, err := r.listMovieIDs(ctx, model.ListFavorites, user.ID)
	if err != nil {
		return err
	}
	toWatch, err := r.listMovieIDs(ctx, model.ListToWatch, user.ID)
	if err != nil {
		return err
	}

	user.FavoriteMovies = favorites
	user.ToWatch = toWatch

	return nil
}

func (r *UserRepository) listMovieIDs(ctx context.Context, list model.ListKind, userID uuid.UUID) ([]uuid.UUID, error) {
	table, err := listTable(list)
	if err != nil {
		return nil, err
	}

	query := `SELECT movie_id FROM ` + table + ` WHERE user_id = $1 ORDER BY created_at, movie_id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", list, err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", list, err)
	}

	return ids, nil
}

func listTable(list model.ListKind) (string, error) {
	switch list {
	case model.ListFavorites:
		return "user_favorites", nil
	case model.ListToWatch:
		return "user_watchlist", nil
	default:
		return "", fmt.Errorf("unknown list %q", list)
	}
}

func scanUser(row pgx.Row) (model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Email, &user.Birthday, &user.City,
		&user.CreatedAt, &user.UpdatedAt,
	)
	return user, err
}

// duplicateIdentity maps a unique violation on users to the offending field.
func duplicateIdentity(err error) error {
	code, constraint := pgErrorCode(err)
	if code != codeUniqueViolation {
		return nil
	}

	switch constraint {
	case usernameConstraint:
		return model.NewDuplicateIdentityError(model.FieldUsername)
	case emailConstraint:
		return model.NewDuplicateIdentityError(model.FieldEmail)
	default:
		return nil
	}
}
