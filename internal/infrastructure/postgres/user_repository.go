package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/crediya-usuarios/internal/domain"
	"github.com/jhoicas/crediya-usuarios/internal/domain/entity"
	"github.com/jhoicas/crediya-usuarios/internal/domain/repository"
	"github.com/jhoicas/crediya-usuarios/internal/domain/valueobject"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, name, last_name, birthday, address, email, base_salary, identification,
	password_hash, role_id, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

// Save inserta el usuario con un id nuevo y devuelve la copia persistida.
func (r *UserRepo) Save(ctx context.Context, user *entity.User) (*entity.User, error) {
	saved := *user
	saved.ID = uuid.New().String()
	now := time.Now().UTC()
	saved.CreatedAt, saved.UpdatedAt = now, now

	query := `
		INSERT INTO users (id, name, last_name, birthday, address, email, base_salary, identification,
			password_hash, role_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		saved.ID, saved.Name, saved.LastName, saved.Birthday.Value(), saved.Address, saved.Email.Value(),
		saved.BaseSalary.Amount(), saved.Identification, saved.PasswordHash, saved.RoleID,
		saved.CreatedAt, saved.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &saved, nil
}

// Update reemplaza dirección, email y salario del usuario con user.ID.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		UPDATE users SET address = $2, email = $3, base_salary = $4, updated_at = $5
		WHERE id = $1
		RETURNING ` + userColumns
	row := r.db.QueryRow(ctx, query,
		user.ID, user.Address, user.Email.Value(), user.BaseSalary.Amount(), time.Now().UTC(),
	)
	updated, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

// FindByEmail devuelve (nil, nil) si no existe.
func (r *UserRepo) FindByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = $1`
	u, err := scanUser(r.db.QueryRow(ctx, query, email.Value()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// FindByID devuelve (nil, nil) si no existe.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// FindAll lista los usuarios por fecha de creación.
func (r *UserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at, id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]*entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *UserRepo) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete user by id: %w", err)
	}
	return nil
}

func (r *UserRepo) DeleteByEmail(ctx context.Context, email valueobject.Email) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM users WHERE lower(email) = $1`, email.Value()); err != nil {
		return fmt.Errorf("delete user by email: %w", err)
	}
	return nil
}

func (r *UserRepo) ExistsByEmail(ctx context.Context, email valueobject.Email) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE lower(email) = $1)`, email.Value()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists user by email: %w", err)
	}
	return exists, nil
}

func (r *UserRepo) ExistsByEmailExcludingID(ctx context.Context, email valueobject.Email, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE lower(email) = $1 AND id <> $2)`, email.Value(), id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists user by email excluding id: %w", err)
	}
	return exists, nil
}

// scanUser reconstruye la entidad desde una fila con userColumns. Los valores ya fueron
// validados al guardarse, por eso se usan los constructores de almacenamiento.
func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		u        entity.User
		birthday time.Time
		email    string
		salary   decimal.Decimal
	)
	err := row.Scan(
		&u.ID, &u.Name, &u.LastName, &birthday, &u.Address, &email, &salary, &u.Identification,
		&u.PasswordHash, &u.RoleID, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Birthday = valueobject.BirthdayFromStorage(birthday)
	u.Email = valueobject.EmailFromStorage(email)
	u.BaseSalary = valueobject.SalaryFromStorage(salary)
	return &u, nil
}
