package daos

import (
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"ezelectronics/models"
)

var userColumns = []string{"username", "name", "surname", "password", "role", "address", "birthdate"}

type UserDAO struct {
	db *sqlx.DB
}

func NewUserDAO(db *sqlx.DB) *UserDAO {
	return &UserDAO{db: db}
}

// CreateUser inserts a new user with an already-hashed password.
func (d *UserDAO) CreateUser(username, name, surname, hashedPassword string, role models.Role) error {
	query, args, err := QB.Insert("users").
		Columns(userColumns...).
		Values(username, name, surname, hashedPassword, role, "", "").
		ToSql()
	if err != nil {
		return err
	}
	if _, err := d.db.Exec(query, args...); err != nil {
		if isUniqueConstraint(err) {
			return &models.UserAlreadyExistsError{}
		}
		return err
	}
	return nil
}

// GetUserByUsername returns the user including the password hash; callers
// that serialize a User never expose it (json:"-").
func (d *UserDAO) GetUserByUsername(username string) (models.User, error) {
	var user models.User
	query, args, err := QB.Select(userColumns...).From("users").
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return user, err
	}
	if err := d.db.Get(&user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user, &models.UserNotFoundError{}
		}
		return user, err
	}
	return user, nil
}

func (d *UserDAO) GetUsers() ([]models.User, error) {
	users := []models.User{}
	query, args, err := QB.Select(userColumns...).From("users").ToSql()
	if err != nil {
		return nil, err
	}
	if err := d.db.Select(&users, query, args...); err != nil {
		return nil, err
	}
	return users, nil
}

func (d *UserDAO) GetUsersByRole(role models.Role) ([]models.User, error) {
	users := []models.User{}
	query, args, err := QB.Select(userColumns...).From("users").
		Where(squirrel.Eq{"role": role}).
		ToSql()
	if err != nil {
		return nil, err
	}
	if err := d.db.Select(&users, query, args...); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUserInfo overwrites the mutable personal fields and returns the
// updated user.
func (d *UserDAO) UpdateUserInfo(name, surname, address, birthdate, username string) (models.User, error) {
	query, args, err := QB.Update("users").
		Set("name", name).
		Set("surname", surname).
		Set("address", address).
		Set("birthdate", birthdate).
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return models.User{}, err
	}
	res, err := d.db.Exec(query, args...)
	if err != nil {
		return models.User{}, err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return models.User{}, &models.UserNotFoundError{}
	}
	return d.GetUserByUsername(username)
}

func (d *UserDAO) DeleteUser(username string) error {
	query, args, err := QB.Delete("users").Where(squirrel.Eq{"username": username}).ToSql()
	if err != nil {
		return err
	}
	res, err := d.db.Exec(query, args...)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return &models.UserNotFoundError{}
	}
	return nil
}

// DeleteAllNonAdmins removes every user except Admins.
func (d *UserDAO) DeleteAllNonAdmins() error {
	query, args, err := QB.Delete("users").
		Where(squirrel.NotEq{"role": models.RoleAdmin}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = d.db.Exec(query, args...)
	return err
}
