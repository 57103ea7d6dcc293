package controllers

import (
	"time"

	"ezelectronics/daos"
	"ezelectronics/models"
	"ezelectronics/utils"
)

type UserController struct {
	dao *daos.UserDAO
}

func NewUserController(dao *daos.UserDAO) *UserController {
	return &UserController{dao: dao}
}

func (c *UserController) CreateUser(username, name, surname, password string, role models.Role) error {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	return c.dao.CreateUser(username, name, surname, hashed, role)
}

// Login verifies the credentials and returns the user. Any failure means
// the pair is not valid; the handler layer replies 401 without detail.
func (c *UserController) Login(username, password string) (models.User, error) {
	user, err := c.dao.GetUserByUsername(username)
	if err != nil {
		return models.User{}, err
	}
	if err := utils.CheckPassword(user.Password, password); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// GetUser loads a user without caller checks; the handler layer uses it to
// resolve the authenticated user from a token subject.
func (c *UserController) GetUser(username string) (models.User, error) {
	return c.dao.GetUserByUsername(username)
}

func (c *UserController) GetUsers() ([]models.User, error) {
	return c.dao.GetUsers()
}

func (c *UserController) GetUsersByRole(role models.Role) ([]models.User, error) {
	return c.dao.GetUsersByRole(role)
}

// GetUserByUsername returns the target user. Non-admin callers may only
// look themselves up.
func (c *UserController) GetUserByUsername(caller models.User, username string) (models.User, error) {
	if !caller.IsAdmin() && caller.Username != username {
		return models.User{}, &models.UserNotAdminError{}
	}
	return c.dao.GetUserByUsername(username)
}

// UpdateUserInfo updates the target's personal fields. A user may update
// themselves; an Admin may additionally update non-Admin users. The
// birthdate must not be in the future.
func (c *UserController) UpdateUserInfo(caller models.User, name, surname, address, birthdate, username string) (models.User, error) {
	if birthdate != "" {
		parsed, err := time.Parse(utils.DateLayout, birthdate)
		if err != nil {
			return models.User{}, &models.DateError{}
		}
		if parsed.Format(utils.DateLayout) > utils.Today() {
			return models.User{}, &models.DateError{}
		}
	}

	target, err := c.dao.GetUserByUsername(username)
	if err != nil {
		return models.User{}, err
	}
	if !caller.IsAdmin() && caller.Username != username {
		return models.User{}, &models.UserNotAdminError{}
	}
	if caller.IsAdmin() && target.IsAdmin() && caller.Username != username {
		return models.User{}, &models.UserIsAdminError{}
	}
	return c.dao.UpdateUserInfo(name, surname, address, birthdate, username)
}

// DeleteUser removes the target user. A user may delete themselves; an
// Admin may additionally delete non-Admin users, never another Admin.
func (c *UserController) DeleteUser(caller models.User, username string) error {
	target, err := c.dao.GetUserByUsername(username)
	if err != nil {
		return err
	}
	if !caller.IsAdmin() && caller.Username != username {
		return &models.UserNotAdminError{}
	}
	if caller.IsAdmin() && target.IsAdmin() && caller.Username != username {
		return &models.UserIsAdminError{}
	}
	return c.dao.DeleteUser(username)
}

// DeleteAll removes every non-Admin user.
func (c *UserController) DeleteAll() error {
	return c.dao.DeleteAllNonAdmins()
}
