package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/tracker-go/internal/domain/user"
)

const currentUserKey = "currentUser"

var ErrNoCurrentUser = errors.New("no authenticated user in context")

func SetCurrentUser(c *gin.Context, u *user.User) {
	c.Set(currentUserKey, u)
}

// GetCurrentUser returns the user resolved by the auth middleware.
var GetCurrentUser = func(c *gin.Context) (*user.User, error) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, ErrNoCurrentUser
	}
	u, ok := v.(*user.User)
	if !ok || u == nil {
		return nil, ErrNoCurrentUser
	}
	return u, nil
}
