package auth

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/campushub/registra/internal/app/models"
)

func TestIdentityPredicates(t *testing.T) {
	admin := Identity{UserID: 1, Role: models.RoleAdmin}
	instructor := Identity{UserID: 2, Role: models.RoleInstructor}
	student := Identity{UserID: 3, Role: models.RoleStudent}
	anonymous := Identity{}

	assert.True(t, admin.IsAuthenticated())
	assert.False(t, anonymous.IsAuthenticated())

	assert.True(t, admin.CanManageRecords())
	assert.True(t, instructor.CanManageRecords())
	assert.False(t, student.CanManageRecords())
	assert.False(t, anonymous.CanManageRecords())

	assert.True(t, admin.IsAdmin())
	assert.False(t, instructor.IsAdmin())
	assert.True(t, student.IsStudent())
}

func TestIdentityContextRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(nil)

	assert.False(t, CurrentIdentity(c).IsAuthenticated())

	SetIdentity(c, Identity{UserID: 9, Username: "jdoe", Role: models.RoleStudent})
	identity := CurrentIdentity(c)

	assert.True(t, identity.IsAuthenticated())
	assert.Equal(t, "jdoe", identity.Username)
	assert.Equal(t, models.RoleStudent, identity.Role)
}
