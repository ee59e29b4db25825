package authz

import (
	"testing"

	"community_portal/model"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize_AdminAllowsEverything(t *testing.T) {
	actions := []Action{
		ActionCreatePost, ActionUpdatePost, ActionDeletePost,
		ActionComment, ActionLike,
		ActionCreateNotice, ActionUpdateNotice, ActionDeleteNotice,
		ActionViewUsers, ActionManageUsers,
		ActionSubscribe, ActionManageSubscribers,
	}
	for _, action := range actions {
		assert.True(t, Authorize(model.RoleAdmin, 1, 2, action), "admin denied %s", action)
	}
}

func TestAuthorize_EditorPosts(t *testing.T) {
	// Editors manage any post regardless of ownership.
	assert.True(t, Authorize(model.RoleEditor, 10, 2, ActionDeletePost))
	assert.True(t, Authorize(model.RoleEditor, 10, 2, ActionUpdatePost))
	assert.True(t, Authorize(model.RoleEditor, 10, 0, ActionCreatePost))
	assert.True(t, Authorize(model.RoleEditor, 10, 0, ActionViewUsers))

	assert.False(t, Authorize(model.RoleEditor, 10, 0, ActionManageUsers))
	assert.False(t, Authorize(model.RoleEditor, 10, 0, ActionCreateNotice))
	assert.False(t, Authorize(model.RoleEditor, 10, 0, ActionManageSubscribers))
}

func TestAuthorize_OwnerOwnPost(t *testing.T) {
	// A plain user may delete or update their own post but nobody else's.
	assert.True(t, Authorize(model.RoleUser, 7, 7, ActionDeletePost))
	assert.True(t, Authorize(model.RoleUser, 7, 7, ActionUpdatePost))
	assert.False(t, Authorize(model.RoleUser, 7, 8, ActionDeletePost))
	assert.False(t, Authorize(model.RoleUser, 7, 8, ActionUpdatePost))
}

func TestAuthorize_PlainUser(t *testing.T) {
	assert.True(t, Authorize(model.RoleUser, 7, 0, ActionCreatePost))
	assert.True(t, Authorize(model.RoleUser, 7, 0, ActionComment))
	assert.True(t, Authorize(model.RoleUser, 7, 0, ActionLike))
	assert.True(t, Authorize(model.RoleUser, 7, 0, ActionSubscribe))

	assert.False(t, Authorize(model.RoleUser, 7, 0, ActionCreateNotice))
	assert.False(t, Authorize(model.RoleUser, 7, 0, ActionUpdateNotice))
	assert.False(t, Authorize(model.RoleUser, 7, 0, ActionDeleteNotice))
	assert.False(t, Authorize(model.RoleUser, 7, 0, ActionViewUsers))
	assert.False(t, Authorize(model.RoleUser, 7, 0, ActionManageUsers))
	assert.False(t, Authorize(model.RoleUser, 7, 0, ActionManageSubscribers))
}

func TestAuthorize_UnknownRoleDenied(t *testing.T) {
	assert.False(t, Authorize(model.Role("ghost"), 7, 7, ActionCreatePost))
	// Ownership alone still grants update/delete on the owned post.
	assert.True(t, Authorize(model.Role("ghost"), 7, 7, ActionDeletePost))
	assert.False(t, Authorize(model.Role("ghost"), 7, 8, ActionDeletePost))
}

func TestAuthorize_ZeroActorNeverMatchesOwnership(t *testing.T) {
	assert.False(t, Authorize(model.Role(""), 0, 0, ActionDeletePost))
}
