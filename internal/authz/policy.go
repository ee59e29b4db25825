// Package authz is the single place role and ownership rules live. Every
// handler asks Authorize instead of comparing role strings inline.
package authz

import "community_portal/model"

// Action names a gated operation on a resource kind.
type Action string

const (
	ActionCreatePost Action = "post:create"
	ActionUpdatePost Action = "post:update"
	ActionDeletePost Action = "post:delete"
	ActionComment    Action = "post:comment"
	ActionLike       Action = "post:like"

	ActionCreateNotice Action = "notice:create"
	ActionUpdateNotice Action = "notice:update"
	ActionDeleteNotice Action = "notice:delete"

	ActionViewUsers   Action = "user:view"
	ActionManageUsers Action = "user:manage"

	ActionSubscribe         Action = "subscriber:create"
	ActionManageSubscribers Action = "subscriber:manage"
)

// Authorize decides allow/deny for an actor acting on a resource owned by
// ownerID. Pass ownerID 0 for resources without an owner. Rules in precedence
// order: admin everything; editor posts and user-viewing; owner their own post;
// plain user creation-style actions. Everything else is deny.
func Authorize(role model.Role, actorID, ownerID uint64, action Action) bool {
	if role == model.RoleAdmin {
		return true
	}

	if role == model.RoleEditor {
		switch action {
		case ActionCreatePost, ActionUpdatePost, ActionDeletePost,
			ActionComment, ActionLike, ActionViewUsers, ActionSubscribe:
			return true
		}
	}

	// Ownership: a post's author may update or delete it regardless of role.
	if actorID != 0 && actorID == ownerID {
		switch action {
		case ActionUpdatePost, ActionDeletePost:
			return true
		}
	}

	if role == model.RoleUser {
		switch action {
		case ActionCreatePost, ActionComment, ActionLike, ActionSubscribe:
			return true
		}
	}

	return false
}
