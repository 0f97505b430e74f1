// Package gateway wraps the backing services (document store, auth
// provider, object storage, live-update channel) behind interfaces that
// resolve every operation to exactly one variant of a closed result set.
// No backend error ever crosses this boundary as anything but an Err field
// inside an *Error variant.
package gateway

import "hexgames/models"

// PostResultKind enumerates the outcomes of post operations.
type PostResultKind int

const (
	GetPostsSuccess PostResultKind = iota
	GetPostsEmpty
	GetPostsError
	GetPostSuccess
	GetPostNotFound
	GetPostError
	AddPhotoSuccess
	AddPhotoError
	AddPostSuccess
	AddPostError
)

// PostResult is one terminal outcome of a post operation. Only the fields
// relevant to Kind are populated.
type PostResult struct {
	Kind        PostResultKind
	Posts       []models.Post
	Post        models.Post
	DownloadURL string
	Err         error
}

// UserResultKind enumerates the outcomes of auth-provider operations.
type UserResultKind int

const (
	CreateUserSuccess UserResultKind = iota
	CreateUserError
	ReadUserSuccess
	ReadUserNotFound
	ReadUserError
	DeleteUserSuccess
	DeleteUserNotFound
	DeleteUserError
	SignInSuccess
	SignInError
	SignOutSuccess
	SignOutError
	UserFound
	UserNotFound
	UserExistsError
	RecoverPasswordSuccess
	RecoverPasswordError
)

type UserResult struct {
	Kind UserResultKind
	User models.User
	Err  error
}

// CommentResultKind enumerates the outcomes of comment operations.
type CommentResultKind int

const (
	GetCommentsSuccess CommentResultKind = iota
	GetCommentsEmpty
	GetCommentsError
	AddCommentSuccess
	AddCommentError
)

type CommentResult struct {
	Kind     CommentResultKind
	Comments []models.Comment
	Err      error
}
