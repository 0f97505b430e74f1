package screen

import (
	"context"
	"sync"
	"time"

	"hexgames/connectivity"
	"hexgames/gateway"
	"hexgames/models"
	"hexgames/repository"

	"github.com/google/uuid"
)

type AddCommentStateKind int

const (
	AddCommentInvalidInput AddCommentStateKind = iota
	AddCommentValidInput
	AddCommentSubmitting
	AddCommentSuccess
	AddCommentNoInternet
	AddCommentError
)

type AddCommentState struct {
	Kind AddCommentStateKind
}

// AddCommentViewModel owns the comment draft for one post. The target post
// is fixed at construction, mirroring how the screen receives it from
// navigation.
type AddCommentViewModel struct {
	net      connectivity.Checker
	users    *repository.UserRepository
	comments *repository.CommentRepository
	postID   string

	mu    sync.Mutex
	draft models.Comment

	states *StateStream[AddCommentState]
}

func NewAddCommentViewModel(net connectivity.Checker, users *repository.UserRepository, comments *repository.CommentRepository, postID string) *AddCommentViewModel {
	return &AddCommentViewModel{
		net:      net,
		users:    users,
		comments: comments,
		postID:   postID,
		states:   NewStateStream(AddCommentState{Kind: AddCommentInvalidInput}),
	}
}

func (vm *AddCommentViewModel) States() *StateStream[AddCommentState] { return vm.states }

// Draft returns a copy of the current comment draft.
func (vm *AddCommentViewModel) Draft() models.Comment {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.draft
}

// OnContentChanged replaces the draft content and revalidates it. Any
// non-empty content is valid.
func (vm *AddCommentViewModel) OnContentChanged(content string) {
	vm.mu.Lock()
	vm.draft.Content = content
	vm.mu.Unlock()

	if content != "" {
		vm.states.Publish(AddCommentState{Kind: AddCommentValidInput})
	} else {
		vm.states.Publish(AddCommentState{Kind: AddCommentInvalidInput})
	}
}

// AddComment runs the submission pipeline: connectivity gate, revalidation,
// author lookup, record write. Any step failing is terminal for this
// attempt.
func (vm *AddCommentViewModel) AddComment(ctx context.Context) {
	if !vm.net.IsInternetAvailable() {
		vm.states.Publish(AddCommentState{Kind: AddCommentNoInternet})
		return
	}

	if vm.postID == "" {
		vm.states.Publish(AddCommentState{Kind: AddCommentError})
		return
	}

	vm.mu.Lock()
	empty := vm.draft.Content == ""
	vm.mu.Unlock()
	if empty {
		vm.states.Publish(AddCommentState{Kind: AddCommentInvalidInput})
		return
	}

	vm.states.Publish(AddCommentState{Kind: AddCommentSubmitting})

	userResult := vm.users.ReadUser(ctx)
	if userResult.Kind != gateway.ReadUserSuccess {
		vm.states.Publish(AddCommentState{Kind: AddCommentError})
		return
	}

	vm.mu.Lock()
	vm.draft.ID = uuid.NewString()
	vm.draft.PostID = vm.postID
	vm.draft.Timestamp = time.Now().Unix()
	vm.draft.Author = userResult.User.Author()
	draft := vm.draft
	vm.mu.Unlock()

	result := vm.comments.AddComment(ctx, draft)
	if result.Kind != gateway.AddCommentSuccess {
		vm.states.Publish(AddCommentState{Kind: AddCommentError})
		return
	}
	vm.states.Publish(AddCommentState{Kind: AddCommentSuccess})
}

func (vm *AddCommentViewModel) Close() {
	vm.states.Close()
}
