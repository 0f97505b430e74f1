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

// FormError identifies the single highest-priority invalid field of the
// post draft. Checks run in order: title, then description, then photo.
type FormError int

const (
	NoFormError FormError = iota
	TitleError
	DescriptionError
	PhotoError
)

type AddPostStateKind int

const (
	AddPostInvalidInput AddPostStateKind = iota
	AddPostValidInput
	AddPostSubmitting
	AddPostSuccess
	AddPostNoInternet
	AddPostError
)

// AddPostState is the add-post screen's state. FormError is set only for
// AddPostInvalidInput.
type AddPostState struct {
	Kind      AddPostStateKind
	FormError FormError
}

// AddPostViewModel owns the post draft and the add-post screen state.
// Every field change revalidates the draft; SavePost runs the submission
// pipeline and publishes its terminal outcome.
type AddPostViewModel struct {
	net   connectivity.Checker
	users *repository.UserRepository
	posts *repository.PostRepository

	mu    sync.Mutex
	draft models.Post

	states *StateStream[AddPostState]
}

func NewAddPostViewModel(net connectivity.Checker, users *repository.UserRepository, posts *repository.PostRepository) *AddPostViewModel {
	return &AddPostViewModel{
		net:    net,
		users:  users,
		posts:  posts,
		states: NewStateStream(AddPostState{Kind: AddPostInvalidInput, FormError: TitleError}),
	}
}

func (vm *AddPostViewModel) States() *StateStream[AddPostState] { return vm.states }

// Draft returns a copy of the current post draft.
func (vm *AddPostViewModel) Draft() models.Post {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.draft
}

func (vm *AddPostViewModel) OnTitleChanged(title string) {
	vm.mu.Lock()
	vm.draft.Title = title
	vm.mu.Unlock()
	vm.revalidate()
}

func (vm *AddPostViewModel) OnDescriptionChanged(description string) {
	vm.mu.Lock()
	vm.draft.Description = description
	vm.mu.Unlock()
	vm.revalidate()
}

// OnPhotoChanged records the local path of the photo the user picked. The
// path is replaced with the uploaded download reference during SavePost.
func (vm *AddPostViewModel) OnPhotoChanged(path string) {
	vm.mu.Lock()
	vm.draft.PhotoURL = path
	vm.mu.Unlock()
	vm.revalidate()
}

func (vm *AddPostViewModel) revalidate() {
	if formErr := vm.validate(); formErr != NoFormError {
		vm.states.Publish(AddPostState{Kind: AddPostInvalidInput, FormError: formErr})
	} else {
		vm.states.Publish(AddPostState{Kind: AddPostValidInput})
	}
}

func (vm *AddPostViewModel) validate() FormError {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	switch {
	case vm.draft.Title == "":
		return TitleError
	case vm.draft.Description == "":
		return DescriptionError
	case vm.draft.PhotoURL == "":
		return PhotoError
	default:
		return NoFormError
	}
}

// SavePost runs the submission pipeline: connectivity gate, revalidation,
// photo upload, author lookup, record write. Each step runs strictly after
// the previous one succeeds; any failure is terminal for this attempt.
func (vm *AddPostViewModel) SavePost(ctx context.Context) {
	if !vm.net.IsInternetAvailable() {
		vm.states.Publish(AddPostState{Kind: AddPostNoInternet})
		return
	}

	if formErr := vm.validate(); formErr != NoFormError {
		vm.states.Publish(AddPostState{Kind: AddPostInvalidInput, FormError: formErr})
		return
	}

	vm.states.Publish(AddPostState{Kind: AddPostSubmitting})

	vm.mu.Lock()
	vm.draft.ID = uuid.NewString()
	vm.draft.Timestamp = time.Now().Unix()
	draft := vm.draft
	vm.mu.Unlock()

	photoResult := vm.posts.AddPhoto(ctx, draft)
	if photoResult.Kind != gateway.AddPhotoSuccess {
		vm.states.Publish(AddPostState{Kind: AddPostError})
		return
	}
	draft.PhotoURL = photoResult.DownloadURL

	userResult := vm.users.ReadUser(ctx)
	if userResult.Kind != gateway.ReadUserSuccess {
		vm.states.Publish(AddPostState{Kind: AddPostError})
		return
	}
	draft.Author = userResult.User.Author()

	vm.mu.Lock()
	vm.draft = draft
	vm.mu.Unlock()

	saveResult := vm.posts.AddPost(ctx, draft)
	if saveResult.Kind != gateway.AddPostSuccess {
		vm.states.Publish(AddPostState{Kind: AddPostError})
		return
	}
	vm.states.Publish(AddPostState{Kind: AddPostSuccess})
}

// Close releases the screen's state stream.
func (vm *AddPostViewModel) Close() {
	vm.states.Close()
}
