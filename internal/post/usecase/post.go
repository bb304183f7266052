package usecase

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"engagement-srv/internal/model"
	"engagement-srv/internal/post"
	"engagement-srv/internal/post/repository"
)

// Create - Author a post. Posts start pending moderation with zeroed
// counters; a missing city gets assigned at random from the fixed set.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input post.CreateInput) (post.CreateOutput, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return post.CreateOutput{}, post.ErrContentRequired
	}
	if len([]rune(content)) > post.MaxContentLength {
		return post.CreateOutput{}, post.ErrContentTooLong
	}

	city := input.City
	if city == "" {
		city = model.Cities[rand.Intn(len(model.Cities))]
	} else if !model.IsKnownCity(city) {
		return post.CreateOutput{}, post.ErrUnknownCity
	}

	visibility := input.Visibility
	if visibility == "" {
		visibility = model.VisibilityPublic
	}
	if visibility != model.VisibilityPublic && visibility != model.VisibilityPrivate {
		return post.CreateOutput{}, post.ErrInvalidVisibility
	}

	created, err := uc.repo.CreatePost(ctx, repository.CreatePostOptions{
		ID:         uuid.New().String(),
		AuthorID:   sc.UserID,
		Content:    content,
		City:       city,
		Visibility: visibility,
	})
	if err != nil {
		uc.l.Errorf(ctx, "post.usecase.Create: Failed to create post: %v", err)
		return post.CreateOutput{}, post.ErrCreateFailed
	}

	return post.CreateOutput{Post: created}, nil
}

// Get - Load a post with the caller's like state. Rejected and private
// posts are only visible to their author and staff.
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, postID string) (post.GetOutput, error) {
	p, err := uc.repo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return post.GetOutput{}, post.ErrPostNotFound
		}
		uc.l.Errorf(ctx, "post.usecase.Get: Failed to get post: %v", err)
		return post.GetOutput{}, post.ErrGetFailed
	}

	if !uc.canSee(sc, p) {
		return post.GetOutput{}, post.ErrPostNotFound
	}

	likes, err := uc.repo.CountLikes(ctx, postID)
	if err != nil {
		uc.l.Errorf(ctx, "post.usecase.Get: Failed to count likes: %v", err)
		return post.GetOutput{}, post.ErrGetFailed
	}

	isLiked := false
	if sc.UserID != "" {
		isLiked, err = uc.repo.IsLikedBy(ctx, postID, sc.UserID)
		if err != nil {
			uc.l.Errorf(ctx, "post.usecase.Get: Failed to check like: %v", err)
			return post.GetOutput{}, post.ErrGetFailed
		}
	}

	return post.GetOutput{
		Post:       p,
		LikesCount: likes,
		IsLiked:    isLiked,
	}, nil
}

// ListByAuthor - The caller's own posts, newest first.
func (uc *implUseCase) ListByAuthor(ctx context.Context, sc model.Scope, input post.ListByAuthorInput) (post.ListByAuthorOutput, error) {
	authorID := input.AuthorID
	if authorID == "" {
		authorID = sc.UserID
	}

	input.Adjust()

	posts, total, err := uc.repo.ListPostsByAuthor(ctx, repository.ListPostsByAuthorOptions{
		AuthorID: authorID,
		Limit:    input.Limit,
		Offset:   input.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "post.usecase.ListByAuthor: Failed to list posts: %v", err)
		return post.ListByAuthorOutput{}, post.ErrListFailed
	}

	// Another author's list only shows public active posts.
	if authorID != sc.UserID && !sc.IsAdmin() {
		visible := posts[:0]
		for _, p := range posts {
			if p.Active && p.Visibility == model.VisibilityPublic {
				visible = append(visible, p)
			}
		}
		posts = visible
	}

	return post.ListByAuthorOutput{
		Posts:     posts,
		Paginator: paginatorOf(total, int64(len(posts)), input.Limit, input.Page),
	}, nil
}

func (uc *implUseCase) canSee(sc model.Scope, p *model.Post) bool {
	if p.AuthorID == sc.UserID || sc.IsAdmin() || sc.CanModerate() {
		return true
	}
	return p.Active && p.Visibility == model.VisibilityPublic
}
