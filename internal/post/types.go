package post

import (
	"engagement-srv/internal/model"
	"engagement-srv/pkg/paginator"
)

// MaxContentLength caps post content.
const MaxContentLength = 280

type CreateInput struct {
	Content    string
	City       string
	Visibility string
}

type CreateOutput struct {
	Post *model.Post
}

type GetOutput struct {
	Post       *model.Post
	LikesCount int64
	IsLiked    bool
}

type ListByAuthorInput struct {
	AuthorID string
	paginator.PaginateQuery
}

type ListByAuthorOutput struct {
	Posts []model.Post
	paginator.Paginator
}
