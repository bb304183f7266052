package repository

type CreatePostOptions struct {
	ID         string
	AuthorID   string
	Content    string
	City       string
	Visibility string
}

type ListPostsByAuthorOptions struct {
	AuthorID string
	Limit    int64
	Offset   int64
}
