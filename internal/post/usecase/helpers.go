package usecase

import "engagement-srv/pkg/paginator"

func paginatorOf(total, count, perPage int64, page int) paginator.Paginator {
	return paginator.Paginator{
		Total:       total,
		Count:       count,
		PerPage:     perPage,
		CurrentPage: page,
	}
}
