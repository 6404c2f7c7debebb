package model

import (
	"context"

	"github.com/shopcloud/backend/pkg/pagination"
	"github.com/shopcloud/backend/pkg/validation"
)

type ListRequest struct {
	Page  int `query:"page" validate:"min=1"`
	Limit int `query:"limit" validate:"min=1,max=100"`
}

func (r *ListRequest) Validate(ctx context.Context) error {
	if r.Page == 0 {
		r.Page = 1
	}

	if r.Limit == 0 {
		r.Limit = pagination.DefaultLimit
	}

	return validation.StructCtx(ctx, r)
}

func (r *ListRequest) Pager() *pagination.Pager {
	return pagination.NewPager(r.Page, r.Limit)
}
