package faqs

import (
	"context"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/pagination"
)

// Service defines FAQ knowledge-base operations
type Service interface {
	Create(ctx context.Context, question, answer string) (*FAQ, error)
	Update(ctx context.Context, id int64, question, answer string) (*FAQ, error)
	GetByID(ctx context.Context, id int64) (*FAQ, error)
	List(ctx context.Context, params ListParams) ([]*FAQ, pagination.Pagination, error)
	Delete(ctx context.Context, id int64) error
}

// Repository defines the data access interface for FAQs
type Repository interface {
	Create(ctx context.Context, faq *FAQ) (*FAQ, error)
	Update(ctx context.Context, faq *FAQ) (*FAQ, error)
	GetByID(ctx context.Context, id int64) (*FAQ, error)
	List(ctx context.Context, params ListParams) ([]*FAQ, pagination.Pagination, error)
	Delete(ctx context.Context, id int64) error
}
