package store

import (
	"context"

	"github.com/shopspring/decimal"

	"catalog-site-service/internal/domain"
)

// ListProductsParams holds parameters for listing products (pagination,
// filtering, sorting). Lang scopes the free-text search to the language the
// caller will render.
type ListProductsParams struct {
	Lang         string
	CategorySlug *string
	SearchQuery  *string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	FeaturedOnly bool
	ActiveOnly   bool
	SortBy       string // "price" or "created_at"
	SortOrder    string // "asc" or "desc"
	Limit        int
	Offset       int
}

// ListContactRequestsParams paginates the admin view of the intake log.
type ListContactRequestsParams struct {
	TopicID *int64
	Limit   int
	Offset  int
}

// CategoryStorer defines the database operations for categories.
type CategoryStorer interface {
	ListCategories(ctx context.Context, withCounts bool) ([]domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error)
	UpdateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// ProductStorer defines the database operations for products and their images.
type ProductStorer interface {
	ListProducts(ctx context.Context, params ListProductsParams) ([]domain.Product, int, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	GetProductBySlug(ctx context.Context, slug string, activeOnly bool) (*domain.Product, error)
	CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	SetProductsActive(ctx context.Context, ids []int64, active bool) (int64, error)
	ListProductImages(ctx context.Context, productID int64) ([]domain.ProductImage, error)
	CreateProductImage(ctx context.Context, img *domain.ProductImage) (*domain.ProductImage, error)
	UpdateProductImage(ctx context.Context, img *domain.ProductImage) (*domain.ProductImage, error)
	DeleteProductImage(ctx context.Context, id int64) error
}

// ContentStorer defines the database operations for the page content blocks.
type ContentStorer interface {
	ListCarouselItems(ctx context.Context, activeOnly bool) ([]domain.CarouselItem, error)
	GetCarouselItem(ctx context.Context, id int64) (*domain.CarouselItem, error)
	CreateCarouselItem(ctx context.Context, it *domain.CarouselItem) (*domain.CarouselItem, error)
	UpdateCarouselItem(ctx context.Context, it *domain.CarouselItem) (*domain.CarouselItem, error)
	DeleteCarouselItem(ctx context.Context, id int64) error
	SetCarouselItemsActive(ctx context.Context, ids []int64, active bool) (int64, error)

	ListSectionHeaders(ctx context.Context, activeOnly bool) ([]domain.SectionHeader, error)
	GetSectionHeaderBySlug(ctx context.Context, slug string) (*domain.SectionHeader, error)
	CreateSectionHeader(ctx context.Context, sh *domain.SectionHeader) (*domain.SectionHeader, error)
	UpdateSectionHeader(ctx context.Context, sh *domain.SectionHeader) (*domain.SectionHeader, error)
	DeleteSectionHeader(ctx context.Context, id int64) error

	ListAdvantages(ctx context.Context, activeOnly bool) ([]domain.Advantage, error)
	GetAdvantage(ctx context.Context, id int64) (*domain.Advantage, error)
	CreateAdvantage(ctx context.Context, a *domain.Advantage) (*domain.Advantage, error)
	UpdateAdvantage(ctx context.Context, a *domain.Advantage) (*domain.Advantage, error)
	DeleteAdvantage(ctx context.Context, id int64) error
	SetAdvantagesActive(ctx context.Context, ids []int64, active bool) (int64, error)

	ListMetrics(ctx context.Context, activeOnly bool, limit int) ([]domain.Metric, error)
	GetMetric(ctx context.Context, id int64) (*domain.Metric, error)
	CreateMetric(ctx context.Context, m *domain.Metric) (*domain.Metric, error)
	UpdateMetric(ctx context.Context, m *domain.Metric) (*domain.Metric, error)
	DeleteMetric(ctx context.Context, id int64) error
	SetMetricsActive(ctx context.Context, ids []int64, active bool) (int64, error)

	ListTeamMembers(ctx context.Context, activeOnly bool) ([]domain.TeamMember, error)
	GetTeamMember(ctx context.Context, id int64) (*domain.TeamMember, error)
	CreateTeamMember(ctx context.Context, tm *domain.TeamMember) (*domain.TeamMember, error)
	UpdateTeamMember(ctx context.Context, tm *domain.TeamMember) (*domain.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id int64) error
	SetTeamMembersActive(ctx context.Context, ids []int64, active bool) (int64, error)

	ListValues(ctx context.Context, activeOnly bool) ([]domain.Value, error)
	GetValue(ctx context.Context, id int64) (*domain.Value, error)
	CreateValue(ctx context.Context, v *domain.Value) (*domain.Value, error)
	UpdateValue(ctx context.Context, v *domain.Value) (*domain.Value, error)
	DeleteValue(ctx context.Context, id int64) error
	SetValuesActive(ctx context.Context, ids []int64, active bool) (int64, error)

	ListVideos(ctx context.Context, page string, activeOnly bool) ([]domain.Video, error)
	GetVideo(ctx context.Context, id int64) (*domain.Video, error)
	CreateVideo(ctx context.Context, v *domain.Video) (*domain.Video, error)
	UpdateVideo(ctx context.Context, v *domain.Video) (*domain.Video, error)
	DeleteVideo(ctx context.Context, id int64) error

	GetCompanyInfo(ctx context.Context) (*domain.CompanyInfo, error)
	CreateCompanyInfo(ctx context.Context, ci *domain.CompanyInfo) (*domain.CompanyInfo, error)
	UpdateCompanyInfo(ctx context.Context, ci *domain.CompanyInfo) (*domain.CompanyInfo, error)

	ListSocialMaps(ctx context.Context) ([]domain.SocialMap, error)
	GetActiveSocialMap(ctx context.Context) (*domain.SocialMap, error)
	CreateSocialMap(ctx context.Context, sm *domain.SocialMap) (*domain.SocialMap, error)
	UpdateSocialMap(ctx context.Context, sm *domain.SocialMap) (*domain.SocialMap, error)
	DeleteSocialMap(ctx context.Context, id int64) error
}

// ContactStorer defines the database operations for contact-channel records
// and the intake log.
type ContactStorer interface {
	ListContactAddresses(ctx context.Context, activeOnly bool) ([]domain.ContactAddress, error)
	CreateContactAddress(ctx context.Context, a *domain.ContactAddress) (*domain.ContactAddress, error)
	UpdateContactAddress(ctx context.Context, a *domain.ContactAddress) (*domain.ContactAddress, error)
	DeleteContactAddress(ctx context.Context, id int64) error

	ListContactPhones(ctx context.Context, activeOnly bool) ([]domain.ContactPhone, error)
	CreateContactPhone(ctx context.Context, p *domain.ContactPhone) (*domain.ContactPhone, error)
	UpdateContactPhone(ctx context.Context, p *domain.ContactPhone) (*domain.ContactPhone, error)
	DeleteContactPhone(ctx context.Context, id int64) error

	ListContactEmails(ctx context.Context, activeOnly bool) ([]domain.ContactEmail, error)
	CreateContactEmail(ctx context.Context, e *domain.ContactEmail) (*domain.ContactEmail, error)
	UpdateContactEmail(ctx context.Context, e *domain.ContactEmail) (*domain.ContactEmail, error)
	DeleteContactEmail(ctx context.Context, id int64) error

	ListWorkingHours(ctx context.Context) ([]domain.ContactWorkingHours, error)
	GetActiveWorkingHours(ctx context.Context) (*domain.ContactWorkingHours, error)
	CreateWorkingHours(ctx context.Context, wh *domain.ContactWorkingHours) (*domain.ContactWorkingHours, error)
	UpdateWorkingHours(ctx context.Context, wh *domain.ContactWorkingHours) (*domain.ContactWorkingHours, error)
	DeleteWorkingHours(ctx context.Context, id int64) error

	ListContactTopics(ctx context.Context) ([]domain.ContactTopic, error)
	GetContactTopic(ctx context.Context, id int64) (*domain.ContactTopic, error)
	CreateContactTopic(ctx context.Context, t *domain.ContactTopic) (*domain.ContactTopic, error)
	UpdateContactTopic(ctx context.Context, t *domain.ContactTopic) (*domain.ContactTopic, error)
	DeleteContactTopic(ctx context.Context, id int64) error

	CreateContactRequest(ctx context.Context, cr *domain.ContactRequest) (*domain.ContactRequest, error)
	ListContactRequests(ctx context.Context, params ListContactRequestsParams) ([]domain.ContactRequest, int, error)
	GetContactRequest(ctx context.Context, id int64) (*domain.ContactRequest, error)
}
