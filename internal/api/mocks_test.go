package api

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"catalog-site-service/internal/config"
	"catalog-site-service/internal/domain"
	"catalog-site-service/internal/media"
	"catalog-site-service/internal/notify"
	"catalog-site-service/internal/store"
)

const testAdminToken = "test-admin-token"

// MockCategoryStorer is a mock implementation of store.CategoryStorer.
type MockCategoryStorer struct {
	mock.Mock
}

func (m *MockCategoryStorer) ListCategories(ctx context.Context, withCounts bool) ([]domain.Category, error) {
	args := m.Called(ctx, withCounts)
	var out []domain.Category
	if arg0 := args.Get(0); arg0 != nil {
		out = arg0.([]domain.Category)
	}
	return out, args.Error(1)
}

func (m *MockCategoryStorer) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryStorer) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryStorer) CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryStorer) UpdateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryStorer) DeleteCategory(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProductStorer is a mock implementation of store.ProductStorer.
type MockProductStorer struct {
	mock.Mock
}

func (m *MockProductStorer) ListProducts(ctx context.Context, params store.ListProductsParams) ([]domain.Product, int, error) {
	args := m.Called(ctx, params)
	var out []domain.Product
	if arg0 := args.Get(0); arg0 != nil {
		out = arg0.([]domain.Product)
	}
	return out, args.Int(1), args.Error(2)
}

func (m *MockProductStorer) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductStorer) GetProductBySlug(ctx context.Context, slug string, activeOnly bool) (*domain.Product, error) {
	args := m.Called(ctx, slug, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductStorer) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductStorer) UpdateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductStorer) DeleteProduct(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductStorer) SetProductsActive(ctx context.Context, ids []int64, active bool) (int64, error) {
	args := m.Called(ctx, ids, active)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductStorer) ListProductImages(ctx context.Context, productID int64) ([]domain.ProductImage, error) {
	args := m.Called(ctx, productID)
	var out []domain.ProductImage
	if arg0 := args.Get(0); arg0 != nil {
		out = arg0.([]domain.ProductImage)
	}
	return out, args.Error(1)
}

func (m *MockProductStorer) CreateProductImage(ctx context.Context, img *domain.ProductImage) (*domain.ProductImage, error) {
	args := m.Called(ctx, img)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductImage), args.Error(1)
}

func (m *MockProductStorer) UpdateProductImage(ctx context.Context, img *domain.ProductImage) (*domain.ProductImage, error) {
	args := m.Called(ctx, img)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductImage), args.Error(1)
}

func (m *MockProductStorer) DeleteProductImage(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockContentStorer is a mock implementation of store.ContentStorer.
type MockContentStorer struct {
	mock.Mock
}

func (m *MockContentStorer) ListCarouselItems(ctx context.Context, activeOnly bool) ([]domain.CarouselItem, error) {
	args := m.Called(ctx, activeOnly)
	var out []domain.CarouselItem
	if arg0 := args.Get(0); arg0 != nil {
		out = arg0.([]domain.CarouselItem)
	}
	return out, args.Error(1)
}

func (m *MockContentStorer) GetCarouselItem(ctx context.Context, id int64) (*domain.CarouselItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CarouselItem), args.Error(1)
}

func (m *MockContentStorer) CreateCarouselItem(ctx context.Context, it *domain.CarouselItem) (*domain.CarouselItem, error) {
	args := m.Called(ctx, it)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CarouselItem), args.Error(1)
}

func (m *MockContentStorer) UpdateCarouselItem(ctx context.Context, it *domain.CarouselItem) (*domain.CarouselItem, error) {
	args := m.Called(ctx, it)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CarouselItem), args.Error(1)
}

func (m *MockContentStorer) DeleteCarouselItem(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentStorer) SetCarouselItemsActive(ctx context.Context, ids []int64, active bool) (int64, error) {
	args := m.Called(ctx, ids, active)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContentStorer) ListSectionHeaders(ctx context.Context, activeOnly bool) ([]domain.SectionHeader, error) {
	args := m.Called(ctx, activeOnly)
	var out []domain.SectionHeader
	if arg0 := args.Get(0); arg0 != nil {
		out = arg0.([]domain.SectionHeader)
	}
	return out, args.Error(1)
}

func (m *MockContentStorer) GetSectionHeaderBySlug(ctx context.Context, slug string) (*domain.SectionHeader, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SectionHeader), args.Error(1)
}

func (m *MockContentStorer) CreateSectionHeader(ctx context.Context, sh *domain.SectionHeader) (*domain.SectionHeader, error) {
	args := m.Called(ctx, sh)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SectionHeader), args.Error(1)
}

func (m *MockContentStorer) UpdateSectionHeader(ctx context.Context, sh *domain.SectionHeader) (*domain.SectionHeader, error) {
	args := m.Called(ctx, sh)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SectionHeader), args.Error(1)
}

func (m *MockContentStorer) DeleteSectionHeader(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentStorer) ListAdvantages(ctx context.Context, activeOnly bool) ([]domain.Advantage, error) {
	args := m.Called(ctx, activeOnly)
	var out []domain.Advantage
	if arg0 := args.Get(0); arg0 != nil {
		out = arg0.([]domain.Advantage)
	}
	return out, args.Error(1)
}

func (m *MockContentStorer) GetAdvantage(ctx context.Context, id int64) (*domain.Advantage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Advantage), args.Error(1)
}

func (m *MockContentStorer) CreateAdvantage(ctx context.Context, a *domain.Advantage) (*domain.Advantage, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Advantage), args.Error(1)
}

func (m *MockContentStorer) UpdateAdvantage(ctx context.Context, a *domain.Advantage) (*domain.Advantage, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Advantage), args.Error(1)
}

func (m *MockContentStorer) DeleteAdvantage(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentStorer) SetAdvantagesActive(ctx context.Context, ids []int64, active bool) (int64, error) {
	args := m.Called(ctx, ids, active)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContentStorer) ListMetrics(ctx context.Context, activeOnly bool, limit int) ([]domain.Metric, error) {
	args := m.Called(ctx, activeOnly, limit)
	var out []domain.Metric
	if arg0 := args.Get(0); arg0 != nil {
		out = arg0.([]domain.Metric)
	}
	return out, args.Error(1)
}

func (m *MockContentStorer) GetMetric(ctx context.Context, id int64) (*domain.Metric, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Metric), args.Error(1)
}

func (m *MockContentStorer) CreateMetric(ctx context.Context, mt *domain.Metric) (*domain.Metric, error) {
	args := m.Called(ctx, mt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Metric), args.Error(1)
}

func (m *MockContentStorer) UpdateMetric(ctx context.Context, mt *domain.Metric) (*domain.Metric, error) {
	args := m.Called(ctx, mt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Metric), args.Error(1)
}

func (m *MockContentStorer) DeleteMetric(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentStorer) SetMetricsActive(ctx context.Context, ids []int64, active bool) (int64, error) {
	args := m.Called(ctx, ids, active)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContentStorer) ListTeamMembers(ctx context.Context, activeOnly bool) ([]domain.TeamMember, error) {
	args := m.Called(ctx, activeOnly)
	var out []domain.TeamMember
	if arg0 := args.Get(0); arg0 != nil {
		out = arg0.([]domain.TeamMember)
	}
	return out, args.Error(1)
}

func (m *MockContentStorer) GetTeamMember(ctx context.Context, id int64) (*domain.TeamMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamMember), args.Error(1)
}

func (m *MockContentStorer) CreateTeamMember(ctx context.Context, tm *domain.TeamMember) (*domain.TeamMember, error) {
	args := m.Called(ctx, tm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamMember), args.Error(1)
}

func (m *MockContentStorer) UpdateTeamMember(ctx context.Context, tm *domain.TeamMember) (*domain.TeamMember, error) {
	args := m.Called(ctx, tm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamMember), args.Error(1)
}

func (m *MockContentStorer) DeleteTeamMember(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentStorer) SetTeamMembersActive(ctx context.Context, ids []int64, active bool) (int64, error) {
	args := m.Called(ctx, ids, active)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContentStorer) ListValues(ctx context.Context, activeOnly bool) ([]domain.Value, error) {
	args := m.Called(ctx, activeOnly)
	var out []domain.Value
	if arg0 := args.Get(0); arg0 != nil {
		out = arg0.([]domain.Value)
	}
	return out, args.Error(1)
}

func (m *MockContentStorer) GetValue(ctx context.Context, id int64) (*domain.Value, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Value), args.Error(1)
}

func (m *MockContentStorer) CreateValue(ctx context.Context, v *domain.Value) (*domain.Value, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Value), args.Error(1)
}

func (m *MockContentStorer) UpdateValue(ctx context.Context, v *domain.Value) (*domain.Value, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Value), args.Error(1)
}

func (m *MockContentStorer) DeleteValue(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentStorer) SetValuesActive(ctx context.Context, ids []int64, active bool) (int64, error) {
	args := m.Called(ctx, ids, active)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContentStorer) ListVideos(ctx context.Context, page string, activeOnly bool) ([]domain.Video, error) {
	args := m.Called(ctx, page, activeOnly)
	var out []domain.Video
	if arg0 := args.Get(0); arg0 != nil {
		out = arg0.([]domain.Video)
	}
	return out, args.Error(1)
}

func (m *MockContentStorer) GetVideo(ctx context.Context, id int64) (*domain.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockContentStorer) CreateVideo(ctx context.Context, v *domain.Video) (*domain.Video, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockContentStorer) UpdateVideo(ctx context.Context, v *domain.Video) (*domain.Video, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockContentStorer) DeleteVideo(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentStorer) GetCompanyInfo(ctx context.Context) (*domain.CompanyInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyInfo), args.Error(1)
}

func (m *MockContentStorer) CreateCompanyInfo(ctx context.Context, ci *domain.CompanyInfo) (*domain.CompanyInfo, error) {
	args := m.Called(ctx, ci)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyInfo), args.Error(1)
}

func (m *MockContentStorer) UpdateCompanyInfo(ctx context.Context, ci *domain.CompanyInfo) (*domain.CompanyInfo, error) {
	args := m.Called(ctx, ci)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyInfo), args.Error(1)
}

func (m *MockContentStorer) ListSocialMaps(ctx context.Context) ([]domain.SocialMap, error) {
	args := m.Called(ctx)
	var out []domain.SocialMap
	if arg0 := args.Get(0); arg0 != nil {
		out = arg0.([]domain.SocialMap)
	}
	return out, args.Error(1)
}

func (m *MockContentStorer) GetActiveSocialMap(ctx context.Context) (*domain.SocialMap, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SocialMap), args.Error(1)
}

func (m *MockContentStorer) CreateSocialMap(ctx context.Context, sm *domain.SocialMap) (*domain.SocialMap, error) {
	args := m.Called(ctx, sm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SocialMap), args.Error(1)
}

func (m *MockContentStorer) UpdateSocialMap(ctx context.Context, sm *domain.SocialMap) (*domain.SocialMap, error) {
	args := m.Called(ctx, sm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SocialMap), args.Error(1)
}

func (m *MockContentStorer) DeleteSocialMap(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ store.ContentStorer = (*MockContentStorer)(nil)

// MockContactStorer is a mock implementation of store.ContactStorer.
type MockContactStorer struct {
	mock.Mock
}

func (m *MockContactStorer) ListContactAddresses(ctx context.Context, activeOnly bool) ([]domain.ContactAddress, error) {
	args := m.Called(ctx, activeOnly)
	var out []domain.ContactAddress
	if arg0 := args.Get(0); arg0 != nil {
		out = arg0.([]domain.ContactAddress)
	}
	return out, args.Error(1)
}

func (m *MockContactStorer) CreateContactAddress(ctx context.Context, a *domain.ContactAddress) (*domain.ContactAddress, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactAddress), args.Error(1)
}

func (m *MockContactStorer) UpdateContactAddress(ctx context.Context, a *domain.ContactAddress) (*domain.ContactAddress, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactAddress), args.Error(1)
}

func (m *MockContactStorer) DeleteContactAddress(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContactStorer) ListContactPhones(ctx context.Context, activeOnly bool) ([]domain.ContactPhone, error) {
	args := m.Called(ctx, activeOnly)
	var out []domain.ContactPhone
	if arg0 := args.Get(0); arg0 != nil {
		out = arg0.([]domain.ContactPhone)
	}
	return out, args.Error(1)
}

func (m *MockContactStorer) CreateContactPhone(ctx context.Context, p *domain.ContactPhone) (*domain.ContactPhone, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactPhone), args.Error(1)
}

func (m *MockContactStorer) UpdateContactPhone(ctx context.Context, p *domain.ContactPhone) (*domain.ContactPhone, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactPhone), args.Error(1)
}

func (m *MockContactStorer) DeleteContactPhone(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContactStorer) ListContactEmails(ctx context.Context, activeOnly bool) ([]domain.ContactEmail, error) {
	args := m.Called(ctx, activeOnly)
	var out []domain.ContactEmail
	if arg0 := args.Get(0); arg0 != nil {
		out = arg0.([]domain.ContactEmail)
	}
	return out, args.Error(1)
}

func (m *MockContactStorer) CreateContactEmail(ctx context.Context, e *domain.ContactEmail) (*domain.ContactEmail, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactEmail), args.Error(1)
}

func (m *MockContactStorer) UpdateContactEmail(ctx context.Context, e *domain.ContactEmail) (*domain.ContactEmail, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactEmail), args.Error(1)
}

func (m *MockContactStorer) DeleteContactEmail(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContactStorer) ListWorkingHours(ctx context.Context) ([]domain.ContactWorkingHours, error) {
	args := m.Called(ctx)
	var out []domain.ContactWorkingHours
	if arg0 := args.Get(0); arg0 != nil {
		out = arg0.([]domain.ContactWorkingHours)
	}
	return out, args.Error(1)
}

func (m *MockContactStorer) GetActiveWorkingHours(ctx context.Context) (*domain.ContactWorkingHours, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactWorkingHours), args.Error(1)
}

func (m *MockContactStorer) CreateWorkingHours(ctx context.Context, wh *domain.ContactWorkingHours) (*domain.ContactWorkingHours, error) {
	args := m.Called(ctx, wh)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactWorkingHours), args.Error(1)
}

func (m *MockContactStorer) UpdateWorkingHours(ctx context.Context, wh *domain.ContactWorkingHours) (*domain.ContactWorkingHours, error) {
	args := m.Called(ctx, wh)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactWorkingHours), args.Error(1)
}

func (m *MockContactStorer) DeleteWorkingHours(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContactStorer) ListContactTopics(ctx context.Context) ([]domain.ContactTopic, error) {
	args := m.Called(ctx)
	var out []domain.ContactTopic
	if arg0 := args.Get(0); arg0 != nil {
		out = arg0.([]domain.ContactTopic)
	}
	return out, args.Error(1)
}

func (m *MockContactStorer) GetContactTopic(ctx context.Context, id int64) (*domain.ContactTopic, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactTopic), args.Error(1)
}

func (m *MockContactStorer) CreateContactTopic(ctx context.Context, t *domain.ContactTopic) (*domain.ContactTopic, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactTopic), args.Error(1)
}

func (m *MockContactStorer) UpdateContactTopic(ctx context.Context, t *domain.ContactTopic) (*domain.ContactTopic, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactTopic), args.Error(1)
}

func (m *MockContactStorer) DeleteContactTopic(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContactStorer) CreateContactRequest(ctx context.Context, cr *domain.ContactRequest) (*domain.ContactRequest, error) {
	args := m.Called(ctx, cr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactRequest), args.Error(1)
}

func (m *MockContactStorer) ListContactRequests(ctx context.Context, params store.ListContactRequestsParams) ([]domain.ContactRequest, int, error) {
	args := m.Called(ctx, params)
	var out []domain.ContactRequest
	if arg0 := args.Get(0); arg0 != nil {
		out = arg0.([]domain.ContactRequest)
	}
	return out, args.Int(1), args.Error(2)
}

func (m *MockContactStorer) GetContactRequest(ctx context.Context, id int64) (*domain.ContactRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactRequest), args.Error(1)
}

// MockNotifier is a mock implementation of notify.Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) ContactRequestReceived(ctx context.Context, cr *domain.ContactRequest, topicName string) error {
	args := m.Called(ctx, cr, topicName)
	return args.Error(0)
}

var _ notify.Notifier = (*MockNotifier)(nil)

func testSiteConfig() config.SiteConfig {
	return config.SiteConfig{
		Languages:       []string{"ru", "kk", "en"},
		DefaultLanguage: "ru",
		CacheTTL:        time.Minute,
		CatalogPageSize: 12,
	}
}

// setupTestServer wires the handler with mocks onto a live chi router. Nil
// storers are fine as long as the routes under test never reach them.
func setupTestServer(t *testing.T, d Deps) *httptest.Server {
	t.Helper()
	if d.Media == nil {
		ms, err := media.NewStore(t.TempDir(), "/media")
		require.NoError(t, err)
		d.Media = ms
	}
	if d.Site.DefaultLanguage == "" {
		d.Site = testSiteConfig()
	}
	if d.AdminToken == "" {
		d.AdminToken = testAdminToken
	}
	handler := NewHTTPHandler(d)
	router := chi.NewRouter()
	handler.RegisterRoutes(router)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

// PtrTo returns a pointer to v, for optional fields in payloads.
func PtrTo[T any](v T) *T {
	return &v
}
