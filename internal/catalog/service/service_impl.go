package service

import (
	"context"
	"strings"

	catalogdomain "github.com/innovationlabs/trackify/internal/catalog/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo catalogdomain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo catalogdomain.Repository
}

func New(p Params) catalogdomain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("catalog.service"),
		repo: p.Repo,
	}
}

// GetItem resolves an item id against tools first, then components.
func (s *Service) GetItem(ctx context.Context, itemID string) (*catalogdomain.Item, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return nil, catalogdomain.ErrInvalidItemID
	}

	tool, err := s.repo.FindToolByID(ctx, s.db, itemID)
	if err != nil {
		return nil, err
	}
	if tool != nil {
		return toolItem(tool), nil
	}

	component, err := s.repo.FindComponentByID(ctx, s.db, itemID)
	if err != nil {
		return nil, err
	}
	if component != nil {
		return componentItem(component), nil
	}

	return nil, catalogdomain.ErrNotFound
}

func (s *Service) ListTools(ctx context.Context) ([]catalogdomain.Tool, error) {
	return s.repo.ListTools(ctx, s.db)
}

func (s *Service) ListComponents(ctx context.Context) ([]catalogdomain.Component, error) {
	return s.repo.ListComponents(ctx, s.db)
}

func toolItem(t *catalogdomain.Tool) *catalogdomain.Item {
	stock := int64(0)
	if t.Status == catalogdomain.ToolAvailable {
		stock = 1
	}
	return &catalogdomain.Item{
		ID:            t.ID,
		Name:          t.Name,
		Description:   t.Description,
		UnitPrice:     t.UnitPrice,
		StockQuantity: stock,
	}
}

func componentItem(c *catalogdomain.Component) *catalogdomain.Item {
	return &catalogdomain.Item{
		ID:            c.ID,
		Name:          c.Name,
		Description:   c.Description,
		UnitPrice:     c.UnitPrice,
		StockQuantity: c.Quantity,
	}
}
