package service

import (
	"context"
	"fmt"

	"connectrpc.com/connect"

	"github.com/mmynk/tablepos/internal/calculator"
	"github.com/mmynk/tablepos/internal/catalog"
	"github.com/mmynk/tablepos/internal/models"
	"github.com/mmynk/tablepos/pkg/api"
	"github.com/mmynk/tablepos/pkg/api/apiconnect"
)

var _ apiconnect.CatalogServiceHandler = (*CatalogService)(nil)

// CatalogService implements the Connect CatalogService
type CatalogService struct {
	catalog *catalog.Catalog
}

func NewCatalogService(cat *catalog.Catalog) *CatalogService {
	return &CatalogService{catalog: cat}
}

func (s *CatalogService) ListCatalog(ctx context.Context, req *connect.Request[api.ListCatalogRequest]) (*connect.Response[api.ListCatalogResponse], error) {
	cats := s.catalog.Categories()
	out := make([]api.Category, len(cats))
	for i, c := range cats {
		out[i] = api.Category{ID: c.ID, Name: c.Name, Products: make([]api.Product, len(c.Products))}
		for j, p := range c.Products {
			out[i].Products[j] = toAPIProduct(p)
		}
	}
	return connect.NewResponse(&api.ListCatalogResponse{Categories: out}), nil
}

func (s *CatalogService) ListPaymentKinds(ctx context.Context, req *connect.Request[api.ListPaymentKindsRequest]) (*connect.Response[api.ListPaymentKindsResponse], error) {
	var kinds []api.PaymentKind
	for _, k := range models.PaymentKinds() {
		info, _ := k.Info()
		kinds = append(kinds, api.PaymentKind{
			Code:        info.Code,
			Label:       info.Label,
			Icon:        info.Icon,
			GivesChange: info.GivesChange,
		})
	}
	return connect.NewResponse(&api.ListPaymentKindsResponse{Kinds: kinds}), nil
}

// PreviewCombo reports whether an in-progress combo selection can be
// added and what it would cost. Incomplete selections are not an error.
func (s *CatalogService) PreviewCombo(ctx context.Context, req *connect.Request[api.PreviewComboRequest]) (*connect.Response[api.PreviewComboResponse], error) {
	p, err := s.catalog.Product(req.Msg.ProductID)
	if err != nil {
		return nil, toConnectError(err)
	}
	if !p.IsCombo() {
		return nil, toConnectError(fmt.Errorf("%w: %s", calculator.ErrNotCombo, p.ID))
	}
	sel, err := buildSelection(p, req.Msg.Picks)
	if err != nil {
		return nil, toConnectError(err)
	}
	qty := req.Msg.Quantity
	if qty == 0 {
		qty = 1
	}

	res := calculator.ValidateSelection(p.OptionGroups, sel)
	name := p.Name
	if res.Valid {
		if _, composed, err := calculator.FinalizeCombo(p, sel); err == nil {
			name = composed
		}
	}

	selection := make(map[string][]api.ComboItem, len(sel))
	for groupID, items := range sel {
		selection[groupID] = toAPIItems(items)
	}
	return connect.NewResponse(&api.PreviewComboResponse{
		Valid:          res.Valid,
		MissingGroups:  res.MissingGroups,
		OverfullGroups: res.OverfullGroups,
		Selection:      selection,
		Name:           name,
		UnitPrice:      calculator.RoundMoney(calculator.ComboUnitPrice(p.Price, sel)),
		Total:          calculator.RoundMoney(calculator.ComputeComboPrice(p.Price, sel, qty)),
	}), nil
}
