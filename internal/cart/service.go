package cart

import (
	"context"
	"fmt"

	"github.com/martinvega/sneakhub-backend/internal/pricing"
	pkgerrors "github.com/martinvega/sneakhub-backend/pkg/errors"
	"github.com/martinvega/sneakhub-backend/pkg/logger"
)

// Quote is the cart plus its derived totals. Totals are recomputed from the
// cart contents on every read so they can never go stale.
type Quote struct {
	Items        []LineItem     `json:"items"`
	AppliedPromo string         `json:"applied_promo,omitempty"`
	ItemCount    int            `json:"item_count"`
	Totals       pricing.Totals `json:"totals"`
}

// Service exposes the session cart operations.
type Service interface {
	GetCart(ctx context.Context, sessionID string) (*Quote, error)
	AddItem(ctx context.Context, sessionID string, input AddInput) (*Quote, error)
	SetQuantity(ctx context.Context, sessionID, variantID string, qty int) (*Quote, error)
	RemoveItem(ctx context.Context, sessionID, variantID string) (*Quote, error)
	ApplyPromo(ctx context.Context, sessionID, code string) (*Quote, error)
	RemovePromo(ctx context.Context, sessionID string) (*Quote, error)
}

type service struct {
	repo   Repository
	engine *pricing.Engine
	promos PromoList
	logg   *logger.Logger
}

// NewService builds a cart service backed by the provided stack.
func NewService(repo Repository, engine *pricing.Engine, promos PromoList, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if engine == nil {
		return nil, fmt.Errorf("pricing engine required")
	}
	return &service{
		repo:   repo,
		engine: engine,
		promos: promos,
		logg:   logg,
	}, nil
}

// GetCart returns the session's cart with freshly computed totals.
func (s *service) GetCart(ctx context.Context, sessionID string) (*Quote, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	current := s.load(ctx, sessionID)
	return s.quote(current), nil
}

// AddItem merges the variant into the cart. An input without a variant
// identity is logged and dropped without surfacing an error.
func (s *service) AddItem(ctx context.Context, sessionID string, input AddInput) (*Quote, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}

	current := s.load(ctx, sessionID)
	if !current.Add(input) {
		if s.logg != nil {
			s.logg.Warn(ctx, "cart.add.missing_variant_id")
		}
		return s.quote(current), nil
	}

	s.persist(ctx, sessionID, current)
	return s.quote(current), nil
}

// SetQuantity replaces the stored quantity; zero removes the line.
func (s *service) SetQuantity(ctx context.Context, sessionID, variantID string, qty int) (*Quote, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}

	current := s.load(ctx, sessionID)
	if err := current.SetQuantity(variantID, qty); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid quantity").
			WithDetails(map[string]any{"quantity": qty})
	}

	s.persist(ctx, sessionID, current)
	return s.quote(current), nil
}

// RemoveItem deletes the line item for the variant; absent ids are a no-op.
func (s *service) RemoveItem(ctx context.Context, sessionID, variantID string) (*Quote, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}

	current := s.load(ctx, sessionID)
	current.Remove(variantID)

	s.persist(ctx, sessionID, current)
	return s.quote(current), nil
}

// ApplyPromo validates the code against the allow-list. Reapplying the same
// valid code is a no-op; a different valid code replaces the previous one; an
// unknown code is rejected and leaves the cart untouched.
func (s *service) ApplyPromo(ctx context.Context, sessionID, code string) (*Quote, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}

	normalized, ok := s.promos.Normalize(code)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodePromoRejected, "invalid promo code").
			WithDetails(map[string]any{"code": code})
	}

	current := s.load(ctx, sessionID)
	if current.AppliedPromo == normalized {
		return s.quote(current), nil
	}
	current.AppliedPromo = normalized

	s.persist(ctx, sessionID, current)
	return s.quote(current), nil
}

// RemovePromo clears the applied promo; totals recompute without cart
// mutation.
func (s *service) RemovePromo(ctx context.Context, sessionID string) (*Quote, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}

	current := s.load(ctx, sessionID)
	if current.AppliedPromo == "" {
		return s.quote(current), nil
	}
	current.AppliedPromo = ""

	s.persist(ctx, sessionID, current)
	return s.quote(current), nil
}

// load pulls the session's snapshot, treating a missing or unreadable
// snapshot as an empty cart. Read failures never propagate to the caller.
func (s *service) load(ctx context.Context, sessionID string) *Cart {
	snapshot, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithSessionID(ctx, sessionID), "cart.snapshot.unreadable")
		}
		return &Cart{Items: []LineItem{}}
	}
	if snapshot == nil {
		return &Cart{Items: []LineItem{}}
	}
	items := snapshot.Items
	if items == nil {
		items = []LineItem{}
	}
	return &Cart{Items: items, AppliedPromo: snapshot.AppliedPromo}
}

// persist writes the snapshot after a mutation. Persistence is
// fire-and-forget against the single-threaded mutation sequence; a write
// failure is logged, not surfaced.
func (s *service) persist(ctx context.Context, sessionID string, current *Cart) {
	err := s.repo.Save(ctx, sessionID, Snapshot{
		Items:        current.Items,
		AppliedPromo: current.AppliedPromo,
	})
	if err != nil && s.logg != nil {
		s.logg.Error(s.logg.WithSessionID(ctx, sessionID), "cart.snapshot.save_failed", err)
	}
}

func (s *service) quote(current *Cart) *Quote {
	return &Quote{
		Items:        current.Items,
		AppliedPromo: current.AppliedPromo,
		ItemCount:    current.TotalItemCount(),
		Totals:       s.engine.ComputeTotals(current.PricingLines(), current.AppliedPromo != ""),
	}
}
