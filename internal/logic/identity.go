package logic

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/mitsuha/legacy-api/internal/models"
)

// TypeHintID forces id lookup regardless of token shape. The historical
// parameter value is "u"; v2 passes "id". Any other non-empty hint falls
// back to automatic recognition.
const (
	TypeHintID   = "u"
	TypeHintIDV2 = "id"
	TypeHintName = "username"
)

type identityService struct {
	store  Store
	logger *zap.SugaredLogger
}

func NewIdentityService(store Store, logger *zap.Logger) IdentityService {
	return &identityService{store: store, logger: logger.Sugar()}
}

// Resolve turns a free-form user token into a player record. Numeric-looking
// tokens are treated as ids unless the hint says otherwise; everything else
// is matched against name or safe name. A miss is ErrNotFound, never a fault.
func (s *identityService) Resolve(ctx context.Context, token, typeHint string) (*models.Player, error) {
	if token == "" {
		return nil, ErrNotFound
	}

	byID := false
	switch typeHint {
	case TypeHintID, TypeHintIDV2:
		byID = true
	case TypeHintName:
		byID = false
	default:
		byID = IsNumeric(token)
	}

	var (
		player *models.Player
		err    error
	)
	if byID {
		id, convErr := strconv.Atoi(token)
		if convErr != nil {
			// Numeric-looking but not an integer (e.g. "1.5"); ids are
			// integral, so this cannot match anything.
			return nil, ErrNotFound
		}
		player, err = s.store.UserByID(ctx, id)
	} else {
		player, err = s.store.UserByName(ctx, token)
	}

	if err != nil {
		// Store failures collapse to "no data" for the caller.
		s.logger.Errorw("identity lookup failed", "token", token, "error", err)
		return nil, ErrNotFound
	}
	if player == nil {
		return nil, ErrNotFound
	}
	return player, nil
}

// ResolveV2 implements the v2 key-hint policy: an explicit id or username
// hint limits the lookup to that keyspace, anything else tries id first and
// falls back to username.
func ResolveV2(ctx context.Context, s IdentityService, token, key string) (*models.Player, error) {
	switch key {
	case TypeHintIDV2:
		return s.Resolve(ctx, token, TypeHintIDV2)
	case TypeHintName:
		return s.Resolve(ctx, token, TypeHintName)
	default:
		player, err := s.Resolve(ctx, token, TypeHintIDV2)
		if err == nil {
			return player, nil
		}
		return s.Resolve(ctx, token, TypeHintName)
	}
}
