package toolstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/tool-replenish/internal/catalog"
	"github.com/KirkDiggler/tool-replenish/internal/domain/tools"
	apperr "github.com/KirkDiggler/tool-replenish/internal/errors"
)

// redisRepo implements Repository on Redis.
//
// Layout per profile:
//
//	profile:{id}:equipped  list of tool names in slot order
//	profile:{id}:tools     hash name -> ToolData JSON
//	profile:{id}:capacity  hash name -> storage bonus
//	profile:{id}:currency  hash kind -> amount
//	profile:{id}:reserves  hash pool -> ReserveState JSON
//	profile:{id}:hud       pub/sub channel for HUDMessage JSON
type redisRepo struct {
	client  redis.UniversalClient
	catalog *catalog.Catalog
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client  redis.UniversalClient
	Catalog *catalog.Catalog
}

// NewRedisRepository creates a Redis-backed repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}
	if cfg.Catalog == nil {
		panic("catalog is required")
	}
	return &redisRepo{
		client:  cfg.Client,
		catalog: cfg.Catalog,
	}
}

func equippedKey(profileID string) string { return fmt.Sprintf("profile:%s:equipped", profileID) }
func toolsKey(profileID string) string    { return fmt.Sprintf("profile:%s:tools", profileID) }
func capacityKey(profileID string) string { return fmt.Sprintf("profile:%s:capacity", profileID) }
func currencyKey(profileID string) string { return fmt.Sprintf("profile:%s:currency", profileID) }
func reservesKey(profileID string) string { return fmt.Sprintf("profile:%s:reserves", profileID) }

// HUDChannel is where cost popups for a profile are published
func HUDChannel(profileID string) string { return fmt.Sprintf("profile:%s:hud", profileID) }

func unavailable(err error, format string, args ...any) error {
	return apperr.WrapWithCode(err, apperr.CodeUnavailable, fmt.Sprintf(format, args...))
}

// corrupt reports a stored value that no longer decodes
func corrupt(err error, format string, args ...any) error {
	return apperr.WrapWithCode(err, apperr.CodeInternal, "corrupt "+fmt.Sprintf(format, args...))
}

func (r *redisRepo) ListEquipped(ctx context.Context, profileID string) ([]*tools.Tool, error) {
	if profileID == "" {
		return nil, apperr.InvalidArgument("profile ID is required")
	}

	names, err := r.client.LRange(ctx, equippedKey(profileID), 0, -1).Result()
	if err != nil {
		return nil, unavailable(err, "failed to list equipped tools for %s", profileID)
	}
	if len(names) == 0 {
		return nil, nil
	}

	result := make([]*tools.Tool, len(names))
	for i, name := range names {
		if t, ok := r.catalog.Get(name); ok {
			result[i] = t
		}
	}
	return result, nil
}

func (r *redisRepo) Equip(ctx context.Context, profileID string, names ...string) error {
	if profileID == "" {
		return apperr.InvalidArgument("profile ID is required")
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, equippedKey(profileID))
		if len(names) > 0 {
			values := make([]interface{}, len(names))
			for i, name := range names {
				values[i] = name
			}
			pipe.RPush(ctx, equippedKey(profileID), values...)
		}
		return nil
	})
	if err != nil {
		return unavailable(err, "failed to equip tools for %s", profileID)
	}
	return nil
}

func (r *redisRepo) GetToolData(ctx context.Context, profileID, name string) (*tools.ToolData, error) {
	raw, err := r.client.HGet(ctx, toolsKey(profileID), name).Bytes()
	if errors.Is(err, redis.Nil) {
		return &tools.ToolData{}, nil
	}
	if err != nil {
		return nil, unavailable(err, "failed to get tool %s", name)
	}

	var data tools.ToolData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, corrupt(err, "tool %s", name)
	}
	return &data, nil
}

func (r *redisRepo) SetToolData(ctx context.Context, profileID, name string, data *tools.ToolData) error {
	if data == nil {
		return apperr.InvalidArgument("tool data cannot be nil")
	}
	if data.AmountLeft < 0 {
		return apperr.InvalidArgumentf("tool %s amount cannot be negative", name)
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return apperr.Wrapf(err, "failed to marshal tool %s", name)
	}
	if err := r.client.HSet(ctx, toolsKey(profileID), name, string(raw)).Err(); err != nil {
		return unavailable(err, "failed to set tool %s", name)
	}
	return nil
}

func (r *redisRepo) GetStorageCapacity(ctx context.Context, profileID string, tool *tools.Tool) (int, error) {
	if tool == nil {
		return 0, apperr.InvalidArgument("tool cannot be nil")
	}

	bonus, err := r.client.HGet(ctx, capacityKey(profileID), tool.Name).Int()
	if errors.Is(err, redis.Nil) {
		return tool.BaseStorage, nil
	}
	if err != nil {
		return 0, unavailable(err, "failed to get capacity for %s", tool.Name)
	}
	return tool.BaseStorage + bonus, nil
}

func (r *redisRepo) SetCapacityBonus(ctx context.Context, profileID, name string, bonus int) error {
	if err := r.client.HSet(ctx, capacityKey(profileID), name, bonus).Err(); err != nil {
		return unavailable(err, "failed to set capacity for %s", name)
	}
	return nil
}

func (r *redisRepo) CurrencyKinds(ctx context.Context, profileID string) ([]tools.CurrencyKind, error) {
	held, err := r.client.HKeys(ctx, currencyKey(profileID)).Result()
	if err != nil {
		return nil, unavailable(err, "failed to list currencies for %s", profileID)
	}
	return mergeKinds(r.catalog.Currencies(), held), nil
}

func (r *redisRepo) GetCurrencyAmount(ctx context.Context, profileID string, kind tools.CurrencyKind) (float64, error) {
	amount, err := r.client.HGet(ctx, currencyKey(profileID), string(kind)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, unavailable(err, "failed to get currency %s", kind)
	}
	return float64(amount), nil
}

func (r *redisRepo) SetCurrency(ctx context.Context, profileID string, kind tools.CurrencyKind, amount int) error {
	if amount < 0 {
		return apperr.InvalidArgumentf("currency %s cannot be negative", kind)
	}
	if err := r.client.HSet(ctx, currencyKey(profileID), string(kind), amount).Err(); err != nil {
		return unavailable(err, "failed to set currency %s", kind)
	}
	return nil
}

func (r *redisRepo) TakeCurrency(ctx context.Context, profileID string, amount int, kind tools.CurrencyKind, notifyUI bool) error {
	if amount < 0 {
		return apperr.InvalidArgumentf("cannot take negative %s", kind)
	}

	left, err := r.client.HIncrBy(ctx, currencyKey(profileID), string(kind), -int64(amount)).Result()
	if err != nil {
		return unavailable(err, "failed to take currency %s", kind)
	}
	if left < 0 {
		if err := r.client.HSet(ctx, currencyKey(profileID), string(kind), 0).Err(); err != nil {
			return unavailable(err, "failed to clamp currency %s", kind)
		}
	}

	if !notifyUI {
		return nil
	}
	return r.publishHUD(ctx, profileID, HUDMessage{Kind: HUDKindCurrency, Key: string(kind), Amount: amount})
}

func (r *redisRepo) GetReserveState(ctx context.Context, profileID, pool string) (*tools.ReserveState, error) {
	raw, err := r.client.HGet(ctx, reservesKey(profileID), pool).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperr.NotFoundf("reserve %s not found", pool).WithMeta("pool", pool)
	}
	if err != nil {
		return nil, unavailable(err, "failed to get reserve %s", pool)
	}

	var state tools.ReserveState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, corrupt(err, "reserve %s", pool)
	}
	return &state, nil
}

func (r *redisRepo) SetReserveState(ctx context.Context, profileID, pool string, state *tools.ReserveState) error {
	if state == nil {
		return apperr.InvalidArgument("reserve state cannot be nil")
	}

	raw, err := json.Marshal(state)
	if err != nil {
		return apperr.Wrapf(err, "failed to marshal reserve %s", pool)
	}
	if err := r.client.HSet(ctx, reservesKey(profileID), pool, string(raw)).Err(); err != nil {
		return unavailable(err, "failed to set reserve %s", pool)
	}
	return nil
}

func (r *redisRepo) TakeReserve(ctx context.Context, profileID, pool string, amount int, notifyUI bool) error {
	state, err := r.GetReserveState(ctx, profileID, pool)
	if err != nil {
		return err
	}

	state.Take(amount)
	if err := r.SetReserveState(ctx, profileID, pool, state); err != nil {
		return err
	}

	if !notifyUI {
		return nil
	}
	return r.publishHUD(ctx, profileID, HUDMessage{Kind: HUDKindReserve, Key: pool, Amount: amount})
}

func (r *redisRepo) SetReserveSpent(ctx context.Context, profileID, pool string, spent float64) error {
	if spent < 0 || spent >= 1 {
		return apperr.InvalidArgumentf("reserve %s spent share %.3f out of range", pool, spent)
	}

	state, err := r.GetReserveState(ctx, profileID, pool)
	if err != nil {
		return err
	}

	state.Spent = spent
	return r.SetReserveState(ctx, profileID, pool, state)
}

func (r *redisRepo) MarkInfiniteReserveShown(ctx context.Context, profileID, pool string) error {
	state, err := r.GetReserveState(ctx, profileID, pool)
	if err != nil {
		return err
	}

	state.InfiniteShown = true
	if err := r.SetReserveState(ctx, profileID, pool, state); err != nil {
		return err
	}
	return r.publishHUD(ctx, profileID, HUDMessage{Kind: HUDKindInfinite, Key: pool})
}

// LoadProfile reads every profile key in one round trip
func (r *redisRepo) LoadProfile(ctx context.Context, profileID string) (*Profile, error) {
	if profileID == "" {
		return nil, apperr.InvalidArgument("profile ID is required")
	}

	pipe := r.client.Pipeline()
	equippedCmd := pipe.LRange(ctx, equippedKey(profileID), 0, -1)
	toolsCmd := pipe.HGetAll(ctx, toolsKey(profileID))
	capCmd := pipe.HGetAll(ctx, capacityKey(profileID))
	currencyCmd := pipe.HGetAll(ctx, currencyKey(profileID))
	reserveCmd := pipe.HGetAll(ctx, reservesKey(profileID))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, unavailable(err, "failed to load profile %s", profileID)
	}

	equipped := equippedCmd.Val()
	toolsRaw := toolsCmd.Val()
	capRaw := capCmd.Val()
	currencyRaw := currencyCmd.Val()
	reserveRaw := reserveCmd.Val()

	if len(equipped) == 0 && len(toolsRaw) == 0 && len(capRaw) == 0 &&
		len(currencyRaw) == 0 && len(reserveRaw) == 0 {
		return nil, apperr.NotFoundf("profile %s not found", profileID).WithMeta("profile_id", profileID)
	}

	p := &Profile{
		ID:         profileID,
		Equipped:   equipped,
		Tools:      make(map[string]*tools.ToolData, len(toolsRaw)),
		Capacity:   make(map[string]int, len(capRaw)),
		Currencies: make(map[tools.CurrencyKind]int, len(currencyRaw)),
		Reserves:   make(map[string]*tools.ReserveState, len(reserveRaw)),
	}
	for name, raw := range toolsRaw {
		var data tools.ToolData
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return nil, corrupt(err, "tool %s", name)
		}
		p.Tools[name] = &data
	}
	for name, raw := range capRaw {
		bonus, err := strconv.Atoi(raw)
		if err != nil {
			return nil, apperr.Wrapf(err, "bad capacity for %s", name)
		}
		p.Capacity[name] = bonus
	}
	for kind, raw := range currencyRaw {
		amount, err := strconv.Atoi(raw)
		if err != nil {
			return nil, apperr.Wrapf(err, "bad currency %s", kind)
		}
		p.Currencies[tools.CurrencyKind(kind)] = amount
	}
	for pool, raw := range reserveRaw {
		var state tools.ReserveState
		if err := json.Unmarshal([]byte(raw), &state); err != nil {
			return nil, corrupt(err, "reserve %s", pool)
		}
		p.Reserves[pool] = &state
	}
	return p, nil
}

func (r *redisRepo) publishHUD(ctx context.Context, profileID string, msg HUDMessage) error {
	raw, err := json.Marshal(msg)
	if err != nil {
		return apperr.Wrap(err, "failed to marshal hud message")
	}
	if err := r.client.Publish(ctx, HUDChannel(profileID), string(raw)).Err(); err != nil {
		return unavailable(err, "failed to publish hud message")
	}
	return nil
}
