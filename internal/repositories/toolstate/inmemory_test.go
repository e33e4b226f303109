package toolstate_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/tool-replenish/internal/catalog"
	"github.com/KirkDiggler/tool-replenish/internal/domain/tools"
	apperr "github.com/KirkDiggler/tool-replenish/internal/errors"
	"github.com/KirkDiggler/tool-replenish/internal/repositories/toolstate"
	"github.com/stretchr/testify/suite"
)

type InMemoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo *toolstate.InMemoryRepository
}

func (s *InMemoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	c, err := catalog.New(
		&tools.Tool{Name: "pin", Usage: tools.UsagePercentage, Resource: "shards", BaseStorage: 5},
		&tools.Tool{Name: "flask", Usage: tools.UsageCustom, BaseStorage: 4, Liquid: &tools.LiquidConfig{}},
	)
	s.Require().NoError(err)
	s.repo = toolstate.NewInMemoryRepository(c)
}

func TestInMemoryTestSuite(t *testing.T) {
	suite.Run(t, new(InMemoryTestSuite))
}

func (s *InMemoryTestSuite) TestListEquipped() {
	list, err := s.repo.ListEquipped(s.ctx, "p1")
	s.NoError(err)
	s.Nil(list, "nothing equipped yet")

	s.Require().NoError(s.repo.Equip(s.ctx, "p1", "flask", "ghost", "pin"))

	list, err = s.repo.ListEquipped(s.ctx, "p1")
	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.Equal("flask", list[0].Name)
	s.Nil(list[1], "unknown tools are placeholders")
	s.Equal("pin", list[2].Name)

	_, err = s.repo.ListEquipped(s.ctx, "")
	s.True(apperr.IsInvalidArgument(err))
}

func (s *InMemoryTestSuite) TestToolData() {
	data, err := s.repo.GetToolData(s.ctx, "p1", "pin")
	s.Require().NoError(err)
	s.Equal(0, data.AmountLeft)

	s.Require().NoError(s.repo.SetToolData(s.ctx, "p1", "pin", &tools.ToolData{AmountLeft: 3}))
	data, err = s.repo.GetToolData(s.ctx, "p1", "pin")
	s.Require().NoError(err)
	s.Equal(3, data.AmountLeft)

	// Returned copies do not alias the store
	data.AmountLeft = 99
	again, _ := s.repo.GetToolData(s.ctx, "p1", "pin")
	s.Equal(3, again.AmountLeft)

	s.True(apperr.IsInvalidArgument(s.repo.SetToolData(s.ctx, "p1", "pin", nil)))
	s.True(apperr.IsInvalidArgument(s.repo.SetToolData(s.ctx, "p1", "pin", &tools.ToolData{AmountLeft: -1})))
}

func (s *InMemoryTestSuite) TestStorageCapacity() {
	pin := &tools.Tool{Name: "pin", BaseStorage: 5}

	capacity, err := s.repo.GetStorageCapacity(s.ctx, "p1", pin)
	s.Require().NoError(err)
	s.Equal(5, capacity)

	s.Require().NoError(s.repo.SetCapacityBonus(s.ctx, "p1", "pin", 2))
	capacity, err = s.repo.GetStorageCapacity(s.ctx, "p1", pin)
	s.Require().NoError(err)
	s.Equal(7, capacity)

	_, err = s.repo.GetStorageCapacity(s.ctx, "p1", nil)
	s.Error(err)
}

func (s *InMemoryTestSuite) TestCurrency() {
	kinds, err := s.repo.CurrencyKinds(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal([]tools.CurrencyKind{"shards"}, kinds)

	s.Require().NoError(s.repo.SetCurrency(s.ctx, "p1", "shards", 10))
	s.Require().NoError(s.repo.SetCurrency(s.ctx, "p1", "beads", 4))

	kinds, err = s.repo.CurrencyKinds(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal([]tools.CurrencyKind{"shards", "beads"}, kinds)

	s.Require().NoError(s.repo.TakeCurrency(s.ctx, "p1", 3, "shards", true))
	amount, err := s.repo.GetCurrencyAmount(s.ctx, "p1", "shards")
	s.Require().NoError(err)
	s.Equal(7.0, amount)

	// Clamped at zero
	s.Require().NoError(s.repo.TakeCurrency(s.ctx, "p1", 10, "beads", false))
	amount, _ = s.repo.GetCurrencyAmount(s.ctx, "p1", "beads")
	s.Equal(0.0, amount)

	s.Error(s.repo.TakeCurrency(s.ctx, "p1", -1, "beads", false))
	s.Error(s.repo.SetCurrency(s.ctx, "p1", "beads", -1))

	s.Equal([]toolstate.HUDMessage{
		{Kind: toolstate.HUDKindCurrency, Key: "shards", Amount: 3},
	}, s.repo.HUDMessages("p1"))
}

func (s *InMemoryTestSuite) TestReserves() {
	_, err := s.repo.GetReserveState(s.ctx, "p1", "flask")
	s.True(apperr.IsNotFound(err))
	s.True(apperr.IsNotFound(s.repo.TakeReserve(s.ctx, "p1", "flask", 1, false)))
	s.True(apperr.IsNotFound(s.repo.MarkInfiniteReserveShown(s.ctx, "p1", "flask")))

	s.Require().NoError(s.repo.SetReserveState(s.ctx, "p1", "flask", &tools.ReserveState{RefillsLeft: 2, RefillsMax: 3}))
	s.Require().NoError(s.repo.TakeReserve(s.ctx, "p1", "flask", 1, true))

	state, err := s.repo.GetReserveState(s.ctx, "p1", "flask")
	s.Require().NoError(err)
	s.Equal(1, state.RefillsLeft)

	s.Require().NoError(s.repo.MarkInfiniteReserveShown(s.ctx, "p1", "flask"))
	state, _ = s.repo.GetReserveState(s.ctx, "p1", "flask")
	s.True(state.InfiniteShown)

	s.Equal([]toolstate.HUDMessage{
		{Kind: toolstate.HUDKindReserve, Key: "flask", Amount: 1},
		{Kind: toolstate.HUDKindInfinite, Key: "flask"},
	}, s.repo.HUDMessages("p1"))
}

func (s *InMemoryTestSuite) TestReserveSpent() {
	s.True(apperr.IsNotFound(s.repo.SetReserveSpent(s.ctx, "p1", "flask", 0.5)))

	s.Require().NoError(s.repo.SetReserveState(s.ctx, "p1", "flask", &tools.ReserveState{RefillsLeft: 2, RefillsMax: 3}))
	s.Require().NoError(s.repo.SetReserveSpent(s.ctx, "p1", "flask", 0.75))
	s.Require().NoError(s.repo.TakeReserve(s.ctx, "p1", "flask", 1, false))

	state, err := s.repo.GetReserveState(s.ctx, "p1", "flask")
	s.Require().NoError(err)
	s.Equal(1, state.RefillsLeft)
	s.InDelta(0.75, state.Spent, 1e-9, "taking refills keeps the carried share")

	s.True(apperr.IsInvalidArgument(s.repo.SetReserveSpent(s.ctx, "p1", "flask", 1)))
	s.True(apperr.IsInvalidArgument(s.repo.SetReserveSpent(s.ctx, "p1", "flask", -0.5)))
}

func (s *InMemoryTestSuite) TestLoadProfile() {
	_, err := s.repo.LoadProfile(s.ctx, "p1")
	s.True(apperr.IsNotFound(err))

	s.Require().NoError(s.repo.Equip(s.ctx, "p1", "pin", "flask"))
	s.Require().NoError(s.repo.SetToolData(s.ctx, "p1", "pin", &tools.ToolData{AmountLeft: 2}))
	s.Require().NoError(s.repo.SetCurrency(s.ctx, "p1", "shards", 40))
	s.Require().NoError(s.repo.SetReserveState(s.ctx, "p1", "flask", &tools.ReserveState{RefillsLeft: 1, RefillsMax: 2}))

	profile, err := s.repo.LoadProfile(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal([]string{"pin", "flask"}, profile.Equipped)
	s.Equal(2, profile.Tools["pin"].AmountLeft)
	s.Equal(40, profile.Currencies["shards"])
	s.Equal(1, profile.Reserves["flask"].RefillsLeft)
}
