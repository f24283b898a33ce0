package pumpfun

import (
	"fmt"

	"tx-resolver-sol/internal/logic/normalizer"
	"tx-resolver-sol/internal/logic/parser/common"
)

// Swap 表示一次 bonding curve 买入或卖出。
// 外层指令只携带意图参数，成交金额一律取自 inner 指令上报的结算事件。
type Swap struct {
	common.InstructionBase
	Mint                 string `json:"mint"`
	SolAmount            uint64 `json:"sol_amount"`
	TokenAmount          uint64 `json:"token_amount"`
	IsBuy                bool   `json:"is_buy"`
	User                 string `json:"user"`
	Timestamp            int64  `json:"timestamp"`
	VirtualSolReserves   uint64 `json:"virtual_sol_reserves"`
	VirtualTokenReserves uint64 `json:"virtual_token_reserves"`
}

func decodeSwap(ctx *common.Context, ix *normalizer.Instruction, index int, data []byte) (common.ParsedInstruction, error) {
	events, err := common.CorrelateSwapEvents(ctx, index)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		// swap 指令必然伴随恰好一个结算事件，取不到金额只能报错
		return nil, fmt.Errorf("field swap event: no correlated event for instruction %d", index)
	}
	ev := events[0]

	name := "Sell"
	if ev.IsBuy {
		name = "Buy"
	}
	return Swap{
		InstructionBase:      base(name),
		Mint:                 ev.Mint.String(),
		SolAmount:            ev.SolAmount,
		TokenAmount:          ev.TokenAmount,
		IsBuy:                ev.IsBuy,
		User:                 ev.User.String(),
		Timestamp:            ev.Timestamp,
		VirtualSolReserves:   ev.VirtualSolReserves,
		VirtualTokenReserves: ev.VirtualTokenReserves,
	}, nil
}
