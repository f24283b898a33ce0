package raydiumamm

import (
	"fmt"

	"tx-resolver-sol/internal/codec"
	"tx-resolver-sol/internal/consts"
	"tx-resolver-sol/internal/logic/normalizer"
	"tx-resolver-sol/internal/logic/parser/common"
)

// Swap 表示一次池内兑换。
// 外层指令只携带 amount_in / minimum_amount_out 两个意图参数；
// 实际成交的两腿金额与方向取自 inner 指令上报的结算事件，
// 精度从交易的 token 余额快照中查得。
type Swap struct {
	common.InstructionBase
	Who               string `json:"who"`
	FromToken         string `json:"from_token"`
	FromTokenAmount   uint64 `json:"from_token_amount"`
	FromTokenDecimals uint8  `json:"from_token_decimals"`
	ToToken           string `json:"to_token"`
	ToTokenAmount     uint64 `json:"to_token_amount"`
	ToTokenDecimals   uint8  `json:"to_token_decimals"`
	AmountIn          uint64 `json:"amount_in"`
	MinimumAmountOut  uint64 `json:"minimum_amount_out"`
}

func decodeSwap(ctx *common.Context, ix *normalizer.Instruction, index int, data []byte) (common.ParsedInstruction, error) {
	r := codec.NewReader(data)
	r.Skip(8, "discriminator")
	amountIn := r.U64("amount_in")
	minimumAmountOut := r.U64("minimum_amount_out")
	if err := r.Err(); err != nil {
		return nil, err
	}

	events, err := common.CorrelateSwapEvents(ctx, index)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("field swap event: no correlated event for instruction %d", index)
	}
	ev := events[0]

	mint := ev.Mint.String()
	mintDecimals, err := common.TokenDecimalsByMint(ctx, mint)
	if err != nil {
		return nil, err
	}

	out := Swap{
		InstructionBase:  base("Swap"),
		Who:              ev.User.String(),
		AmountIn:         amountIn,
		MinimumAmountOut: minimumAmountOut,
	}
	if ev.IsBuy {
		out.FromToken = consts.WSOLMintStr
		out.FromTokenAmount = ev.SolAmount
		out.FromTokenDecimals = consts.SOLDecimals
		out.ToToken = mint
		out.ToTokenAmount = ev.TokenAmount
		out.ToTokenDecimals = mintDecimals
	} else {
		out.FromToken = mint
		out.FromTokenAmount = ev.TokenAmount
		out.FromTokenDecimals = mintDecimals
		out.ToToken = consts.WSOLMintStr
		out.ToTokenAmount = ev.SolAmount
		out.ToTokenDecimals = consts.SOLDecimals
	}
	return out, nil
}
