package common

import (
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/near/borsh-go"

	"tx-resolver-sol/internal/logic/normalizer"
	"tx-resolver-sol/internal/types"
)

// swapEventHeaderLen 为事件载荷的保留头部长度：
// 8 字节 Anchor 事件 CPI 判别符 + 8 字节事件类型判别符。
const swapEventHeaderLen = 16

// SwapEvent 是 swap 类指令执行期间通过 inner 指令上报的自描述结算事件。
// 外层指令不携带成交金额，金额只能从这里恢复。
type SwapEvent struct {
	Mint                 types.Pubkey
	SolAmount            uint64
	TokenAmount          uint64
	IsBuy                bool
	User                 types.Pubkey
	Timestamp            int64
	VirtualSolReserves   uint64
	VirtualTokenReserves uint64
}

// CorrelateSwapEvents 收集主指令 topIndex 执行期间同程序发出的结算事件：
//  1. 取归属该主指令的 inner 指令组；未标注归属的组视为属于所有主指令（保留旧数据源的兜底行为）
//  2. 过滤出 programID 与主指令一致的 inner 指令
//  3. base58 解码后丢弃短于 16 字节（保留头部）的载荷
//  4. 余下字节按固定事件布局反序列化
//
// 按出现顺序返回；常规交易每条 swap 指令恰好产生一个事件，调用方取第一个。
func CorrelateSwapEvents(ctx *Context, topIndex int) ([]SwapEvent, error) {
	instructions := ctx.Tx.Message.Instructions
	if topIndex < 0 || topIndex >= len(instructions) {
		return nil, fmt.Errorf("instruction index %d out of range", topIndex)
	}
	topProgramID, err := ctx.Account(instructions[topIndex].ProgramIDIndex)
	if err != nil {
		return nil, fmt.Errorf("resolve top-level program id: %w", err)
	}

	var inners []normalizer.Instruction
	for _, group := range ctx.Tx.Meta.InnerInstructions {
		if group.Index == normalizer.GroupIndexUnset || group.Index == topIndex {
			inners = append(inners, group.Instructions...)
		}
	}

	var events []SwapEvent
	for _, in := range inners {
		programID, err := ctx.Account(in.ProgramIDIndex)
		if err != nil {
			return nil, fmt.Errorf("resolve inner program id: %w", err)
		}
		if programID != topProgramID {
			continue
		}

		// 空数据视作零字节，与短载荷一样丢弃
		if in.Data == "" {
			continue
		}
		raw, err := base58.Decode(in.Data)
		if err != nil {
			return nil, fmt.Errorf("field inner data: invalid base58: %w", err)
		}
		if len(raw) < swapEventHeaderLen {
			continue
		}

		var ev SwapEvent
		if err := borsh.Deserialize(&ev, raw[swapEventHeaderLen:]); err != nil {
			return nil, fmt.Errorf("field swap event: %w", err)
		}
		events = append(events, ev)
	}
	return events, nil
}
