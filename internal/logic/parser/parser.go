package parser

import (
	"sync"

	"tx-resolver-sol/internal/consts"
	"tx-resolver-sol/internal/logic/normalizer"
	"tx-resolver-sol/internal/logic/parser/common"
	"tx-resolver-sol/internal/logic/parser/computebudget"
	"tx-resolver-sol/internal/logic/parser/pumpfun"
	"tx-resolver-sol/internal/logic/parser/raydiumamm"
	"tx-resolver-sol/internal/logic/parser/spltoken"
	"tx-resolver-sol/internal/logic/parser/system"
	"tx-resolver-sol/internal/types"
)

// decoders 是 Solana ProgramID → 对应指令解码器的路由表。
// 所有程序模块通过 RegisterDecoders 注册进该表；Init 之后只读，可并发共享。
var decoders = map[types.Pubkey]*common.ProgramDecoder{}

var initOnce sync.Once

// Init 注册全部受支持程序的解码器。重复调用无副作用。
func Init() {
	initOnce.Do(func() {
		system.RegisterDecoders(decoders)
		computebudget.RegisterDecoders(decoders)
		spltoken.RegisterDecoders(decoders)
		raydiumamm.RegisterDecoders(decoders)
		pumpfun.RegisterDecoders(decoders)
	})
}

// ParsedTransaction 是一笔交易的指令级解码结果。
// Instructions 与原始主指令一一对应且顺序一致，顺序是下游语义归因的依据。
type ParsedTransaction struct {
	Signatures   []string
	Instructions []common.ParsedInstruction
}

// Parse 按文档顺序解码交易内全部主指令。
// 未注册程序降级为 Unknown 记录继续处理；已注册程序的解码错误
// 中止整笔交易并携带程序地址、指令序号与出错字段上抛。
func Parse(tx *normalizer.Transaction) (*ParsedTransaction, error) {
	ctx := common.NewContext(tx)

	parsed := make([]common.ParsedInstruction, 0, len(tx.Message.Instructions))
	for i := range tx.Message.Instructions {
		ix := &tx.Message.Instructions[i]

		programID, err := ctx.Account(ix.ProgramIDIndex)
		if err != nil {
			return nil, &common.DecodeError{
				ProgramName:      consts.UnknownProgramName,
				InstructionIndex: i,
				Err:              err,
			}
		}

		decoder, ok := decoders[ctx.Accounts[ix.ProgramIDIndex]]
		if !ok {
			parsed = append(parsed, unknownInstruction(programID, i))
			continue
		}

		action, err := decoder.Route(ctx, ix, i)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, action)
	}

	return &ParsedTransaction{
		Signatures:   tx.Signatures,
		Instructions: parsed,
	}, nil
}

// unknownInstruction 构造未注册程序的占位记录，永不失败。
func unknownInstruction(programID string, index int) common.Unknown {
	return common.Unknown{
		InstructionBase: common.InstructionBase{
			ProgramID:       programID,
			ProgramName:     consts.UnknownProgramName,
			InstructionName: consts.UnknownProgramName,
		},
		InstructionIndex: index,
	}
}
