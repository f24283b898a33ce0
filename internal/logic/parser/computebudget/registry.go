package computebudget

import (
	"tx-resolver-sol/internal/codec"
	"tx-resolver-sol/internal/consts"
	"tx-resolver-sol/internal/logic/normalizer"
	"tx-resolver-sol/internal/logic/parser/common"
	"tx-resolver-sol/internal/types"
)

// Compute Budget 指令判别符（首字节）
const (
	discSetComputeUnitLimit = 2
	discSetComputeUnitPrice = 3
)

// SetComputeUnitLimit 设置本交易的计算单元上限。
type SetComputeUnitLimit struct {
	common.InstructionBase
	ComputeUnitLimit uint32 `json:"compute_unit_limit"`
}

// SetComputeUnitPrice 设置每计算单元的出价（micro-lamports）。
type SetComputeUnitPrice struct {
	common.InstructionBase
	MicroLamports uint64 `json:"micro_lamports"`
}

var decoder = &common.ProgramDecoder{
	ProgramID:     consts.ComputeBudgetProgram,
	ProgramName:   consts.ComputeBudgetProgramName,
	Discriminator: common.FirstByte,
	Table: map[uint64]common.DecodeFunc{
		discSetComputeUnitLimit: decodeSetComputeUnitLimit,
		discSetComputeUnitPrice: decodeSetComputeUnitPrice,
	},
}

// RegisterDecoders 注册 Compute Budget 程序的指令解码器
func RegisterDecoders(m map[types.Pubkey]*common.ProgramDecoder) {
	m[consts.ComputeBudgetProgram] = decoder
}

func base(name string) common.InstructionBase {
	return common.InstructionBase{
		ProgramID:       consts.ComputeBudgetProgramStr,
		ProgramName:     consts.ComputeBudgetProgramName,
		InstructionName: name,
	}
}

func decodeSetComputeUnitLimit(ctx *common.Context, ix *normalizer.Instruction, index int, data []byte) (common.ParsedInstruction, error) {
	r := codec.NewReader(data)
	r.Skip(1, "discriminator")
	limit := r.U32("compute_unit_limit")
	if err := r.Err(); err != nil {
		return nil, err
	}
	return SetComputeUnitLimit{
		InstructionBase:  base("SetComputeUnitLimit"),
		ComputeUnitLimit: limit,
	}, nil
}

func decodeSetComputeUnitPrice(ctx *common.Context, ix *normalizer.Instruction, index int, data []byte) (common.ParsedInstruction, error) {
	r := codec.NewReader(data)
	r.Skip(1, "discriminator")
	price := r.U64("micro_lamports")
	if err := r.Err(); err != nil {
		return nil, err
	}
	return SetComputeUnitPrice{
		InstructionBase: base("SetComputeUnitPrice"),
		MicroLamports:   price,
	}, nil
}
