package raydiumamm

import (
	"tx-resolver-sol/internal/consts"
	"tx-resolver-sol/internal/logic/parser/common"
	"tx-resolver-sol/internal/types"
)

// Anchor 判别符：sha256("global:swap") 前 8 字节，按大端读作 uint64。
const DiscSwap uint64 = 0xf8c69e91e17587c8

// RegisterDecoders 注册 Raydium AMM 程序的指令解码器。
func RegisterDecoders(m map[types.Pubkey]*common.ProgramDecoder) {
	m[consts.RaydiumAMMProgram] = &common.ProgramDecoder{
		ProgramID:     consts.RaydiumAMMProgram,
		ProgramName:   consts.RaydiumAMMProgramName,
		Discriminator: common.Anchor8,
		Table: map[uint64]common.DecodeFunc{
			DiscSwap: decodeSwap,
		},
	}
}

func base(name string) common.InstructionBase {
	return common.InstructionBase{
		ProgramID:       consts.RaydiumAMMProgramStr,
		ProgramName:     consts.RaydiumAMMProgramName,
		InstructionName: name,
	}
}
