package pumpfun

import (
	"tx-resolver-sol/internal/consts"
	"tx-resolver-sol/internal/logic/parser/common"
	"tx-resolver-sol/internal/types"
)

// Anchor 判别符：sha256("global:<name>") 前 8 字节，按大端读作 uint64。
const (
	DiscBuy    uint64 = 0x66063d1201daebea
	DiscSell   uint64 = 0x33e685a4017f83ad
	DiscCreate uint64 = 0x181ec828051c0777
)

// RegisterDecoders 注册 PumpFun bonding curve 程序的指令解码器。
func RegisterDecoders(m map[types.Pubkey]*common.ProgramDecoder) {
	m[consts.PumpFunProgram] = &common.ProgramDecoder{
		ProgramID:     consts.PumpFunProgram,
		ProgramName:   consts.PumpFunProgramName,
		Discriminator: common.Anchor8,
		Table: map[uint64]common.DecodeFunc{
			DiscBuy:    decodeSwap,
			DiscSell:   decodeSwap,
			DiscCreate: decodeCreate,
		},
	}
}

func base(name string) common.InstructionBase {
	return common.InstructionBase{
		ProgramID:       consts.PumpFunProgramStr,
		ProgramName:     consts.PumpFunProgramName,
		InstructionName: name,
	}
}
