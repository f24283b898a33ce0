package system

import (
	sdksystem "github.com/blocto/solana-go-sdk/program/system"

	"tx-resolver-sol/internal/consts"
	"tx-resolver-sol/internal/logic/parser/common"
	"tx-resolver-sol/internal/types"
)

// decoder System Program 解码器：前 4 字节小端 u32 为判别符，变体 0–9。
var decoder = &common.ProgramDecoder{
	ProgramID:     consts.SystemProgram,
	ProgramName:   consts.SystemProgramName,
	Discriminator: common.FirstU32LE,
	Table: map[uint64]common.DecodeFunc{
		uint64(sdksystem.InstructionCreateAccount):         decodeCreateAccount,
		uint64(sdksystem.InstructionAssign):                decodeAssign,
		uint64(sdksystem.InstructionTransfer):              decodeTransfer,
		uint64(sdksystem.InstructionCreateAccountWithSeed): decodeCreateAccountWithSeed,
		uint64(sdksystem.InstructionAdvanceNonceAccount):   decodeAdvanceNonceAccount,
		uint64(sdksystem.InstructionWithdrawNonceAccount):  decodeWithdrawNonceAccount,
		uint64(sdksystem.InstructionAuthorizeNonceAccount): decodeAuthorizeNonceAccount,
		uint64(sdksystem.InstructionAllocate):              decodeAllocate,
		uint64(sdksystem.InstructionAllocateWithSeed):      decodeAllocateWithSeed,
		uint64(sdksystem.InstructionTransferWithSeed):      decodeTransferWithSeed,
	},
}

// RegisterDecoders 注册 System Program 的指令解码器
func RegisterDecoders(m map[types.Pubkey]*common.ProgramDecoder) {
	m[consts.SystemProgram] = decoder
}

func base(name string) common.InstructionBase {
	return common.InstructionBase{
		ProgramID:       consts.SystemProgramStr,
		ProgramName:     consts.SystemProgramName,
		InstructionName: name,
	}
}
