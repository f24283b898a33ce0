package spltoken

import (
	sdktoken "github.com/blocto/solana-go-sdk/program/token"

	"tx-resolver-sol/internal/consts"
	"tx-resolver-sol/internal/logic/parser/common"
	"tx-resolver-sol/internal/types"
)

// decoder Token Program 解码器：首字节为判别符，变体 0–15。
// 其余判别符由路由层统一降级为非致命 Unknown 记录。
var decoder = &common.ProgramDecoder{
	ProgramID:     consts.TokenProgram,
	ProgramName:   consts.TokenProgramName,
	Discriminator: common.FirstByte,
	Table: map[uint64]common.DecodeFunc{
		uint64(sdktoken.InstructionInitializeMint):     decodeInitializeMint,
		uint64(sdktoken.InstructionInitializeAccount):  decodeInitializeAccount,
		uint64(sdktoken.InstructionInitializeMultisig): decodeInitializeMultisig,
		uint64(sdktoken.InstructionTransfer):           decodeTransfer,
		uint64(sdktoken.InstructionApprove):            decodeApprove,
		uint64(sdktoken.InstructionRevoke):             decodeRevoke,
		uint64(sdktoken.InstructionSetAuthority):       decodeSetAuthority,
		uint64(sdktoken.InstructionMintTo):             decodeMintTo,
		uint64(sdktoken.InstructionBurn):               decodeBurn,
		uint64(sdktoken.InstructionCloseAccount):       decodeCloseAccount,
		uint64(sdktoken.InstructionFreezeAccount):      decodeFreezeAccount,
		uint64(sdktoken.InstructionThawAccount):        decodeThawAccount,
		uint64(sdktoken.InstructionTransferChecked):    decodeTransferChecked,
		uint64(sdktoken.InstructionApproveChecked):     decodeApproveChecked,
		uint64(sdktoken.InstructionMintToChecked):      decodeMintToChecked,
		uint64(sdktoken.InstructionBurnChecked):        decodeBurnChecked,
	},
}

// RegisterDecoders 注册 Token Program 的指令解码器
func RegisterDecoders(m map[types.Pubkey]*common.ProgramDecoder) {
	m[consts.TokenProgram] = decoder
}

func base(name string) common.InstructionBase {
	return common.InstructionBase{
		ProgramID:       consts.TokenProgramStr,
		ProgramName:     consts.TokenProgramName,
		InstructionName: name,
	}
}
