package consts

import "tx-resolver-sol/internal/types"

// Base58 地址常量（可读性高，适合配置与日志使用）
const (
	// Programs
	SystemProgramStr        = "11111111111111111111111111111111"
	TokenProgramStr         = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	ComputeBudgetProgramStr = "ComputeBudget111111111111111111111111111111"

	// System Program 在部分 RPC 返回中会出现 33 个 '1' 的异常写法，
	// 规范化阶段统一转换为 32 个 '1' 的标准地址。
	SystemProgramLegacyStr = "111111111111111111111111111111111"

	// 报价币
	WSOLMintStr = "So11111111111111111111111111111111111111112"

	// DEX: Raydium AMM V4
	RaydiumAMMProgramStr = "675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8"

	// Launch: Pump.fun Bonding Curve
	PumpFunProgramStr = "6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P"
)

// Program / Mint 名称常量，作为 ParsedInstruction 的 program_name 输出
const (
	SystemProgramName        = "System Program"
	TokenProgramName         = "TokenProgram"
	ComputeBudgetProgramName = "ComputeBudget"
	RaydiumAMMProgramName    = "RaydiumAMM"
	PumpFunProgramName       = "PumpFun"
	UnknownProgramName       = "Unknown"
)

// SOL 原生精度
const SOLDecimals = 9

var (
	SystemProgram        = types.PubkeyFromBase58(SystemProgramStr)
	TokenProgram         = types.PubkeyFromBase58(TokenProgramStr)
	ComputeBudgetProgram = types.PubkeyFromBase58(ComputeBudgetProgramStr)
	RaydiumAMMProgram    = types.PubkeyFromBase58(RaydiumAMMProgramStr)
	PumpFunProgram       = types.PubkeyFromBase58(PumpFunProgramStr)

	WSOLMint = types.PubkeyFromBase58(WSOLMintStr)
)
