package consts

// GrpcAccountInclude 用于 gRPC 区块订阅过滤器。
// 包含全部已注册解码器的 Program 与 WSOL mint，
// 未命中任何地址的交易不会推送过来。
var GrpcAccountInclude = []string{
	SystemProgramStr,
	TokenProgramStr,
	ComputeBudgetProgramStr,
	RaydiumAMMProgramStr,
	PumpFunProgramStr,

	WSOLMintStr,
}
