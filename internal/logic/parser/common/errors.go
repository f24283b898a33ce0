package common

import "fmt"

// DecodeError 表示单条指令的致命解码失败（载荷过短、非法 UTF-8、账户索引越界等）。
// 携带程序地址、指令位置与底层字段错误，供调用方定位问题。
// 解码失败会中止整笔交易的处理，但绝不影响其他交易。
type DecodeError struct {
	ProgramID        string
	ProgramName      string
	InstructionIndex int
	Err              error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s (%s) instruction #%d: %v",
		e.ProgramName, e.ProgramID, e.InstructionIndex, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
