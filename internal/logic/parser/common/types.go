package common

import (
	"encoding/binary"
	"fmt"

	"github.com/mr-tron/base58"

	"tx-resolver-sol/internal/logic/normalizer"
	"tx-resolver-sol/internal/types"
)

// InstructionBase 是所有 ParsedInstruction 变体共有的标识字段。
type InstructionBase struct {
	ProgramID       string `json:"program_id"`
	ProgramName     string `json:"program_name"`
	InstructionName string `json:"instruction_name"`
}

func (b InstructionBase) Base() InstructionBase { return b }

// ParsedInstruction 是指令解码结果的封闭联合类型。
// 每个程序包定义自己的变体结构体并内嵌 InstructionBase；
// 下游通过类型断言做穷尽分支，不使用自由格式 map。
type ParsedInstruction interface {
	Base() InstructionBase
}

// DecodeFunc 将一条指令的解码字节转换为一个 ParsedInstruction 变体。
//
// 参数：
//   - ctx:   解析上下文（交易 + 统一账户列表）
//   - ix:    原始指令
//   - index: 指令在交易中的位置（主指令序号）
//   - data:  base58 解码后的指令数据
type DecodeFunc func(ctx *Context, ix *normalizer.Instruction, index int, data []byte) (ParsedInstruction, error)

// ProgramDecoder 描述一个受支持程序的解码器：
// 固定的程序地址、判别符提取规则、判别符 → 解码函数的路由表。
// 构造一次后只读，可被并发调用方安全共享。
type ProgramDecoder struct {
	ProgramID     types.Pubkey
	ProgramName   string
	Discriminator func(data []byte) (uint64, error)
	Table         map[uint64]DecodeFunc
}

// Route 解码指令数据并按判别符路由到具体解码函数。
// 未注册的判别符统一降级为非致命的 Unknown 记录（携带原始判别符值），
// 便于调用方发现覆盖缺口而不中断整笔交易。
func (d *ProgramDecoder) Route(ctx *Context, ix *normalizer.Instruction, index int) (ParsedInstruction, error) {
	// 空数据视作零字节载荷，走未识别变体降级路径
	var data []byte
	if ix.Data != "" {
		var err error
		data, err = base58.Decode(ix.Data)
		if err != nil {
			return nil, &DecodeError{
				ProgramID:        d.ProgramID.String(),
				ProgramName:      d.ProgramName,
				InstructionIndex: index,
				Err:              fmt.Errorf("field data: invalid base58: %w", err),
			}
		}
	}

	key, derr := d.Discriminator(data)
	if derr != nil {
		// 数据太短连判别符都无法提取，同样按未识别变体处理
		return d.UnknownVariant(index, 0), nil
	}

	fn, ok := d.Table[key]
	if !ok {
		return d.UnknownVariant(index, key), nil
	}

	parsed, err := fn(ctx, ix, index, data)
	if err != nil {
		return nil, &DecodeError{
			ProgramID:        d.ProgramID.String(),
			ProgramName:      d.ProgramName,
			InstructionIndex: index,
			Err:              err,
		}
	}
	return parsed, nil
}

// UnknownVariant 构造本程序内未识别判别符的占位记录
func (d *ProgramDecoder) UnknownVariant(index int, discriminator uint64) Unknown {
	return Unknown{
		InstructionBase: InstructionBase{
			ProgramID:       d.ProgramID.String(),
			ProgramName:     d.ProgramName,
			InstructionName: "Unknown",
		},
		InstructionIndex: index,
		Discriminator:    discriminator,
	}
}

// Unknown 表示无法解码的指令：未注册的程序，或已知程序内未识别的判别符。
// 两种情况都不致命，整笔交易的处理照常继续。
type Unknown struct {
	InstructionBase
	InstructionIndex int    `json:"instruction_index"`
	Discriminator    uint64 `json:"discriminator,omitempty"`
}

// 判别符提取规则。必须是指令数据字节的确定性纯函数。

// FirstByte 取首字节作为判别符（Token Program、Compute Budget 风格）
func FirstByte(data []byte) (uint64, error) {
	if len(data) < 1 {
		return 0, fmt.Errorf("missing discriminator byte")
	}
	return uint64(data[0]), nil
}

// FirstU32LE 取前 4 字节小端 u32 作为判别符（System Program 风格）
func FirstU32LE(data []byte) (uint64, error) {
	if len(data) < 4 {
		return 0, fmt.Errorf("discriminator needs 4 bytes, have %d", len(data))
	}
	return uint64(binary.LittleEndian.Uint32(data[:4])), nil
}

// Anchor8 取前 8 字节作为判别符，按大端编码为 uint64 路由 key
// （Anchor 程序风格，与 sha256("global:<name>") 前 8 字节对照）
func Anchor8(data []byte) (uint64, error) {
	if len(data) < 8 {
		return 0, fmt.Errorf("discriminator needs 8 bytes, have %d", len(data))
	}
	return binary.BigEndian.Uint64(data[:8]), nil
}
