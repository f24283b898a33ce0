package common

import (
	"fmt"

	"tx-resolver-sol/internal/logic/normalizer"
	"tx-resolver-sol/internal/types"
)

// Context 是传入每个解码函数的解析上下文：
// 当前交易的完整结构 + 预构建的统一账户列表。
// 统一账户列表为 静态账户 ++ loaded writable ++ loaded readonly，
// 交易内所有账户索引都指向该拼接结果。
type Context struct {
	Tx       *normalizer.Transaction
	Accounts []types.Pubkey
}

func NewContext(tx *normalizer.Transaction) *Context {
	return &Context{
		Tx:       tx,
		Accounts: tx.AllAccounts(),
	}
}

// Account 将统一账户列表索引解析为 base58 地址。
// 索引越界说明上游指令数据违反约定，按解码失败上报，绝不静默取默认值。
func (c *Context) Account(index int) (string, error) {
	if index < 0 || index >= len(c.Accounts) {
		return "", fmt.Errorf("account index %d out of range (unified list has %d entries)", index, len(c.Accounts))
	}
	return c.Accounts[index].String(), nil
}

// AccountAt 解析指令账户表第 pos 位对应的地址。
// pos 超出指令账户表视为缺失，属于致命错误（必填账户）。
func (c *Context) AccountAt(ix *normalizer.Instruction, pos int) (string, error) {
	if pos < 0 || pos >= len(ix.Accounts) {
		return "", fmt.Errorf("account position %d missing (instruction carries %d accounts)", pos, len(ix.Accounts))
	}
	addr, err := c.Account(ix.Accounts[pos])
	if err != nil {
		return "", fmt.Errorf("account position %d: %w", pos, err)
	}
	return addr, nil
}

// OptionalAccountAt 与 AccountAt 相同，但容忍账户表短于预期：
// pos 缺失时返回空串表示缺省（用于 create 类指令的固定位账户）。
// 索引本身越界依旧是错误。
func (c *Context) OptionalAccountAt(ix *normalizer.Instruction, pos int) (string, error) {
	if pos < 0 || pos >= len(ix.Accounts) {
		return "", nil
	}
	addr, err := c.Account(ix.Accounts[pos])
	if err != nil {
		return "", fmt.Errorf("account position %d: %w", pos, err)
	}
	return addr, nil
}
