package codec

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"

	"tx-resolver-sol/internal/types"
)

// ErrShortData 表示在声明的布局读完之前数据已耗尽。
var ErrShortData = errors.New("instruction data too short")

// ErrInvalidUTF8 表示长度前缀字符串的内容不是合法 UTF-8。
var ErrInvalidUTF8 = errors.New("string field is not valid utf-8")

// Reader 是小端二进制布局的顺序读取器。
// 所有读取方法都携带字段名：首个失败的字段会被记录，
// 后续读取全部短路，调用方只需在末尾检查一次 Err()。
// 越界读取一律视为解码失败，绝不静默截断。
type Reader struct {
	buf []byte
	off int
	err error
}

func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// take 预取 n 字节，失败时记录首个出错字段
func (r *Reader) take(n int, field string) []byte {
	if r.err != nil {
		return nil
	}
	if r.off+n > len(r.buf) {
		r.err = fmt.Errorf("field %s: need %d bytes at offset %d, have %d: %w",
			field, n, r.off, len(r.buf)-r.off, ErrShortData)
		return nil
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b
}

func (r *Reader) U8(field string) uint8 {
	b := r.take(1, field)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *Reader) U32(field string) uint32 {
	b := r.take(4, field)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (r *Reader) U64(field string) uint64 {
	b := r.take(8, field)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (r *Reader) I64(field string) int64 {
	return int64(r.U64(field))
}

// Pubkey 读取 32 字节公钥并渲染为 base58 文本
func (r *Reader) Pubkey(field string) string {
	b := r.take(32, field)
	if b == nil {
		return ""
	}
	var p types.Pubkey
	copy(p[:], b)
	return p.String()
}

// String 读取 u32 小端长度前缀 + UTF-8 内容
func (r *Reader) String(field string) string {
	n := r.U32(field)
	b := r.take(int(n), field)
	if b == nil {
		return ""
	}
	if !utf8.Valid(b) {
		r.err = fmt.Errorf("field %s: %w", field, ErrInvalidUTF8)
		return ""
	}
	return string(b)
}

// OptionPubkey 读取 1 字节存在标记 + 可选的 32 字节公钥。
// 仅标记为 1 时视为存在，其余值一律按缺省处理，返回空串。
func (r *Reader) OptionPubkey(field string) string {
	tag := r.U8(field)
	if r.err != nil || tag != 1 {
		return ""
	}
	return r.Pubkey(field)
}

// Skip 跳过 n 字节（例如 4 字节判别符填充）
func (r *Reader) Skip(n int, field string) {
	r.take(n, field)
}

func (r *Reader) Err() error {
	return r.err
}

// AnchorDiscriminator 计算 Anchor 风格方法判别符：
// sha256("global:<lowercase_instruction_name>") 的前 8 字节，
// 按大端编码为 uint64 作为路由表 key（与十六进制常量写法可直接对照）。
func AnchorDiscriminator(name string) uint64 {
	sum := sha256.Sum256([]byte("global:" + name))
	return binary.BigEndian.Uint64(sum[:8])
}
