package random

import (
	"crypto/rand"
	"math/big"
)

// inviteCodeCharset 邀请码字符集：大小写字母 + 数字
const inviteCodeCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// InviteCode 生成指定长度的群组邀请码
// 采用无放回抽样：同一个邀请码内不会出现重复字符
// 唯一性由调用方对照已有群组校验，碰撞时重新抽取
func InviteCode(length int) string {
	if length <= 0 || length > len(inviteCodeCharset) {
		length = 5
	}

	// 打乱字符集前缀（Fisher-Yates 前 length 步），取前 length 个字符
	pool := []byte(inviteCodeCharset)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(pool)-i)))
		if err != nil {
			// crypto/rand 几乎不会失败，兜底退化为顺序取字符
			continue
		}
		j := i + int(n.Int64())
		pool[i], pool[j] = pool[j], pool[i]
	}
	return string(pool[:length])
}

// GetRandomInt 生成指定位数的安全随机数字
func GetRandomInt(length int) int {
	min := int64(1)
	for i := 1; i < length; i++ {
		min *= 10
	}
	max := min * 10

	// 生成 [min, max) 范围的随机数
	rangeSize := big.NewInt(max - min)
	n, err := rand.Int(rand.Reader, rangeSize)
	if err != nil {
		return int(min) // fallback
	}
	return int(n.Int64() + min)
}
