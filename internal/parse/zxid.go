// internal/parse/zxid.go
package parse

// SplitZxid decomposes a 64-bit transaction id into the leader epoch
// (high four bytes) and the per-epoch counter (low four bytes). Both
// halves are big-endian two's-complement, matching how ZooKeeper
// packs them.
func SplitZxid(zxid uint64) (epoch, count int32) {
	return int32(zxid >> 32), int32(zxid & 0xffffffff)
}
