//go:build !android

package utils

// EnsureStorageDir 非 Android 平台无需处理
// gdata 会自动创建存储目录
func EnsureStorageDir() error {
	return nil
}
