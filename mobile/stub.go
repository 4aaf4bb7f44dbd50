//go:build !mobile

// 非 mobile 构建下的占位文件
//
// ebitenmobile 绑定代码（含 data/ 的 go:embed）位于 mobile.go，
// 仅在 -tags mobile 时编译。
package mobile

// Dummy 空导出函数，保证普通构建下 ./... 能解析该包
func Dummy() {}
