package health

// Band 血条颜色档位
type Band int

const (
	// BandLow 低血量（比例 <= lowThreshold）
	BandLow Band = iota
	// BandMedium 中等血量（lowThreshold < 比例 <= mediumThreshold）
	BandMedium
	// BandFull 高血量
	BandFull
)

// String 返回档位名称（日志用）
func (b Band) String() string {
	switch b {
	case BandLow:
		return "LOW"
	case BandMedium:
		return "MEDIUM"
	case BandFull:
		return "FULL"
	default:
		return "UNKNOWN"
	}
}

// ColorBand 根据生命值比例选择颜色档位
//
// 参数：
//   - ratio: 生命值比例 [0, 1]
//   - lowThreshold: 低血量阈值（含）
//   - mediumThreshold: 中等血量阈值（含）
func ColorBand(ratio, lowThreshold, mediumThreshold float64) Band {
	if ratio <= lowThreshold {
		return BandLow
	}
	if ratio <= mediumThreshold {
		return BandMedium
	}
	return BandFull
}
