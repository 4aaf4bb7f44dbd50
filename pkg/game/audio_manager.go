package game

import (
	"encoding/binary"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate 音频采样率
const SampleRate = 48000

// 音效资源ID
const (
	SoundDeath  = "SOUND_DEATH"
	SoundDamage = "SOUND_DAMAGE"
)

// AudioManager 音频管理器
// 职责：
//   - 管理合成音效的播放器缓存
//   - 从 SettingsManager 读取音量和开关
//
// audio.Context 为 nil 时所有播放调用静默返回 false（静音模式，测试和终端前端使用）
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（资源ID -> 播放器）
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，可为 nil（静音模式）
//   - sm: SettingsManager 实例（可为 nil，使用默认音量）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	am := &AudioManager{
		context:         ctx,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
	}

	am.RegisterSound(SoundDeath, GenerateTone(SampleRate, 220, 0.6, 0.5))
	am.RegisterSound(SoundDamage, GenerateTone(SampleRate, 440, 0.08, 0.3))
	return am
}

// RegisterSound 注册 16bit 立体声 PCM 音效
func (am *AudioManager) RegisterSound(soundID string, pcm []byte) {
	if am.context == nil {
		return
	}
	am.soundPlayers[soundID] = am.context.NewPlayerFromBytes(pcm)
}

// PlaySound 播放音效（单次）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player, ok := am.soundPlayers[soundID]
	if !ok {
		if am.context != nil {
			log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		}
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager == nil {
		return DefaultSettings().SoundVolume
	}
	return am.settingsManager.GetSettings().SoundVolume
}

// GenerateTone 生成带线性淡出的正弦波
//
// 输出格式与 audio.Context 一致：16bit 有符号小端、立体声
//
// 参数：
//   - sampleRate: 采样率
//   - freq: 频率（Hz）
//   - seconds: 时长（秒）
//   - volume: 振幅 0.0 ~ 1.0
func GenerateTone(sampleRate int, freq, seconds, volume float64) []byte {
	samples := int(float64(sampleRate) * seconds)
	if samples <= 0 {
		return nil
	}
	volume = math.Max(0, math.Min(1, volume))

	buf := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		fade := 1 - float64(i)/float64(samples)
		v := math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)) * volume * fade
		s := int16(v * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}
