package audio

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
)

// WriteWAV writes raw little-endian PCM samples to path as a canonical
// RIFF/WAVE file. sampleWidth is in bytes per sample (2 for PCM16).
func WriteWAV(path string, pcm []byte, channels, sampleRate, sampleWidth int) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	blockAlign := channels * sampleWidth
	byteRate := sampleRate * blockAlign

	var b bytes.Buffer
	b.WriteString("RIFF")
	binary.Write(&b, binary.LittleEndian, uint32(36+len(pcm)))
	b.WriteString("WAVE")

	b.WriteString("fmt ")
	binary.Write(&b, binary.LittleEndian, uint32(16))
	binary.Write(&b, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&b, binary.LittleEndian, uint16(channels))
	binary.Write(&b, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&b, binary.LittleEndian, uint32(byteRate))
	binary.Write(&b, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&b, binary.LittleEndian, uint16(sampleWidth*8))

	b.WriteString("data")
	binary.Write(&b, binary.LittleEndian, uint32(len(pcm)))
	b.Write(pcm)

	return os.WriteFile(path, b.Bytes(), 0644)
}
