package sstv

import "unsafe"

// MemoryUsage reports the bytes retained by a Modulator, split by
// component. Audio counts two bytes per sample; the image counts its
// actual RGBA backing.
type MemoryUsage struct {
	AudioBytes    int
	ImageBytes    int
	MetadataBytes int
	TotalBytes    int
}

// MemoryUsageMB is MemoryUsage converted to megabytes.
type MemoryUsageMB struct {
	AudioMB    float64
	ImageMB    float64
	MetadataMB float64
	TotalMB    float64
}

// MB converts the usage to megabytes.
func (u MemoryUsage) MB() MemoryUsageMB {
	return MemoryUsageMB{
		AudioMB:    float64(u.AudioBytes) / bytesPerMB,
		ImageMB:    float64(u.ImageBytes) / bytesPerMB,
		MetadataMB: float64(u.MetadataBytes) / bytesPerMB,
		TotalMB:    float64(u.TotalBytes) / bytesPerMB,
	}
}

func (m *Modulator) usageLocked() MemoryUsage {
	usage := MemoryUsage{AudioBytes: m.gen.Len() * 2}
	if m.processed != nil {
		usage.ImageBytes = len(m.processed.Pix)
	}
	if m.meta != nil {
		usage.MetadataBytes = int(unsafe.Sizeof(Metadata{}))
	}
	usage.TotalBytes = usage.AudioBytes + usage.ImageBytes + usage.MetadataBytes
	return usage
}

// MemoryUsage reports the bytes currently retained by the Modulator.
func (m *Modulator) MemoryUsage() MemoryUsage {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.usageLocked()
}

// Reset releases the retained samples, image and metadata and returns
// the synthesizer to its initial state.
func (m *Modulator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearAudioLocked()
	m.clearImageLocked()
}

// ClearAudio releases the retained samples and returns the synthesizer
// to its initial state, keeping the image and metadata.
func (m *Modulator) ClearAudio() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearAudioLocked()
}

// ClearImage releases the retained image and metadata, keeping the
// samples.
func (m *Modulator) ClearImage() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearImageLocked()
}

func (m *Modulator) clearAudioLocked() {
	m.gen.Reset()
}

func (m *Modulator) clearImageLocked() {
	m.processed = nil
	m.meta = nil
}

// ShouldClearMemory reports whether retained memory exceeds
// thresholdMB megabytes.
func (m *Modulator) ShouldClearMemory(thresholdMB int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.usageLocked().TotalBytes > thresholdMB*bytesPerMB
}

// AutoManageMemory resets the Modulator when retained memory exceeds
// thresholdMB megabytes. It reports whether a reset happened.
func (m *Modulator) AutoManageMemory(thresholdMB int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.usageLocked().TotalBytes <= thresholdMB*bytesPerMB {
		return false
	}
	m.clearAudioLocked()
	m.clearImageLocked()
	return true
}
