package sstv

import (
	"image/color"
	"math"
	"testing"
)

func TestMemoryUsageAccounting(t *testing.T) {
	m, err := NewModulator(ModeRobot36)
	if err != nil {
		t.Fatal(err)
	}

	if usage := m.MemoryUsage(); usage.TotalBytes != 0 {
		t.Fatalf("fresh modulator reports %d bytes", usage.TotalBytes)
	}

	if _, err := m.Modulate(uniformRGBA(64, 64, color.RGBA{B: 120, A: 255})); err != nil {
		t.Fatal(err)
	}

	usage := m.MemoryUsage()
	if want := 2 * len(m.Samples()); usage.AudioBytes != want {
		t.Errorf("AudioBytes = %d, want %d", usage.AudioBytes, want)
	}
	if want := len(m.ProcessedImage().Pix); usage.ImageBytes != want {
		t.Errorf("ImageBytes = %d, want %d", usage.ImageBytes, want)
	}
	if usage.ImageBytes != 320*240*4 {
		t.Errorf("ImageBytes = %d, want %d for a 320x240 RGBA image", usage.ImageBytes, 320*240*4)
	}
	if usage.MetadataBytes <= 0 || usage.MetadataBytes > 1024 {
		t.Errorf("MetadataBytes = %d, want a small positive struct size", usage.MetadataBytes)
	}
	if sum := usage.AudioBytes + usage.ImageBytes + usage.MetadataBytes; usage.TotalBytes != sum {
		t.Errorf("TotalBytes = %d, want %d", usage.TotalBytes, sum)
	}

	mb := usage.MB()
	if want := float64(usage.TotalBytes) / (1024 * 1024); math.Abs(mb.TotalMB-want) > 1e-12 {
		t.Errorf("TotalMB = %v, want %v", mb.TotalMB, want)
	}
	if mb.AudioMB <= 0 || mb.ImageMB <= 0 {
		t.Errorf("MB conversion lost components: %+v", mb)
	}
}

func TestClearAudioKeepsImage(t *testing.T) {
	m := modulatedRobot36(t)

	m.ClearAudio()

	if got := len(m.Samples()); got != 0 {
		t.Errorf("samples remain after ClearAudio: %d", got)
	}
	if m.ProcessedImage() == nil {
		t.Error("ClearAudio discarded the processed image")
	}
	if _, ok := m.Metadata(); !ok {
		t.Error("ClearAudio discarded the metadata")
	}
	if usage := m.MemoryUsage(); usage.AudioBytes != 0 || usage.ImageBytes == 0 {
		t.Errorf("usage after ClearAudio = %+v", usage)
	}
}

func TestClearImageKeepsAudio(t *testing.T) {
	m := modulatedRobot36(t)
	retained := len(m.Samples())

	m.ClearImage()

	if got := len(m.Samples()); got != retained {
		t.Errorf("samples = %d after ClearImage, want %d", got, retained)
	}
	if m.ProcessedImage() != nil {
		t.Error("processed image remains after ClearImage")
	}
	if _, ok := m.Metadata(); ok {
		t.Error("metadata remains after ClearImage")
	}
}

func TestResetClearsEverything(t *testing.T) {
	m := modulatedRobot36(t)

	m.Reset()

	if usage := m.MemoryUsage(); usage.TotalBytes != 0 {
		t.Errorf("usage after Reset = %+v, want zero", usage)
	}
	if m.ProcessedImage() != nil {
		t.Error("processed image remains after Reset")
	}

	// A reset modulator produces the same output as a fresh one.
	src := uniformRGBA(48, 48, color.RGBA{R: 77, G: 11, B: 200, A: 255})
	again, err := m.Modulate(src)
	if err != nil {
		t.Fatal(err)
	}
	fresh, err := NewModulator(ModeRobot36)
	if err != nil {
		t.Fatal(err)
	}
	reference, err := fresh.Modulate(src)
	if err != nil {
		t.Fatal(err)
	}
	if len(again) != len(reference) {
		t.Fatalf("reset run emitted %d samples, fresh run %d", len(again), len(reference))
	}
	for i := range again {
		if again[i] != reference[i] {
			t.Fatalf("reset and fresh runs differ at sample %d", i)
		}
	}
}

func TestShouldClearMemory(t *testing.T) {
	m, err := NewModulator(ModeRobot36)
	if err != nil {
		t.Fatal(err)
	}
	if m.ShouldClearMemory(0) {
		t.Error("fresh modulator wants clearing at threshold 0")
	}

	if _, err := m.Modulate(uniformRGBA(32, 32, color.RGBA{A: 255})); err != nil {
		t.Fatal(err)
	}
	if !m.ShouldClearMemory(0) {
		t.Error("retained run not flagged at threshold 0")
	}
	if m.ShouldClearMemory(1 << 20) {
		t.Error("retained run flagged at an enormous threshold")
	}
}

func TestAutoManageMemory(t *testing.T) {
	m := modulatedRobot36(t)

	if m.AutoManageMemory(1 << 20) {
		t.Error("AutoManageMemory cleared under an enormous threshold")
	}
	if usage := m.MemoryUsage(); usage.TotalBytes == 0 {
		t.Fatal("state lost without clearing")
	}

	if !m.AutoManageMemory(0) {
		t.Error("AutoManageMemory kept state over threshold 0")
	}
	if usage := m.MemoryUsage(); usage.TotalBytes != 0 {
		t.Errorf("usage after auto clear = %+v, want zero", usage)
	}
}
