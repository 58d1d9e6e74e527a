package main

import "testing"

func patternImage(n int) []byte {
	img := make([]byte, n)
	for i := range img {
		img[i] = byte(i)
	}
	return img
}

func TestCFReadSequence(t *testing.T) {
	img := patternImage(1024 * 1024)
	cf := NewCFController(img)
	cf.WriteSectorCount(1)
	cf.WriteLBA(0, 2)
	cf.WriteLBA(1, 0)
	cf.WriteLBA(2, 0)
	cf.WriteLBA(3, 0)
	cf.WriteCommand(cfCmdReadSectors)

	want := img[2*sectorBytes : 2*sectorBytes+sectorBytes]
	for i, w := range want {
		got := cf.ReadData()
		if got != w {
			t.Fatalf("byte %d: got %#x, want %#x", i, got, w)
		}
	}
	if cf.ReadStatus() != 0 {
		t.Errorf("status=%#x after full transfer, want 0", cf.ReadStatus())
	}
}

func TestCFEndOfImageSetsErr(t *testing.T) {
	img := patternImage(512) // exactly one sector
	cf := NewCFController(img)
	cf.WriteSectorCount(2) // ask for two sectors from a one-sector image
	cf.WriteCommand(cfCmdReadSectors)
	for i := 0; i < 512; i++ {
		cf.ReadData()
	}
	// cursor is now at lba=1,byteCount=0 == 512 == sizeBytes: past end.
	if got := cf.ReadStatus(); got&cfStatusERR == 0 {
		t.Errorf("status=%#x, want ERR bit set", got)
	}
}

func TestCFZeroSectorCountMeans256(t *testing.T) {
	img := patternImage(256 * sectorBytes)
	cf := NewCFController(img)
	cf.WriteSectorCount(0)
	cf.WriteCommand(cfCmdReadSectors)
	if cf.sectorCount != 256 {
		t.Fatalf("sectorCount=%d after 0-sector command, want 256", cf.sectorCount)
	}
}

func TestCFLBA3ReadBack(t *testing.T) {
	img := patternImage(512)
	cf := NewCFController(img)
	cf.WriteLBA(3, 0x0F)
	if got := cf.ReadLBA(3); got != 0xEF {
		t.Errorf("ReadLBA(3)=%#x, want 0xEF", got)
	}
}

func TestCFWriteCommandIgnoresUnknown(t *testing.T) {
	img := patternImage(512)
	cf := NewCFController(img)
	before := cf.status
	cf.WriteCommand(0x00)
	if cf.status != before {
		t.Errorf("status changed after unimplemented command")
	}
}
