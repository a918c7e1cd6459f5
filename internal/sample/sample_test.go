package sample

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	p := Pack(1, 2, 3, 4)
	if p != 0x04030201 {
		t.Fatalf("packed = %08x", p)
	}
	r, g, b, a := Unpack(p)
	if r != 1 || g != 2 || b != 3 || a != 4 {
		t.Fatalf("unpacked = (%d,%d,%d,%d)", r, g, b, a)
	}
}

func TestFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})
	img.SetRGBA(0, 1, color.RGBA{B: 255, A: 255})
	img.SetRGBA(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	bm := FromImage(img)
	if bm.W != 2 || bm.H != 2 {
		t.Fatalf("size = %dx%d", bm.W, bm.H)
	}
	want := []uint32{
		Pack(255, 0, 0, 255),
		Pack(0, 255, 0, 255),
		Pack(0, 0, 255, 255),
		Pack(255, 255, 255, 255),
	}
	for i, w := range want {
		if bm.Pixels[i] != w {
			t.Fatalf("pixel %d = %08x, want %08x", i, bm.Pixels[i], w)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	pixels := []uint32{
		Pack(10, 20, 30, 255), Pack(200, 100, 50, 255),
		Pack(0, 0, 0, 255), Pack(255, 255, 255, 255),
	}
	if err := Save(path, pixels, 2, 2); err != nil {
		t.Fatal(err)
	}
	bm, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if bm.W != 2 || bm.H != 2 {
		t.Fatalf("size = %dx%d", bm.W, bm.H)
	}
	for i, w := range pixels {
		if bm.Pixels[i] != w {
			t.Fatalf("pixel %d = %08x, want %08x", i, bm.Pixels[i], w)
		}
	}
}

func TestSaveRejectsBadLength(t *testing.T) {
	if err := Save(filepath.Join(t.TempDir(), "bad.png"), make([]uint32, 3), 2, 2); err == nil {
		t.Fatal("mismatched buffer accepted")
	}
}
