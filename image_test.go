package primstore

import (
	"image"
	"image/color"
	"testing"
)

func testRaster() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(2, 1, color.RGBA{G: 200, A: 255})
	return img
}

func TestEncodeImageFormats(t *testing.T) {
	for _, format := range []string{"png", "jpeg", "gif"} {
		img, err := EncodeImage(testRaster(), format)
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if img.Format != format || len(img.Data) == 0 {
			t.Fatalf("%s: got %+v", format, img.Format)
		}
		dec, err := img.Decode()
		if err != nil {
			t.Fatalf("%s decode: %v", format, err)
		}
		if dec.Bounds() != testRaster().Bounds() {
			t.Fatalf("%s: bounds %v", format, dec.Bounds())
		}
	}
}

func TestEncodeImageNormalisesJPG(t *testing.T) {
	img, err := EncodeImage(testRaster(), "jpg")
	if err != nil || img.Format != "jpeg" {
		t.Fatalf("format=%q err=%v", img.Format, err)
	}
}

func TestEncodeImageUnknownFormat(t *testing.T) {
	if _, err := EncodeImage(testRaster(), "bmp"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestImageDecodeFormatMismatch(t *testing.T) {
	img, err := EncodeImage(testRaster(), "png")
	if err != nil {
		t.Fatal(err)
	}
	img.Format = "gif"
	if _, err := img.Decode(); err == nil {
		t.Fatalf("expected format mismatch error")
	}
	if _, err := (Image{Format: "png", Data: []byte("nope")}).Decode(); err == nil {
		t.Fatalf("expected error on garbage data")
	}
}
