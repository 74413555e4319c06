package primstore

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
)

// Image is an encoded raster image. Data holds the bytes in Format
// ("png", "jpeg" or "gif"); the adapter never re-encodes it.
type Image struct {
	Format string `json:"format" msgpack:"format" cbor:"format"`
	Data   []byte `json:"data" msgpack:"data" cbor:"data"`
}

// EncodeImage encodes img in the given format.
func EncodeImage(img image.Image, format string) (Image, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	case "jpeg", "jpg":
		format = "jpeg"
		err = jpeg.Encode(&buf, img, nil)
	case "gif":
		err = gif.Encode(&buf, img, nil)
	default:
		return Image{}, fmt.Errorf("primstore: unsupported image format %q", format)
	}
	if err != nil {
		return Image{}, fmt.Errorf("primstore: encode %s image: %w", format, err)
	}
	return Image{Format: format, Data: buf.Bytes()}, nil
}

// Decode returns the decoded raster.
func (i Image) Decode() (image.Image, error) {
	img, format, err := image.Decode(bytes.NewReader(i.Data))
	if err != nil {
		return nil, fmt.Errorf("primstore: decode image: %w", err)
	}
	if i.Format != "" && format != i.Format {
		return nil, fmt.Errorf("primstore: image format mismatch: stored %q, decoded %q", i.Format, format)
	}
	return img, nil
}
