package mime

import (
	"bytes"
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrUnsupportedImage = errors.New("only JPEG and PNG images are accepted")
	ErrCorruptImage     = errors.New("image header could not be decoded")
)

// imageTypes maps the accepted panorama / gallery formats to their object key extension.
var imageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

// sniffLen matches the amount of data mimetype reads by default.
const sniffLen = 3072

// DetectImage sniffs r by content, never by filename. It returns the MIME
// type, the canonical extension and a reader that still yields the full
// stream, sniffed bytes included.
func DetectImage(r io.Reader) (contentType string, ext string, body io.Reader, err error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", "", nil, err
	}
	head = head[:n]

	mt := mimetype.Detect(head)
	for m := mt; m != nil; m = m.Parent() {
		if e, ok := imageTypes[m.String()]; ok {
			return m.String(), e, io.MultiReader(bytes.NewReader(head), r), nil
		}
	}
	return mt.String(), "", nil, ErrUnsupportedImage
}

// Dimensions reads the width and height from the image header. Like
// DetectImage, the returned reader replays every byte consumed.
func Dimensions(r io.Reader) (width int, height int, body io.Reader, err error) {
	var head bytes.Buffer
	cfg, _, err := image.DecodeConfig(io.TeeReader(r, &head))
	if err != nil {
		return 0, 0, nil, ErrCorruptImage
	}
	return cfg.Width, cfg.Height, io.MultiReader(&head, r), nil
}
