// path: uploads/uploads.go
package uploads

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

// ThumbMaxDim bounds thumbnail width and height, aspect preserved.
const ThumbMaxDim = 400

// Store writes uploaded files into a local directory served under /uploads.
type Store struct {
	Dir string
}

// New returns a store rooted at dir, creating it if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{Dir: dir}, nil
}

// Save writes the uploaded file under a generated unique name, keeping the
// original extension, and returns its public path. If the payload decodes as
// an image a bounded thumbnail is written beside it under a thumb_ prefix;
// thumbnail failures are logged and never fail the upload.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if len(ext) > 8 {
		ext = ext[:8]
	}
	name := uuid.NewString() + ext
	dst := filepath.Join(s.Dir, name)

	if err := copyFile(fh, dst); err != nil {
		return "", err
	}

	if err := s.writeThumbnail(dst, name); err != nil {
		log.Printf("uploads: thumbnail for %s skipped: %v", name, err)
	}

	return "/uploads/" + name, nil
}

func copyFile(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}

// writeThumbnail decodes the stored file and writes a scaled copy. Non-image
// payloads fail decode and are simply skipped.
func (s *Store) writeThumbnail(path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return err
	}

	w, h := fitWithin(src.Bounds().Dx(), src.Bounds().Dy(), ThumbMaxDim)
	dstImg := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dstImg, dstImg.Bounds(), src, src.Bounds(), draw.Over, nil)

	out, err := os.Create(filepath.Join(s.Dir, "thumb_"+name))
	if err != nil {
		return err
	}
	defer out.Close()

	if format == "jpeg" {
		return jpeg.Encode(out, dstImg, nil)
	}
	return png.Encode(out, dstImg)
}

// fitWithin scales (w, h) down to fit in a max×max box, never up.
func fitWithin(w, h, max int) (int, int) {
	if w <= max && h <= max {
		return w, h
	}
	if w >= h {
		return max, max1(h * max / w)
	}
	return max1(w * max / h), max
}

func max1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
