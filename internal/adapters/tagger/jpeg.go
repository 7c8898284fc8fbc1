package tagger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	exif "github.com/dsoprea/go-exif/v3"
	exifundefined "github.com/dsoprea/go-exif/v3/undefined"
	jpegstructure "github.com/dsoprea/go-jpeg-image-structure/v2"

	"github.com/adi-segal/mediafix/internal/core/domain"
)

// exifIfdPath is the IFD holding the UserComment tag.
const exifIfdPath = "IFD/Exif"

// JpegTagger stores tags in the EXIF UserComment field of JPEG files.
type JpegTagger struct{}

// WriteTag rewrites the file in place with value as its EXIF UserComment.
// The rewrite goes through a temp file in the same directory so a failed
// write never leaves a truncated destination.
func (t *JpegTagger) WriteTag(path, value string) (err error) {
	// go-exif reports some encode failures by panicking.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %v: %w", path, r, domain.ErrTagWriteFailed)
		}
	}()

	jmp := jpegstructure.NewJpegMediaParser()
	intfc, err := jmp.ParseFile(path)
	if err != nil {
		return fmt.Errorf("%s: parse: %v: %w", path, err, domain.ErrTagWriteFailed)
	}
	sl := intfc.(*jpegstructure.SegmentList)

	rootIb, err := sl.ConstructExifBuilder()
	if err != nil {
		return fmt.Errorf("%s: exif builder: %v: %w", path, err, domain.ErrTagWriteFailed)
	}

	exifIb, err := exif.GetOrCreateIbFromRootIb(rootIb, exifIfdPath)
	if err != nil {
		return fmt.Errorf("%s: exif ifd: %v: %w", path, err, domain.ErrTagWriteFailed)
	}

	comment := exifundefined.Tag9286UserComment{
		EncodingType:  exifundefined.TagUndefinedType_9286_UserComment_Encoding_ASCII,
		EncodingBytes: []byte(value),
	}
	if err := exifIb.SetStandardWithName("UserComment", comment); err != nil {
		return fmt.Errorf("%s: set comment: %v: %w", path, err, domain.ErrTagWriteFailed)
	}

	if err := sl.SetExif(rootIb); err != nil {
		return fmt.Errorf("%s: set exif: %v: %w", path, err, domain.ErrTagWriteFailed)
	}

	return rewriteFile(path, sl.Write)
}

// ReadTag returns the EXIF UserComment embedded in the file.
func (t *JpegTagger) ReadTag(path string) (value string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %v", path, r)
		}
	}()

	jmp := jpegstructure.NewJpegMediaParser()
	intfc, err := jmp.ParseFile(path)
	if err != nil {
		return "", fmt.Errorf("%s: parse: %w", path, err)
	}
	sl := intfc.(*jpegstructure.SegmentList)

	rootIfd, _, err := sl.Exif()
	if err != nil {
		return "", fmt.Errorf("%s: no exif data: %w", path, err)
	}

	return userCommentFromIfd(path, rootIfd)
}

// userCommentFromIfd extracts the UserComment value from a parsed EXIF tree.
func userCommentFromIfd(path string, rootIfd *exif.Ifd) (string, error) {
	exifIfd, err := exif.FindIfdFromRootIfd(rootIfd, exifIfdPath)
	if err != nil {
		return "", fmt.Errorf("%s: no exif ifd: %w", path, err)
	}

	results, err := exifIfd.FindTagWithName("UserComment")
	if err != nil || len(results) == 0 {
		return "", fmt.Errorf("%s: no user comment tag", path)
	}

	raw, err := results[0].Value()
	if err != nil {
		return "", fmt.Errorf("%s: decode user comment: %w", path, err)
	}

	comment, ok := raw.(exifundefined.Tag9286UserComment)
	if !ok {
		return "", fmt.Errorf("%s: unexpected user comment type %T", path, raw)
	}

	return string(comment.EncodingBytes), nil
}

// rewriteFile writes the media via write() to a temp file next to path, then
// renames it over the original.
func rewriteFile(path string, write func(w io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".mediafix-*")
	if err != nil {
		return fmt.Errorf("%s: temp file: %v: %w", path, err, domain.ErrTagWriteFailed)
	}

	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%s: write: %v: %w", path, err, domain.ErrTagWriteFailed)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%s: close: %v: %w", path, err, domain.ErrTagWriteFailed)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%s: replace: %v: %w", path, err, domain.ErrTagWriteFailed)
	}

	return nil
}
