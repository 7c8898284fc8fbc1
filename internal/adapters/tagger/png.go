package tagger

import (
	"fmt"

	exif "github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"
	exifundefined "github.com/dsoprea/go-exif/v3/undefined"
	log "github.com/dsoprea/go-logging"
	pngstructure "github.com/dsoprea/go-png-image-structure/v2"

	"github.com/adi-segal/mediafix/internal/core/domain"
)

// PngTagger stores tags in the EXIF UserComment field of PNG files
// (the eXIf chunk).
type PngTagger struct{}

// WriteTag rewrites the file in place with value as its EXIF UserComment.
func (t *PngTagger) WriteTag(path, value string) (err error) {
	// go-exif reports some encode failures by panicking.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %v: %w", path, r, domain.ErrTagWriteFailed)
		}
	}()

	pmp := pngstructure.NewPngMediaParser()
	intfc, err := pmp.ParseFile(path)
	if err != nil {
		return fmt.Errorf("%s: parse: %v: %w", path, err, domain.ErrTagWriteFailed)
	}
	cs := intfc.(*pngstructure.ChunkSlice)

	rootIb, err := cs.ConstructExifBuilder()
	if err != nil {
		if !log.Is(err, exif.ErrNoExif) {
			return fmt.Errorf("%s: exif builder: %v: %w", path, err, domain.ErrTagWriteFailed)
		}
		// Freshly encoded PNGs carry no eXIf chunk; start an empty tree.
		rootIb, err = newExifBuilder()
		if err != nil {
			return fmt.Errorf("%s: exif builder: %v: %w", path, err, domain.ErrTagWriteFailed)
		}
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

	if err := cs.SetExif(rootIb); err != nil {
		return fmt.Errorf("%s: set exif: %v: %w", path, err, domain.ErrTagWriteFailed)
	}

	return rewriteFile(path, cs.WriteTo)
}

// newExifBuilder starts a root IFD builder for files that have no EXIF data
// yet, mirroring what the JPEG parser does internally.
func newExifBuilder() (*exif.IfdBuilder, error) {
	im, err := exifcommon.NewIfdMappingWithStandard()
	if err != nil {
		return nil, err
	}

	ti := exif.NewTagIndex()
	if err := exif.LoadStandardTags(ti); err != nil {
		return nil, err
	}

	return exif.NewIfdBuilder(im, ti, exifcommon.IfdStandardIfdIdentity, exifcommon.EncodeDefaultByteOrder), nil
}

// ReadTag returns the EXIF UserComment embedded in the file.
func (t *PngTagger) ReadTag(path string) (value string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %v", path, r)
		}
	}()

	pmp := pngstructure.NewPngMediaParser()
	intfc, err := pmp.ParseFile(path)
	if err != nil {
		return "", fmt.Errorf("%s: parse: %w", path, err)
	}
	cs := intfc.(*pngstructure.ChunkSlice)

	rootIfd, _, err := cs.Exif()
	if err != nil {
		return "", fmt.Errorf("%s: no exif data: %w", path, err)
	}

	return userCommentFromIfd(path, rootIfd)
}
