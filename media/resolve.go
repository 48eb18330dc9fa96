/*
 *  Copyright 2023 Pius Alfred <me.pius1102@gmail.com>
 *
 *  Permission is hereby granted, free of charge, to any person obtaining a copy of this software
 *  and associated documentation files (the “Software”), to deal in the Software without restriction,
 *  including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense,
 *  and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so,
 *  subject to the following conditions:
 *
 *  The above copyright notice and this permission notice shall be included in all copies or substantial
 *  portions of the Software.
 *
 *  THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT
 *  LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
 *  IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY,
 *  WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE
 *  SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 */

package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrMediaResolution is returned when a Source cannot be turned into an
// uploadable reference before any HTTP call is made: the media type could
// not be determined, the source is empty, a link is not an http(s) URL, or
// no uploader is configured.
var ErrMediaResolution = errors.New("media resolution failed")

// Uploader is the slice of Service that Resolve needs. *BaseClient
// satisfies it.
type Uploader interface {
	Upload(ctx context.Context, req *UploadRequest) (*UploadMediaResponse, error)
}

// Source is any of the forms an outbound send accepts for its media: an
// already-uploaded ID, an https link the provider fetches itself, a local
// file path, an in-memory byte slice, or a stream. Exactly one is set per
// Source; construct with the From* functions and refine with WithType /
// WithFilename.
type Source struct {
	id        string
	link      string
	path      string
	data      []byte
	reader    io.Reader
	mediaType Type
	filename  string
}

// FromID references media already uploaded to the provider. IDs stay valid
// for 30 days after upload.
func FromID(id string) *Source {
	return &Source{id: id}
}

// FromLink references media by an https URL; the provider fetches it at
// send time instead of this client uploading it.
func FromLink(link string) *Source {
	return &Source{link: link}
}

// FromPath references a local file to be uploaded before the send. The
// media type is derived from the file extension unless overridden with
// WithType.
func FromPath(path string) *Source {
	return &Source{path: path}
}

// FromBytes references in-memory content to be uploaded before the send.
// The media type cannot be derived and must be supplied with WithType, or
// via a filename carrying a known extension (WithFilename).
func FromBytes(data []byte) *Source {
	return &Source{data: data}
}

// FromReader is FromBytes for streamed content. The reader is consumed by
// Resolve.
func FromReader(reader io.Reader) *Source {
	return &Source{reader: reader}
}

// WithType fixes the media type explicitly, overriding extension detection.
func (s *Source) WithType(mediaType Type) *Source {
	s.mediaType = mediaType

	return s
}

// WithFilename names the uploaded file. For byte/stream sources a filename
// with a known extension also supplies the media type.
func (s *Source) WithFilename(filename string) *Source {
	s.filename = filename

	return s
}

// Resolved is what a Source becomes once it is usable in an outbound
// payload: exactly one of ID or Link is set.
type Resolved struct {
	ID   string
	Link string
}

// IsLink reports whether the provider should fetch the media itself rather
// than dereference an uploaded ID.
func (r *Resolved) IsLink() bool {
	return r.Link != ""
}

// TypeForExtension maps a file extension (with or without the leading dot)
// to the media type the upload endpoint expects, using the same table
// InfoMap is built from.
func TypeForExtension(ext string) (Type, bool) {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	for mediaType, info := range InfoMap {
		if info.Extension == ext {
			return mediaType, true
		}
	}

	return "", false
}

func (s *Source) resolveType() (Type, error) {
	if s.mediaType != "" {
		return s.mediaType, nil
	}

	name := s.filename
	if name == "" {
		name = s.path
	}

	if ext := filepath.Ext(name); ext != "" {
		if mediaType, ok := TypeForExtension(ext); ok {
			return mediaType, nil
		}

		return "", fmt.Errorf("%w: unknown extension %q", ErrMediaResolution, ext)
	}

	return "", fmt.Errorf("%w: media type cannot be determined, supply it explicitly", ErrMediaResolution)
}

// Resolve turns the Source into a Resolved reference. IDs and links pass
// through untouched; paths, bytes and streams are uploaded via uploader and
// replaced by the returned ID. Type and filename problems are reported
// before any HTTP call happens.
func (s *Source) Resolve(ctx context.Context, uploader Uploader) (*Resolved, error) {
	switch {
	case s.id != "":
		return &Resolved{ID: s.id}, nil
	case s.link != "":
		if !strings.HasPrefix(s.link, "https://") && !strings.HasPrefix(s.link, "http://") {
			return nil, fmt.Errorf("%w: link %q is not an http(s) url", ErrMediaResolution, s.link)
		}

		return &Resolved{Link: s.link}, nil
	case s.path != "":
		return s.upload(ctx, uploader, nil)
	case s.data != nil:
		return s.upload(ctx, uploader, bytes.NewReader(s.data))
	case s.reader != nil:
		return s.upload(ctx, uploader, s.reader)
	default:
		return nil, fmt.Errorf("%w: empty source", ErrMediaResolution)
	}
}

func (s *Source) upload(ctx context.Context, uploader Uploader, reader io.Reader) (*Resolved, error) {
	mediaType, err := s.resolveType()
	if err != nil {
		return nil, err
	}

	if uploader == nil {
		return nil, fmt.Errorf("%w: no uploader configured", ErrMediaResolution)
	}

	req := &UploadRequest{MediaType: mediaType, Reader: reader}
	if reader == nil {
		req.Filename = s.path
	} else {
		req.Filename = s.filename
		if req.Filename == "" {
			req.Filename = "file" + InfoMap[mediaType].Extension
		}
	}

	response, err := uploader.Upload(ctx, req)
	if err != nil {
		return nil, err
	}

	return &Resolved{ID: response.ID}, nil
}
