package media_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kanzihq/whatsapp-go/media"
)

type fakeUploader struct {
	calls    int
	lastReq  *media.UploadRequest
	response *media.UploadMediaResponse
	err      error
}

func (f *fakeUploader) Upload(_ context.Context, req *media.UploadRequest) (*media.UploadMediaResponse, error) {
	f.calls++
	f.lastReq = req

	if f.err != nil {
		return nil, f.err
	}

	return f.response, nil
}

func TestSource_Resolve_IDPassesThrough(t *testing.T) {
	uploader := &fakeUploader{}

	resolved, err := media.FromID("1234567890").Resolve(context.Background(), uploader)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if resolved.ID != "1234567890" || resolved.IsLink() {
		t.Fatalf("Resolve() = %+v, want ID passthrough", resolved)
	}
	if uploader.calls != 0 {
		t.Fatalf("Resolve() uploaded an already-uploaded ID")
	}
}

func TestSource_Resolve_LinkPassesThrough(t *testing.T) {
	resolved, err := media.FromLink("https://example.com/cat.jpeg").Resolve(context.Background(), nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !resolved.IsLink() || resolved.Link != "https://example.com/cat.jpeg" {
		t.Fatalf("Resolve() = %+v, want link passthrough", resolved)
	}
}

func TestSource_Resolve_RejectsNonHTTPLink(t *testing.T) {
	_, err := media.FromLink("ftp://example.com/cat.jpeg").Resolve(context.Background(), nil)
	if !errors.Is(err, media.ErrMediaResolution) {
		t.Fatalf("Resolve() error = %v, want ErrMediaResolution", err)
	}
}

func TestSource_Resolve_BytesRequireType(t *testing.T) {
	uploader := &fakeUploader{}

	_, err := media.FromBytes([]byte("jpeg bytes")).Resolve(context.Background(), uploader)
	if !errors.Is(err, media.ErrMediaResolution) {
		t.Fatalf("Resolve() error = %v, want ErrMediaResolution", err)
	}
	if uploader.calls != 0 {
		t.Fatalf("Resolve() reached the uploader despite an undeterminable media type")
	}
}

func TestSource_Resolve_BytesWithTypeUploads(t *testing.T) {
	uploader := &fakeUploader{response: &media.UploadMediaResponse{ID: "media-id-1"}}

	resolved, err := media.FromBytes([]byte("jpeg bytes")).
		WithType(media.TypeImageJPEG).
		Resolve(context.Background(), uploader)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if resolved.ID != "media-id-1" {
		t.Fatalf("Resolve() ID = %q, want %q", resolved.ID, "media-id-1")
	}
	if uploader.lastReq.MediaType != media.TypeImageJPEG {
		t.Fatalf("Upload() media type = %q, want %q", uploader.lastReq.MediaType, media.TypeImageJPEG)
	}
	if uploader.lastReq.Reader == nil {
		t.Fatalf("Upload() request should carry a reader for a bytes source")
	}
}

func TestSource_Resolve_FilenameExtensionSuppliesType(t *testing.T) {
	uploader := &fakeUploader{response: &media.UploadMediaResponse{ID: "media-id-2"}}

	resolved, err := media.FromReader(strings.NewReader("pdf bytes")).
		WithFilename("invoice.pdf").
		Resolve(context.Background(), uploader)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if resolved.ID != "media-id-2" {
		t.Fatalf("Resolve() ID = %q, want %q", resolved.ID, "media-id-2")
	}
	if uploader.lastReq.MediaType != media.TypeDocPDF {
		t.Fatalf("Upload() media type = %q, want %q", uploader.lastReq.MediaType, media.TypeDocPDF)
	}
	if uploader.lastReq.Filename != "invoice.pdf" {
		t.Fatalf("Upload() filename = %q, want %q", uploader.lastReq.Filename, "invoice.pdf")
	}
}

func TestSource_Resolve_PathUnknownExtension(t *testing.T) {
	uploader := &fakeUploader{}

	_, err := media.FromPath("/tmp/archive.zip").Resolve(context.Background(), uploader)
	if !errors.Is(err, media.ErrMediaResolution) {
		t.Fatalf("Resolve() error = %v, want ErrMediaResolution", err)
	}
	if uploader.calls != 0 {
		t.Fatalf("Resolve() reached the uploader despite an unknown extension")
	}
}

func TestSource_Resolve_EmptySource(t *testing.T) {
	_, err := (&media.Source{}).Resolve(context.Background(), nil)
	if !errors.Is(err, media.ErrMediaResolution) {
		t.Fatalf("Resolve() error = %v, want ErrMediaResolution", err)
	}
}

func TestTypeForExtension(t *testing.T) {
	mediaType, ok := media.TypeForExtension("jpeg")
	if !ok || mediaType != media.TypeImageJPEG {
		t.Fatalf("TypeForExtension(jpeg) = %q, %v", mediaType, ok)
	}

	if _, ok := media.TypeForExtension(".zip"); ok {
		t.Fatalf("TypeForExtension(.zip) should not resolve")
	}
}
