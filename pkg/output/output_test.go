package output

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"io"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/disintegration/imaging"

	"github.com/df07/go-pathtracer/pkg/config"
)

// fakeS3 records PutObject calls
type fakeS3 struct {
	s3iface.S3API
	inputs []*s3.PutObjectInput
	bodies [][]byte
	err    error
}

func (f *fakeS3) PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	f.inputs = append(f.inputs, input)
	f.bodies = append(f.bodies, body)
	return &s3.PutObjectOutput{}, nil
}

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func TestFileSink_Save(t *testing.T) {
	dir := t.TempDir()
	sink := NewFileSink(dir)

	for _, name := range []string{"frame.png", "nested/frame.jpg"} {
		if err := sink.Save(context.Background(), name, testImage(16, 8)); err != nil {
			t.Fatalf("Save(%q) failed: %v", name, err)
		}
		img, err := imaging.Open(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("Reading back %q failed: %v", name, err)
		}
		if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 8 {
			t.Errorf("%s: expected 16x8, got %v", name, img.Bounds())
		}
	}

	if err := sink.Save(context.Background(), "frame.unknown", testImage(2, 2)); err == nil {
		t.Error("Expected an error for an unsupported extension")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := sink.Save(ctx, "cancelled.png", testImage(2, 2)); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestS3Sink_Save(t *testing.T) {
	fake := &fakeS3{}
	sink, err := NewS3SinkWithClient(fake, "frames", "renders/cornell")
	if err != nil {
		t.Fatal(err)
	}

	if err := sink.Save(context.Background(), "output/frame.png", testImage(4, 4)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if len(fake.inputs) != 1 {
		t.Fatalf("Expected one upload, got %d", len(fake.inputs))
	}

	input := fake.inputs[0]
	if aws.StringValue(input.Bucket) != "frames" {
		t.Errorf("Unexpected bucket %q", aws.StringValue(input.Bucket))
	}
	if aws.StringValue(input.Key) != "renders/cornell/frame.png" {
		t.Errorf("Unexpected key %q", aws.StringValue(input.Key))
	}
	if aws.StringValue(input.ContentType) != "image/png" {
		t.Errorf("Unexpected content type %q", aws.StringValue(input.ContentType))
	}
	if aws.Int64Value(input.ContentLength) != int64(len(fake.bodies[0])) {
		t.Errorf("Content length %d does not match body size %d", aws.Int64Value(input.ContentLength), len(fake.bodies[0]))
	}

	decoded, err := imaging.Decode(bytes.NewReader(fake.bodies[0]))
	if err != nil {
		t.Fatalf("Uploaded body is not an image: %v", err)
	}
	if decoded.Bounds().Dx() != 4 {
		t.Errorf("Expected 4 pixel wide upload, got %v", decoded.Bounds())
	}
}

func TestS3Sink_Errors(t *testing.T) {
	if _, err := NewS3SinkWithClient(&fakeS3{}, "", ""); !errors.Is(err, ErrNoBucket) {
		t.Errorf("Expected ErrNoBucket, got %v", err)
	}
	if _, err := NewS3Sink(config.S3Config{}); !errors.Is(err, ErrNoBucket) {
		t.Errorf("Expected ErrNoBucket, got %v", err)
	}

	uploadErr := errors.New("access denied")
	sink, err := NewS3SinkWithClient(&fakeS3{err: uploadErr}, "frames", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := sink.Save(context.Background(), "frame.png", testImage(2, 2)); !errors.Is(err, uploadErr) {
		t.Errorf("Expected wrapped upload error, got %v", err)
	}
}

func TestMultiSink(t *testing.T) {
	fake := &fakeS3{}
	s3Sink, err := NewS3SinkWithClient(fake, "frames", "")
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()

	multi := MultiSink{NewFileSink(dir), s3Sink}
	if err := multi.Save(context.Background(), "frame.png", testImage(4, 4)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if len(fake.inputs) != 1 {
		t.Errorf("Expected upload after file write, got %d uploads", len(fake.inputs))
	}
	if _, err := imaging.Open(filepath.Join(dir, "frame.png")); err != nil {
		t.Errorf("Expected file on disk: %v", err)
	}
}

func TestPreview(t *testing.T) {
	img := testImage(200, 100)

	preview := Preview(img, 50)
	if preview.Bounds().Dx() != 50 || preview.Bounds().Dy() != 25 {
		t.Errorf("Expected 50x25 preview, got %v", preview.Bounds())
	}
	if Preview(img, 400) != image.Image(img) {
		t.Error("Expected narrow images to be returned unchanged")
	}
	if Preview(img, 0) != image.Image(img) {
		t.Error("Expected width 0 to disable scaling")
	}
}

func TestPreviewName(t *testing.T) {
	tests := map[string]string{
		"frame.png":         "frame_preview.png",
		"out/cornell.jpg":   "out/cornell_preview.jpg",
		"noext":             "noext_preview",
		"dir.v2/frame.tiff": "dir.v2/frame_preview.tiff",
	}
	for in, want := range tests {
		if got := PreviewName(in); got != want {
			t.Errorf("PreviewName(%q) = %q, want %q", in, got, want)
		}
	}
}
