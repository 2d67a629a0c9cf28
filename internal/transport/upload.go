package transport

import (
	"context"
	"io"
	"net/http"
	"sync/atomic"
	"time"
)

// FilePart is one file to include in a multipart upload.
type FilePart struct {
	// Field is the multipart form field name (e.g. "images").
	Field string
	// Name is the file name reported to the server.
	Name string
	// ContentType is the part's MIME type; empty defaults to
	// application/octet-stream.
	ContentType string
	// Reader supplies the file contents.
	Reader io.Reader
	// Size is the content length in bytes, used for progress reporting.
	// Zero when unknown.
	Size int64
}

// ProgressFunc receives upload progress: bytes sent so far across all file
// parts and the total expected (0 when any part size was unknown).
type ProgressFunc func(sent, total int64)

// Upload issues a multipart POST. It swaps the JSON content type for
// multipart/form-data, streams each file part through a byte-counting reader
// so progress can drive an upload indicator, and runs the same outbound and
// inbound stages as every other request.
func (c *Client) Upload(ctx context.Context, path string, fields map[string]string, files []FilePart, progress ProgressFunc) ([]byte, error) {
	d := NewDescriptor(http.MethodPost, path)

	var total int64
	sizesKnown := true
	for _, f := range files {
		if f.Size <= 0 {
			sizesKnown = false
		}
		total += f.Size
	}
	if !sizesKnown {
		total = 0
	}

	var sent atomic.Int64
	req := c.http.R().
		SetContext(ctx).
		SetHeaders(c.outbound(ctx, d)).
		SetMultipartFormData(fields)

	for _, f := range files {
		contentType := f.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		reader := f.Reader
		if progress != nil {
			reader = &progressReader{r: f.Reader, sent: &sent, total: total, report: progress}
		}
		req.SetMultipartField(f.Field, f.Name, contentType, reader)
	}

	requestID := c.ids.Generate()
	start := time.Now()
	resp, err := req.Post(d.Path)
	if err != nil {
		c.logger.Warn().
			Str("request_id", requestID).
			Str("path", d.Path).
			Err(err).
			Msg("upload failed before a response was received")
		return nil, NetworkError(err)
	}

	c.logger.Debug().
		Str("request_id", requestID).
		Str("path", d.Path).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("upload completed")

	if err = c.inbound(ctx, d, resp.StatusCode(), resp.Body()); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// progressReader counts bytes as resty streams the multipart body and
// reports the running total to the caller's callback.
type progressReader struct {
	r      io.Reader
	sent   *atomic.Int64
	total  int64
	report ProgressFunc
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.r.Read(buf)
	if n > 0 {
		p.report(p.sent.Add(int64(n)), p.total)
	}
	return n, err
}
