package putio

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"putscope/internal/utils"
)

// Download resolves the file's download URL and streams it to destDir,
// writing coarse progress to out. It runs while the UI has handed the
// terminal back, so out is plain stdout.
func (c *Client) Download(fileID int64, destDir string, out io.Writer) error {
	fileURL, err := c.URL(fileID)
	if err != nil {
		return err
	}

	resp, err := c.http.Get(fileURL)
	if err != nil {
		return fmt.Errorf("download file %d: %w", fileID, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("download file %d: HTTP %d", fileID, resp.StatusCode)
	}

	name := downloadName(resp, fileURL, fileID)
	dest := filepath.Join(destDir, name)
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}
	defer f.Close()

	fmt.Fprintf(out, "Downloading %s...\n", name)
	written, err := io.Copy(f, progressReader{resp.Body, resp.ContentLength, out, new(int64)})
	if err != nil {
		os.Remove(dest)
		return fmt.Errorf("download file %d: %w", fileID, err)
	}
	fmt.Fprintf(out, "\nSaved %s (%d bytes)\n", dest, written)
	return nil
}

// downloadName picks the local filename: Content-Disposition if present,
// else the URL path's base name, else a stand-in from the file id.
func downloadName(resp *http.Response, rawURL string, fileID int64) string {
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			if name := filepath.Base(params["filename"]); name != "" && name != "." {
				return name
			}
		}
	}
	if u, err := url.Parse(rawURL); err == nil {
		if name, err := url.PathUnescape(path.Base(u.Path)); err == nil {
			if name != "" && name != "/" && name != "." {
				return name
			}
		}
	}
	return fmt.Sprintf("putio-%d", fileID)
}

// progressReader prints a percentage line while the body streams through.
type progressReader struct {
	r     io.Reader
	total int64
	out   io.Writer
	read  *int64
}

func (p progressReader) Read(buf []byte) (int, error) {
	n, err := p.r.Read(buf)
	*p.read += int64(n)
	if p.total > 0 && n > 0 {
		pct := *p.read * 100 / p.total
		fmt.Fprintf(p.out, "\r%3d%% (%s / %s)", pct,
			utils.FormatFileSize(*p.read), utils.FormatFileSize(p.total))
	}
	return n, err
}
