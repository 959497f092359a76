package render

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/SubhankarA8415/portfolio/internal/content"
	"github.com/SubhankarA8415/portfolio/internal/view"
)

// ErrUnsafeOutput is returned when removing the output directory would take
// the working directory or the client build with it.
var ErrUnsafeOutput = errors.New("unsafe output directory")

// ExportResult summarises a static export.
type ExportResult struct {
	Dir    string
	Files  int
	Client bool
}

// Export writes a self-contained copy of the site into outDir:
//
//	index.html      the page in its initial state
//	static/         embedded stylesheet and boot script
//	app/            client artifacts copied from clientDir, when present
//
// outDir is removed first. Every reference in index.html is relative, so the
// export can be hosted under any path.
func Export(r *Renderer, p *content.Portfolio, outDir, clientDir string) (*ExportResult, error) {
	if err := checkOutputDir(outDir, clientDir); err != nil {
		return nil, err
	}
	if err := os.RemoveAll(outDir); err != nil {
		return nil, fmt.Errorf("cleaning output directory %s: %w", outDir, err)
	}
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", outDir, err)
	}
	res := &ExportResult{Dir: outDir}

	n, err := copyFS(Assets(), filepath.Join(outDir, "static"))
	if err != nil {
		return nil, fmt.Errorf("copying assets: %w", err)
	}
	res.Files += n

	if clientDir != "" {
		if info, err := os.Stat(clientDir); err == nil && info.IsDir() {
			n, err := copyFS(os.DirFS(clientDir), filepath.Join(outDir, "app"))
			if err != nil {
				return nil, fmt.Errorf("copying client from %s: %w", clientDir, err)
			}
			res.Files += n
			res.Client = n > 0
		}
	}

	// The page only references the client when it was actually exported.
	pr := *r
	if res.Client {
		pr.clientURL = ClientPath
	} else {
		pr.clientURL = ""
	}

	indexPath := filepath.Join(outDir, "index.html")
	f, err := os.Create(indexPath)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", indexPath, err)
	}
	defer f.Close()
	if err := pr.Page(f, p, view.NewState().Snapshot()); err != nil {
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("closing %s: %w", indexPath, err)
	}
	res.Files++
	return res, nil
}

// checkOutputDir refuses an outDir that is, or contains, the working
// directory or clientDir, and one nested inside clientDir.
func checkOutputDir(outDir, clientDir string) error {
	out, err := filepath.Abs(outDir)
	if err != nil {
		return fmt.Errorf("resolving output directory %s: %w", outDir, err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}
	if within(out, wd) {
		return fmt.Errorf("%w: %s contains the working directory", ErrUnsafeOutput, outDir)
	}
	if clientDir == "" {
		return nil
	}
	client, err := filepath.Abs(clientDir)
	if err != nil {
		return fmt.Errorf("resolving client directory %s: %w", clientDir, err)
	}
	if within(out, client) || within(client, out) {
		return fmt.Errorf("%w: %s overlaps the client directory %s", ErrUnsafeOutput, outDir, clientDir)
	}
	return nil
}

// within reports whether path is dir or lies below it. Both must be absolute.
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// copyFS copies every regular file in src under dst, returning how many
// files were written.
func copyFS(src fs.FS, dst string) (int, error) {
	count := 0
	err := fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, os.ModePerm)
		}
		if err := copyFile(src, path, target); err != nil {
			return fmt.Errorf("copying %s: %w", path, err)
		}
		count++
		return nil
	})
	return count, err
}

func copyFile(src fs.FS, name, target string) error {
	in, err := src.Open(name)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
